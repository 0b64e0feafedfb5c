// internal/locator/locator.go
package locator

import (
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// Strategy selects how a selector string is resolved against the DOM.
type Strategy string

const (
	ByID    Strategy = "id"
	ByCSS   Strategy = "css"
	ByXPath Strategy = "xpath"
)

// Locator is an immutable (strategy, selector) pair identifying the element
// currently intended by a logical name. It is not a handle: the selector is
// re-resolved on every use because the target DOM is server-rendered and
// volatile.
type Locator struct {
	Strategy Strategy
	Selector string
}

// ID builds a Locator resolved by element id.
func ID(id string) Locator {
	return Locator{Strategy: ByID, Selector: id}
}

// CSS builds a Locator resolved by CSS selector.
func CSS(selector string) Locator {
	return Locator{Strategy: ByCSS, Selector: selector}
}

// XPath builds a Locator resolved by XPath expression.
func XPath(expression string) Locator {
	return Locator{Strategy: ByXPath, Selector: expression}
}

// Query translates the Locator into the selector string and query option
// understood by chromedp. XPath expressions go through the DOM search API;
// id and CSS selectors use querySelector semantics.
func (l Locator) Query() (string, chromedp.QueryOption) {
	switch l.Strategy {
	case ByID:
		return "#" + l.Selector, chromedp.ByQuery
	case ByXPath:
		return l.Selector, chromedp.BySearch
	default:
		return l.Selector, chromedp.ByQuery
	}
}

// IsZero reports whether the Locator is the empty value.
func (l Locator) IsZero() bool {
	return l.Strategy == "" && l.Selector == ""
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Selector)
}

// XPathLiteral quotes s for embedding into an XPath expression. Values
// containing both quote characters need concat(), everything else is wrapped
// in whichever quote the value does not use.
func XPathLiteral(s string) string {
	switch {
	case !strings.Contains(s, `'`):
		return "'" + s + "'"
	case !strings.Contains(s, `"`):
		return `"` + s + `"`
	default:
		// Mixed quotes: split on single quotes and rejoin with concat().
		parts := strings.Split(s, `'`)
		quoted := make([]string, 0, len(parts)*2)
		for i, p := range parts {
			if i > 0 {
				quoted = append(quoted, `"'"`)
			}
			if p != "" {
				quoted = append(quoted, "'"+p+"'")
			}
		}
		return "concat(" + strings.Join(quoted, ", ") + ")"
	}
}
