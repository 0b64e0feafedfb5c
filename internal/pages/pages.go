// internal/pages/pages.go

// Package pages holds one page object per screen of the store admin
// application. Each page object is a stateless wrapper binding a browser
// session to a fixed locator registry; it carries no application data of
// its own. Admin pages require an authenticated session and return
// ErrNotAuthenticated up front instead of letting the precondition surface
// as a downstream wait timeout.
package pages

import (
	"context"
	"errors"

	"github.com/calyptra/storesuite/internal/locator"
	"github.com/calyptra/storesuite/internal/session"
)

// Driver is the slice of session behavior the page objects consume. It is
// implemented by *session.Session.
type Driver interface {
	Navigate(ctx context.Context, url string) error
	Title(ctx context.Context) (string, error)
	Location(ctx context.Context) (string, error)
	Click(ctx context.Context, loc locator.Locator) error
	ClearAndType(ctx context.Context, loc locator.Locator, text string) error
	WaitVisible(ctx context.Context, loc locator.Locator) error
	Text(ctx context.Context, loc locator.Locator) (string, error)
	ScrollIntoView(ctx context.Context, loc locator.Locator) error
	CountNodes(ctx context.Context, loc locator.Locator) (int, error)
	WaitTitleContains(ctx context.Context, marker string) error

	Authenticated() bool
	MarkAuthenticated(v bool)
}

// The browser session is the production Driver.
var _ Driver = (*session.Session)(nil)

var (
	// ErrNotAuthenticated reports that an admin action was attempted on a
	// session that has not observed a successful login.
	ErrNotAuthenticated = errors.New("session is not authenticated")

	// ErrRowNotFound reports that a table-row lookup matched nothing.
	ErrRowNotFound = errors.New("no table row matches")

	// ErrAmbiguousRow reports that a table-row lookup matched more than one
	// row; which row would be edited is undefined, so the operation refuses.
	ErrAmbiguousRow = errors.New("more than one table row matches")
)

// requireAuthenticated is the shared precondition check for admin pages.
func requireAuthenticated(drv Driver) error {
	if !drv.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// visibleWithinWait waits for the element and reports whether it appeared.
// An unmet wait is a negative answer, not an error; any other failure is
// surfaced.
func visibleWithinWait(ctx context.Context, drv Driver, loc locator.Locator) (bool, error) {
	if err := drv.WaitVisible(ctx, loc); err != nil {
		var wte *session.WaitTimeoutError
		if errors.As(err, &wte) || errors.Is(err, context.DeadlineExceeded) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
