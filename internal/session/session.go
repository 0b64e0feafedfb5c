// internal/session/session.go
package session

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/config"
	"github.com/calyptra/storesuite/internal/locator"
)

// Session is one exclusively-owned browser tab. Page objects share it for
// the lifetime of a scenario; it is never safe for concurrent use by two
// scenarios. Every primitive re-resolves its locator against the live DOM
// and bounds its waits by the configured timeout (or the caller's earlier
// deadline).
type Session struct {
	id     string
	logger *zap.Logger
	waits  config.WaitConfig

	tabCtx    context.Context
	tabCancel context.CancelFunc
	onClose   func()

	// authenticated tracks the login state machine so admin pages can check
	// the precondition explicitly instead of discovering it through a
	// downstream wait timeout.
	authenticated bool

	closed bool
	mu     sync.Mutex
}

func newSession(tabCtx context.Context, tabCancel context.CancelFunc, logger *zap.Logger, waits config.WaitConfig) *Session {
	id := uuid.New().String()
	return &Session{
		id:        id,
		logger:    logger.With(zap.String("session_id", id[:8])),
		waits:     waits,
		tabCtx:    tabCtx,
		tabCancel: tabCancel,
	}
}

// ID returns the unique identifier for this session.
func (s *Session) ID() string { return s.id }

// Authenticated reports whether a successful login has been observed on
// this session and not yet undone by a logout.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// MarkAuthenticated records a login-state transition.
func (s *Session) MarkAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}

// opContext derives the context a primitive runs under: the session's tab
// context bounded by the wait timeout, or by the caller's deadline when
// that is sooner.
func (s *Session) opContext(ctx context.Context) (context.Context, context.CancelFunc, time.Duration) {
	timeout := s.waits.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if rem := time.Until(dl); rem < timeout {
			timeout = rem
		}
	}
	opCtx, cancel := context.WithTimeout(s.tabCtx, timeout)
	return opCtx, cancel, timeout
}

// wrapTimeout converts a deadline expiry into a WaitTimeoutError carrying
// the unmet condition; other errors pass through unchanged.
func wrapTimeout(err error, target, condition string, timeout time.Duration) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &WaitTimeoutError{Target: target, Condition: condition, Timeout: timeout, Err: err}
	}
	return err
}

// run executes chromedp actions under an operation context and maps
// deadline expiry onto the wait contract.
func (s *Session) run(ctx context.Context, target, condition string, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel, timeout := s.opContext(ctx)
	defer cancel()
	return wrapTimeout(chromedp.Run(opCtx, actions...), target, condition, timeout)
}

// Navigate loads a URL and waits for the document body to be ready.
func (s *Session) Navigate(ctx context.Context, url string) error {
	s.logger.Debug("Navigating", zap.String("url", url))
	return s.run(ctx, url, "page body ready",
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

// Title returns the current document title.
func (s *Session) Title(ctx context.Context) (string, error) {
	var title string
	err := s.run(ctx, "document", "title readable", chromedp.Title(&title))
	return title, err
}

// Location returns the current page URL.
func (s *Session) Location(ctx context.Context) (string, error) {
	var loc string
	err := s.run(ctx, "document", "location readable", chromedp.Location(&loc))
	return loc, err
}

// Click waits until the element is clickable (visible and enabled), then
// clicks it.
func (s *Session) Click(ctx context.Context, loc locator.Locator) error {
	sel, opt := loc.Query()
	return s.run(ctx, loc.String(), "element clickable",
		chromedp.WaitVisible(sel, opt),
		chromedp.WaitEnabled(sel, opt),
		chromedp.Click(sel, opt),
	)
}

// ClearAndType waits for the element to become visible, clears its current
// value, and types text into it.
func (s *Session) ClearAndType(ctx context.Context, loc locator.Locator, text string) error {
	sel, opt := loc.Query()
	return s.run(ctx, loc.String(), "element visible for input",
		chromedp.WaitVisible(sel, opt),
		chromedp.Clear(sel, opt),
		chromedp.SendKeys(sel, text, opt),
	)
}

// WaitVisible blocks until the element is visible.
func (s *Session) WaitVisible(ctx context.Context, loc locator.Locator) error {
	sel, opt := loc.Query()
	return s.run(ctx, loc.String(), "element visible", chromedp.WaitVisible(sel, opt))
}

// Text waits for the element to become visible and returns its text content.
func (s *Session) Text(ctx context.Context, loc locator.Locator) (string, error) {
	sel, opt := loc.Query()
	var text string
	err := s.run(ctx, loc.String(), "element text readable",
		chromedp.WaitVisible(sel, opt),
		chromedp.Text(sel, &text, opt),
	)
	return text, err
}

// ScrollIntoView scrolls the element into the viewport.
func (s *Session) ScrollIntoView(ctx context.Context, loc locator.Locator) error {
	sel, opt := loc.Query()
	return s.run(ctx, loc.String(), "element scrollable", chromedp.ScrollIntoView(sel, opt))
}

// CountNodes returns how many elements currently match the locator without
// waiting for any to appear.
func (s *Session) CountNodes(ctx context.Context, loc locator.Locator) (int, error) {
	sel, opt := loc.Query()
	var nodes []*cdp.Node
	err := s.run(ctx, loc.String(), "node query",
		chromedp.Nodes(sel, &nodes, opt, chromedp.AtLeast(0)),
	)
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// WaitTitleContains polls the document title at the configured interval
// until it contains marker or the wait times out.
func (s *Session) WaitTitleContains(ctx context.Context, marker string) error {
	opCtx, cancel, timeout := s.opContext(ctx)
	defer cancel()

	ticker := time.NewTicker(s.waits.PollInterval)
	defer ticker.Stop()

	condition := "title contains " + strconv.Quote(marker)
	for {
		var title string
		err := chromedp.Run(opCtx, chromedp.Title(&title))
		if err != nil {
			return wrapTimeout(err, "document", condition, timeout)
		}
		if strings.Contains(title, marker) {
			return nil
		}
		select {
		case <-ticker.C:
		case <-opCtx.Done():
			return wrapTimeout(opCtx.Err(), "document", condition, timeout)
		}
	}
}

// Close releases the tab. It is safe to call multiple times and always
// signals the owning manager exactly once.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	tabCancel := s.tabCancel
	tabCtx := s.tabCtx
	onClose := s.onClose
	s.mu.Unlock()

	if tabCancel != nil {
		tabCancel()
	}
	if tabCtx != nil {
		waitCtx, cancelWait := context.WithTimeout(ctx, 10*time.Second)
		defer cancelWait()
		select {
		case <-tabCtx.Done():
			s.logger.Debug("Session closed")
		case <-waitCtx.Done():
			s.logger.Warn("Deadline exceeded waiting for session to close", zap.Error(waitCtx.Err()))
		}
	}
	if onClose != nil {
		onClose()
	}
	return nil
}
