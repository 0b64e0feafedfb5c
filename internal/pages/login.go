// internal/pages/login.go
package pages

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/locator"
)

const (
	// dashboardTitleMarker appears in the document title once login succeeds.
	dashboardTitleMarker = "Dashboard"
	// loginTitleMarker appears in the document title of the login screen.
	loginTitleMarker = "Login"
)

var loginLocators = locator.NewRegistry(map[string]locator.Locator{
	"email":        locator.ID("Email"),
	"password":     locator.ID("Password"),
	"login_button": locator.CSS("button.login-button"),
	"logout_link":  locator.XPath("//a[text()='Logout']"),
})

// LoginPage drives the admin login screen and owns the session's
// authenticated/unauthenticated transitions.
type LoginPage struct {
	drv      Driver
	logger   *zap.Logger
	baseURL  string
	locators locator.Registry
}

// NewLoginPage binds a login page object to a session.
func NewLoginPage(drv Driver, logger *zap.Logger, baseURL string) *LoginPage {
	return &LoginPage{
		drv:      drv,
		logger:   logger.Named("login_page"),
		baseURL:  strings.TrimRight(baseURL, "/"),
		locators: loginLocators,
	}
}

// Open navigates to the login screen.
func (p *LoginPage) Open(ctx context.Context) error {
	return p.drv.Navigate(ctx, p.baseURL+"/login")
}

// Login clears and fills the credential fields, submits, and blocks until
// the page title carries the dashboard marker. On success the session is
// marked authenticated; on an unmet wait the credentials were rejected (or
// the target is down) and the session state is left untouched.
func (p *LoginPage) Login(ctx context.Context, email, password string) error {
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("email"), email); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("password"), password); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("login_button")); err != nil {
		return err
	}
	if err := p.drv.WaitTitleContains(ctx, dashboardTitleMarker); err != nil {
		return err
	}
	p.drv.MarkAuthenticated(true)
	p.logger.Info("Logged in", zap.String("email", email))
	return nil
}

// Logout clicks the logout link and waits for the login form to reappear.
func (p *LoginPage) Logout(ctx context.Context) error {
	if err := p.drv.Click(ctx, p.locators.MustGet("logout_link")); err != nil {
		return err
	}
	if err := p.drv.WaitVisible(ctx, p.locators.MustGet("login_button")); err != nil {
		return err
	}
	p.drv.MarkAuthenticated(false)
	p.logger.Info("Logged out")
	return nil
}

// IsLoggedIn reports whether the current page title carries the dashboard
// marker.
func (p *LoginPage) IsLoggedIn(ctx context.Context) (bool, error) {
	title, err := p.drv.Title(ctx)
	if err != nil {
		return false, err
	}
	return strings.Contains(title, dashboardTitleMarker), nil
}

// IsLoggedOut reports whether the current page title carries the login
// marker.
func (p *LoginPage) IsLoggedOut(ctx context.Context) (bool, error) {
	title, err := p.drv.Title(ctx)
	if err != nil {
		return false, err
	}
	return strings.Contains(title, loginTitleMarker), nil
}
