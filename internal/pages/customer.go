// internal/pages/customer.go
package pages

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/locator"
)

// customerAddedMarker is the exact banner text confirming a created customer.
const customerAddedMarker = "The new customer has been added successfully."

var customerLocators = locator.NewRegistry(map[string]locator.Locator{
	"customers_menu":   locator.XPath("//a[@href='#']//p[contains(text(),'Customers')]"),
	"customers_item":   locator.XPath("//a[@href='/Admin/Customer/List']//p[contains(text(),'Customers')]"),
	"add_new_button":   locator.CSS("a.btn-primary"),
	"email_field":      locator.ID("Email"),
	"password_field":   locator.ID("Password"),
	"first_name_field": locator.ID("FirstName"),
	"last_name_field":  locator.ID("LastName"),
	"gender_male":      locator.ID("Gender_Male"),
	"gender_female":    locator.ID("Gender_Female"),
	"dob_field":        locator.ID("DateOfBirth"),
	"company_field":    locator.ID("Company"),
	"save_button":      locator.CSS("button[name='save']"),
	"success_alert":    locator.CSS(".alert-success"),
})

// CustomerDetails carries the Add Customer form values. DateOfBirth and
// Company are optional on some store themes; the page skips them when their
// fields never become visible.
type CustomerDetails struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth string
	Company     string
}

// AddCustomerPage drives the Customers > Add Customer flow. It composes a
// LoginPage by reference so a scenario can authenticate and create a
// customer through one object.
type AddCustomerPage struct {
	drv          Driver
	logger       *zap.Logger
	login        *LoginPage
	locators     locator.Registry
	optionalWait time.Duration
}

// NewAddCustomerPage binds an add-customer page object to a session.
// optionalWait bounds the short visibility wait applied to optional fields.
func NewAddCustomerPage(drv Driver, logger *zap.Logger, login *LoginPage, optionalWait time.Duration) *AddCustomerPage {
	return &AddCustomerPage{
		drv:          drv,
		logger:       logger.Named("add_customer_page"),
		login:        login,
		locators:     customerLocators,
		optionalWait: optionalWait,
	}
}

// LoginAdmin opens the login screen and authenticates with the given admin
// credentials via the composed LoginPage.
func (p *AddCustomerPage) LoginAdmin(ctx context.Context, email, password string) error {
	if err := p.login.Open(ctx); err != nil {
		return err
	}
	return p.login.Login(ctx, email, password)
}

// NavigateToAddCustomer clicks through Customers > Customers > Add new,
// each step gated by the clickable wait. Requires an authenticated session.
func (p *AddCustomerPage) NavigateToAddCustomer(ctx context.Context) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("customers_menu")); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("customers_item")); err != nil {
		return err
	}
	return p.drv.Click(ctx, p.locators.MustGet("add_new_button"))
}

// FillCustomerDetails fills the required fields unconditionally and the
// optional date-of-birth and company fields only if each becomes visible
// within the short bounded wait. A missing optional field is logged and
// skipped; it is a deliberate partial-success policy, not a failure.
func (p *AddCustomerPage) FillCustomerDetails(ctx context.Context, d CustomerDetails) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}

	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("email_field"), d.Email); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("password_field"), d.Password); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("first_name_field"), d.FirstName); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("last_name_field"), d.LastName); err != nil {
		return err
	}

	gender := p.locators.MustGet("gender_female")
	if strings.EqualFold(d.Gender, "male") {
		gender = p.locators.MustGet("gender_male")
	}
	if err := p.drv.Click(ctx, gender); err != nil {
		return err
	}

	if err := p.fillOptional(ctx, "dob_field", d.DateOfBirth); err != nil {
		return err
	}
	if err := p.fillOptional(ctx, "company_field", d.Company); err != nil {
		return err
	}

	return p.drv.ScrollIntoView(ctx, p.locators.MustGet("save_button"))
}

// fillOptional types value into the named field if it becomes visible
// within the optional-field wait, logging a skip otherwise.
func (p *AddCustomerPage) fillOptional(ctx context.Context, name, value string) error {
	loc := p.locators.MustGet(name)

	waitCtx, cancel := context.WithTimeout(ctx, p.optionalWait)
	defer cancel()

	visible, err := visibleWithinWait(waitCtx, p.drv, loc)
	if err != nil {
		return err
	}
	if !visible {
		p.logger.Info("Optional field not visible, skipping", zap.String("field", name))
		return nil
	}
	return p.drv.ClearAndType(ctx, loc, value)
}

// SaveCustomer clicks the save button.
func (p *AddCustomerPage) SaveCustomer(ctx context.Context) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}
	return p.drv.Click(ctx, p.locators.MustGet("save_button"))
}

// IsCustomerAddedSuccessfully checks the success banner for the exact
// confirmation text.
func (p *AddCustomerPage) IsCustomerAddedSuccessfully(ctx context.Context) (bool, error) {
	text, err := p.drv.Text(ctx, p.locators.MustGet("success_alert"))
	if err != nil {
		return false, err
	}
	return strings.Contains(text, customerAddedMarker), nil
}
