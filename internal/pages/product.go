// internal/pages/product.go
package pages

import (
	"context"

	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/locator"
)

var productLocators = locator.NewRegistry(map[string]locator.Locator{
	"catalog_menu":    locator.XPath("//a[@href='#']//p[contains(text(),'Catalog')]"),
	"products_item":   locator.XPath("//a[@href='/Admin/Product/List']//p[contains(text(),'Products')]"),
	"add_new_button":  locator.XPath("//a[@class='btn btn-primary']"),
	"name_field":      locator.ID("Name"),
	"price_field":     locator.ID("Price"),
	"save_button":     locator.CSS("button[name='save']"),
	"success_message": locator.XPath("//div[@class='alert alert-success alert-dismissable']"),
})

// ProductPage drives the catalog product management screen.
type ProductPage struct {
	drv      Driver
	logger   *zap.Logger
	locators locator.Registry
}

// NewProductPage binds a product page object to a session.
func NewProductPage(drv Driver, logger *zap.Logger) *ProductPage {
	return &ProductPage{
		drv:      drv,
		logger:   logger.Named("product_page"),
		locators: productLocators,
	}
}

// NavigateToProducts clicks through Catalog > Products. Requires an
// authenticated session.
func (p *ProductPage) NavigateToProducts(ctx context.Context) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("catalog_menu")); err != nil {
		return err
	}
	return p.drv.Click(ctx, p.locators.MustGet("products_item"))
}

// AddProduct creates a product with the given name and price. Price is the
// raw string typed into the form; the application parses it.
func (p *ProductPage) AddProduct(ctx context.Context, name, price string) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("add_new_button")); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("name_field"), name); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("price_field"), price); err != nil {
		return err
	}
	p.logger.Info("Adding product", zap.String("name", name), zap.String("price", price))
	return p.drv.Click(ctx, p.locators.MustGet("save_button"))
}

// IsSuccessMessageDisplayed waits for the success banner. An unmet wait
// means "not displayed", not a harness failure.
func (p *ProductPage) IsSuccessMessageDisplayed(ctx context.Context) (bool, error) {
	return visibleWithinWait(ctx, p.drv, p.locators.MustGet("success_message"))
}
