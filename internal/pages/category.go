// internal/pages/category.go
package pages

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/locator"
)

var categoryLocators = locator.NewRegistry(map[string]locator.Locator{
	"catalog_menu":    locator.XPath("//a[@href='#']//p[contains(text(),'Catalog')]"),
	"categories_item": locator.XPath("//a[@href='/Admin/Category/List']//p[contains(text(),'Categories')]"),
	"add_new_button":  locator.XPath("//a[@class='btn btn-primary']"),
	"name_field":      locator.ID("Name"),
	"save_button":     locator.CSS("button[name='save']"),
	"success_message": locator.XPath("//div[@class='alert alert-success alert-dismissable']"),
})

// CategoryPage drives the catalog category management screen.
type CategoryPage struct {
	drv      Driver
	logger   *zap.Logger
	locators locator.Registry
}

// NewCategoryPage binds a category page object to a session.
func NewCategoryPage(drv Driver, logger *zap.Logger) *CategoryPage {
	return &CategoryPage{
		drv:      drv,
		logger:   logger.Named("category_page"),
		locators: categoryLocators,
	}
}

// NavigateToCategories clicks through Catalog > Categories. Requires an
// authenticated session.
func (p *CategoryPage) NavigateToCategories(ctx context.Context) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("catalog_menu")); err != nil {
		return err
	}
	return p.drv.Click(ctx, p.locators.MustGet("categories_item"))
}

// AddCategory creates a category with the given name.
func (p *CategoryPage) AddCategory(ctx context.Context, name string) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}
	if err := p.drv.Click(ctx, p.locators.MustGet("add_new_button")); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("name_field"), name); err != nil {
		return err
	}
	p.logger.Info("Adding category", zap.String("name", name))
	return p.drv.Click(ctx, p.locators.MustGet("save_button"))
}

// editLinkForRow builds the locator of the Edit link belonging to the table
// row whose cell text equals name. The lookup is textual: it assumes the
// category list shows exactly one row with that name.
func editLinkForRow(name string) locator.Locator {
	return locator.XPath(fmt.Sprintf(
		"//td[text()=%s]/following-sibling::td/a[contains(text(),'Edit')]",
		locator.XPathLiteral(name),
	))
}

// Edit renames the category currently listed as oldName. The row lookup is
// counted first: zero matches yield ErrRowNotFound and multiple matches
// yield ErrAmbiguousRow, since editing an arbitrary one of several
// identically named rows would be undefined behavior.
func (p *CategoryPage) Edit(ctx context.Context, oldName, newName string) error {
	if err := requireAuthenticated(p.drv); err != nil {
		return err
	}

	editLink := editLinkForRow(oldName)
	n, err := p.drv.CountNodes(ctx, editLink)
	if err != nil {
		return err
	}
	switch {
	case n == 0:
		return fmt.Errorf("category %q: %w", oldName, ErrRowNotFound)
	case n > 1:
		return fmt.Errorf("category %q (%d rows): %w", oldName, n, ErrAmbiguousRow)
	}

	if err := p.drv.Click(ctx, editLink); err != nil {
		return err
	}
	if err := p.drv.ClearAndType(ctx, p.locators.MustGet("name_field"), newName); err != nil {
		return err
	}
	p.logger.Info("Editing category", zap.String("old", oldName), zap.String("new", newName))
	return p.drv.Click(ctx, p.locators.MustGet("save_button"))
}

// IsSuccessMessageDisplayed waits for the success banner. An unmet wait
// means "not displayed", not a harness failure.
func (p *CategoryPage) IsSuccessMessageDisplayed(ctx context.Context) (bool, error) {
	return visibleWithinWait(ctx, p.drv, p.locators.MustGet("success_message"))
}
