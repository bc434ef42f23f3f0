package order

import (
	"errors"
	"fmt"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/pkg/errs"
	"dragonpath/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
// the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product position of an order: a product reference with a
// quantity, a unit price, and display metadata for order history rendering.
// The unit price is captured at order time; catalog price changes do not
// affect existing orders.
type LineItem struct {
	productID kernel.UUID
	name      string
	imageURL  string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
// Quantity must be at least 1; the unit price may be zero but not negative
// (Money already enforces non-negativity).
func NewLineItem(
	productID kernel.UUID,
	name string,
	imageURL string,
	quantity int,
	unitPrice kernel.Money,
) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.imageURL = imageURL
	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog reference of the ordered product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product display name captured at order time.
func (li LineItem) Name() string {
	return li.name
}

// ImageURL returns the product image reference captured at order time.
func (li LineItem) ImageURL() string {
	return li.imageURL
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns unit price times quantity.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.MulInt(li.quantity)
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}
