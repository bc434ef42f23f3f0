package order

import (
	"errors"

	"dragonpath/internal/pkg/errs"
	"dragonpath/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created through
// the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the structured shipping destination of an order, produced by the
// checkout collaborator. The second address line, state, postal code, and phone
// are optional.
type Address struct {
	name       string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	phone      string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address.
// Recipient name, first address line, city, and country are required.
func NewAddress(name, line1, line2, city, state, postalCode, country, phone string) (Address, error) {
	required := map[string]string{
		"recipient name": name,
		"address line 1": line1,
		"city":           city,
		"country":        country,
	}

	var errList []error
	for param, value := range required {
		if value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(param))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return Address{
		name:       name,
		line1:      line1,
		line2:      line2,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient name.
func (a Address) Name() string { return a.name }

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line.
func (a Address) Line2() string { return a.line2 }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the optional state or region.
func (a Address) State() string { return a.state }

// PostalCode returns the optional postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// Phone returns the optional contact phone number.
func (a Address) Phone() string { return a.phone }
