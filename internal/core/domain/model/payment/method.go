// Package payment provides the static catalog of payment methods accepted by the
// DragonPath marketplace. Methods are value objects drawn from a fixed set; the
// gateway integration behind them is out of scope, so a method carries only its
// identity and display metadata.
package payment

import (
	"fmt"

	"dragonpath/internal/pkg/errs"
	"dragonpath/internal/pkg/guard"
)

// ErrMethodIsNotConstructed indicates that a Method was obtained by zero-value
// construction instead of the catalog lookup.
var ErrMethodIsNotConstructed = errs.NewValueIsRequiredError(
	"payment Method must be obtained via MethodFromID or the catalog",
)

// Kind classifies a payment method as local or international.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindLocal marks region-bound payment methods such as Payme or Kaspi.
	KindLocal

	// KindInternational marks card networks accepted across regions.
	KindInternational
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:       "unknown",
		KindLocal:         "local",
		KindInternational: "international",
	}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the kind is one of the defined values.
func (k Kind) Validate() error {
	if k != KindLocal && k != KindInternational {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid method kind", k))
	}
	return nil
}

// Method identifies one entry of the payment-method catalog together with its
// display metadata. Methods are immutable and compared by ID.
type Method struct {
	id     string
	name   string
	icon   string
	region string
	kind   Kind

	guard guard.ConstructorGuard
}

func newMethod(id, name, icon, region string, kind Kind) Method {
	return Method{
		id:     id,
		name:   name,
		icon:   icon,
		region: region,
		kind:   kind,
		guard:  guard.NewConstructorGuard(),
	}
}

// Methods returns the full payment-method catalog in display order.
func Methods() []Method {
	return []Method{
		newMethod("payme", "Payme", "💳", "UZ", KindLocal),
		newMethod("click", "Click", "📱", "UZ", KindLocal),
		newMethod("uzcard", "UzCard", "💳", "UZ", KindLocal),
		newMethod("kaspi", "Kaspi", "💰", "KZ", KindLocal),
		newMethod("alipay", "Alipay", "💙", "CN", KindLocal),
		newMethod("wechat", "WeChat Pay", "💚", "CN", KindLocal),
		newMethod("visa", "Visa", "💳", "INTL", KindInternational),
		newMethod("mastercard", "Mastercard", "💳", "INTL", KindInternational),
	}
}

// MethodFromID looks up a catalog method by its identifier.
// Returns an ObjectNotFoundError for identifiers outside the catalog.
func MethodFromID(id string) (Method, error) {
	for _, m := range Methods() {
		if m.id == id {
			return m, nil
		}
	}
	return Method{}, errs.NewObjectNotFoundError("paymentMethod", id)
}

// Validate ensures the method came from the catalog.
func (m Method) Validate() error {
	return m.guard.Validate(ErrMethodIsNotConstructed)
}

// ID returns the catalog identifier, e.g. "payme".
func (m Method) ID() string {
	return m.id
}

// Name returns the display name, e.g. "WeChat Pay".
func (m Method) Name() string {
	return m.name
}

// Icon returns the display icon.
func (m Method) Icon() string {
	return m.icon
}

// Region returns the region tag, e.g. "UZ" or "INTL".
func (m Method) Region() string {
	return m.region
}

// Kind returns whether the method is local or international.
func (m Method) Kind() Kind {
	return m.kind
}

// IsEqual compares methods by identifier.
func (m Method) IsEqual(other Method) bool {
	return m.id == other.id
}
