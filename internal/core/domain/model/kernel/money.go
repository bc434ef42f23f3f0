package kernel

import (
	"fmt"

	"dragonpath/internal/pkg/errs"
	"dragonpath/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, NewMoneyFromFloat, NewMoneyFromString, or ZeroMoney",
)

// moneyScale is the number of decimal places carried by every Money value.
// All amounts are kept at cent precision; anything finer is rounded half-up
// on construction.
const moneyScale = 2

// Money is a value object for non-negative monetary amounts with cent precision.
// It wraps shopspring/decimal so that fee arithmetic never suffers binary
// floating-point drift. Money is immutable; arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal, rounding to cents half-up.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString creates a Money value from a decimal string such as "299.99".
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// NewMoneyFromCents creates a Money value from a whole number of cents.
// It cannot fail, which makes it suitable for fee constants.
func NewMoneyFromCents(cents uint64) Money {
	return Money{
		amount: decimal.New(int64(cents), -int32(moneyScale)),
		guard:  guard.NewConstructorGuard(),
	}
}

// ZeroMoney returns a valid Money value of 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Sub returns m minus other. Results below zero are rejected since Money
// cannot represent negative amounts.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt returns the Money value multiplied by a non-negative integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(qty))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Percent returns the given percentage of the amount, rounded to cents half-up.
// Percent(5) on 549.98 yields 27.50.
func (m Money) Percent(percent int64) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100)).Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Amount returns the underlying decimal at cent scale.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places, e.g. "15.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
