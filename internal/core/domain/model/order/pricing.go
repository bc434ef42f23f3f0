package order

import "dragonpath/internal/core/domain/model/kernel"

// Fee policy of the marketplace. The shipping fee is a step function of the
// subtotal at the $100 threshold; the platform fee is a fixed percentage of
// the subtotal, deducted from the seller payout.
const (
	// PlatformFeePercent is the marketplace's share of the subtotal.
	PlatformFeePercent = 5

	// CancellationWindowDays is how long after creation a buyer may cancel,
	// provided logistics has not picked up the package.
	CancellationWindowDays = 10

	shippingFeeThresholdCents = 100_00
	shippingFeeStandardCents  = 10_00
	shippingFeeRaisedCents    = 15_00
)

// ShippingFeeFor returns 15.00 when the subtotal exceeds 100.00, otherwise 10.00.
// A subtotal of exactly 100.00 gets the standard fee.
func ShippingFeeFor(subtotal kernel.Money) kernel.Money {
	if subtotal.GreaterThan(kernel.NewMoneyFromCents(shippingFeeThresholdCents)) {
		return kernel.NewMoneyFromCents(shippingFeeRaisedCents)
	}
	return kernel.NewMoneyFromCents(shippingFeeStandardCents)
}

// PlatformFeeFor returns 5% of the subtotal, rounded half-up to the cent.
func PlatformFeeFor(subtotal kernel.Money) kernel.Money {
	return subtotal.Percent(PlatformFeePercent)
}
