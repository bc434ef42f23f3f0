package order_test

import (
	"testing"
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, price string, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), "Premium Wireless Headphones Pro",
		"https://img.example/headphones.jpg", qty, mustMoney(t, price),
	)
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress(
		"John Buyer", "123 Main Street", "Apt 4B",
		"Tashkent", "Tashkent", "100000", "Uzbekistan", "+998901234567",
	)
	require.NoError(t, err)
	return addr
}

func mustMethod(t *testing.T, id string) payment.Method {
	t.Helper()
	m, err := payment.MethodFromID(id)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T, createdAt time.Time, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{mustItem(t, "299.99", 1)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		items, mustAddress(t), mustMethod(t, "payme"), createdAt,
	)
	require.NoError(t, err)
	return o
}

// advanceToDelivered walks an order through payment and the full fulfillment
// chain, one hour per step.
func advanceToDelivered(t *testing.T, o *order.Order, start time.Time) time.Time {
	t.Helper()
	now := start.Add(time.Hour)
	require.NoError(t, o.ConfirmPayment("TXN-2026-78901234", now))

	for _, milestone := range []order.Status{
		order.Preparing, order.ReadyForPickup,
	} {
		now = now.Add(time.Hour)
		require.NoError(t, o.RecordMilestone(milestone, now))
	}

	now = now.Add(time.Hour)
	require.NoError(t, o.ConfirmLogisticsReceipt("sealed properly", now))

	for _, milestone := range []order.Status{
		order.PickedUp, order.InTransit, order.OutForDelivery, order.Delivered,
	} {
		now = now.Add(time.Hour)
		require.NoError(t, o.RecordMilestone(milestone, now))
	}
	return now
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("should create order with derived financial split", func(t *testing.T) {
		o := newTestOrder(t, now,
			mustItem(t, "299.99", 1),
			mustItem(t, "249.99", 1),
		)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.PendingPayment, o.Status())
		assert.Equal(t, "549.98", o.Subtotal().String())
		assert.Equal(t, "15.00", o.ShippingFee().String())
		assert.Equal(t, "564.98", o.Total().String())

		p := o.Payment()
		assert.Equal(t, order.PaymentPending, p.Status())
		assert.Equal(t, "payme", p.Method().ID())
		assert.Empty(t, p.TransactionID())
		assert.Nil(t, p.PaidAt())

		escrow := p.Escrow()
		assert.Equal(t, "27.50", escrow.PlatformFee().String())
		assert.Equal(t, "522.48", escrow.SellerAmount().String())
		assert.Equal(t, "15.00", escrow.LogisticsAmount().String())
		assert.Nil(t, escrow.HeldAt())

		assert.Empty(t, o.Tracking().Milestones())
		assert.False(t, o.Condition().IsConfirmedByLogistics())
	})

	t.Run("fee invariants hold for arbitrary orders", func(t *testing.T) {
		o := newTestOrder(t, now,
			mustItem(t, "179.99", 2),
			mustItem(t, "0.00", 1),
			mustItem(t, "33.33", 3),
		)

		assert.True(t, o.Subtotal().Add(o.ShippingFee()).IsEqual(o.Total()))

		escrow := o.Payment().Escrow()
		assert.True(t, escrow.SellerAmount().Add(escrow.PlatformFee()).IsEqual(o.Subtotal()))
		assert.True(t, escrow.LogisticsAmount().IsEqual(o.ShippingFee()))
	})

	t.Run("subtotal of exactly 100.00 gets the standard shipping fee", func(t *testing.T) {
		o := newTestOrder(t, now, mustItem(t, "100.00", 1))

		assert.Equal(t, "10.00", o.ShippingFee().String())
		assert.Equal(t, "110.00", o.Total().String())
	})

	t.Run("subtotal of 100.01 gets the raised shipping fee", func(t *testing.T) {
		o := newTestOrder(t, now, mustItem(t, "100.01", 1))

		assert.Equal(t, "15.00", o.ShippingFee().String())
		assert.Equal(t, "115.01", o.Total().String())
	})

	t.Run("should fail with empty line items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, mustAddress(t), mustMethod(t, "visa"), now,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrLineItemsAreRequired)
	})

	t.Run("should fail with invalid buyer id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(
			kernel.NewUUID(), invalidID, kernel.NewUUID(),
			[]order.LineItem{mustItem(t, "10.00", 1)},
			mustAddress(t), mustMethod(t, "visa"), now,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero-value payment method", func(t *testing.T) {
		var m payment.Method

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{mustItem(t, "10.00", 1)},
			mustAddress(t), m, now,
		)

		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), "Running Shoes Elite", "", 0, mustMoney(t, "179.99"),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "", "", 1, mustMoney(t, "179.99"))

		require.Error(t, err)
	})

	t.Run("total is price times quantity", func(t *testing.T) {
		item := mustItem(t, "33.33", 3)

		assert.Equal(t, "99.99", item.Total().String())
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("should move funds into escrow and record milestone", func(t *testing.T) {
		o := newTestOrder(t, now)
		paidAt := now.Add(5 * time.Minute)

		require.NoError(t, o.ConfirmPayment("TXN-2026-78901234", paidAt))

		assert.Equal(t, order.PaymentReceived, o.Status())
		p := o.Payment()
		assert.Equal(t, order.PaymentHeldInEscrow, p.Status())
		assert.Equal(t, "TXN-2026-78901234", p.TransactionID())
		require.NotNil(t, p.PaidAt())
		assert.Equal(t, paidAt, *p.PaidAt())
		require.NotNil(t, p.Escrow().HeldAt())
		assert.Equal(t, paidAt, *p.Escrow().HeldAt())

		milestones := o.Tracking().Milestones()
		require.Len(t, milestones, 1)
		assert.Equal(t, order.PaymentReceived, milestones[0].Status())
		assert.Equal(t, paidAt, milestones[0].Timestamp())
	})

	t.Run("repeated confirmation is rejected, escrow untouched", func(t *testing.T) {
		o := newTestOrder(t, now)
		paidAt := now.Add(5 * time.Minute)
		require.NoError(t, o.ConfirmPayment("TXN-1", paidAt))

		err := o.ConfirmPayment("TXN-2", paidAt.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, "TXN-1", o.Payment().TransactionID())
		assert.Equal(t, paidAt, *o.Payment().Escrow().HeldAt())
		require.Len(t, o.Tracking().Milestones(), 1)
	})

	t.Run("empty transaction id is rejected", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.Error(t, o.ConfirmPayment("", now))
		assert.Equal(t, order.PendingPayment, o.Status())
	})
}

func TestOrder_CanCancel(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("allowed within the window before pickup", func(t *testing.T) {
		o := newTestOrder(t, now.Add(-9*24*time.Hour))

		decision := o.CanCancel(now)

		assert.True(t, decision.Allowed)
		assert.Equal(t, order.DenialNone, decision.Denial)
	})

	t.Run("denied after eleven days", func(t *testing.T) {
		o := newTestOrder(t, now.Add(-11*24*time.Hour))

		decision := o.CanCancel(now)

		assert.False(t, decision.Allowed)
		assert.Equal(t, order.DenialWindowExpired, decision.Denial)
		assert.Contains(t, decision.Denial.String(), "10 days")
	})

	t.Run("denied after pickup regardless of elapsed time", func(t *testing.T) {
		start := now.Add(-24 * time.Hour)
		o := newTestOrder(t, start)
		advanceToDelivered(t, o, start)

		decision := o.CanCancel(now)

		assert.False(t, decision.Allowed)
		assert.Equal(t, order.DenialAlreadyPickedUp, decision.Denial)
		assert.Contains(t, decision.Denial.String(), "pickup")
	})
}

func TestOrder_Cancel(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("cancels with full refund before pickup", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.ConfirmPayment("TXN-1", now.Add(time.Minute)))

		cancelledAt := now.Add(time.Hour)
		require.NoError(t, o.Cancel(cancelledAt))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.Payment().Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, cancelledAt, *o.CancelledAt())
		require.NotNil(t, o.RefundedAt())
		assert.Equal(t, cancelledAt, *o.RefundedAt())
	})

	t.Run("unpaid order can be cancelled too", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.NoError(t, o.Cancel(now.Add(time.Hour)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.Payment().Status())
	})

	t.Run("cancel after pickup fails with pickup denial", func(t *testing.T) {
		o := newTestOrder(t, now)
		advanceToDelivered(t, o, now)

		err := o.Cancel(now.Add(time.Hour))

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrCancellationNotAllowed)

		var denied *order.CancellationNotAllowedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, order.DenialAlreadyPickedUp, denied.Denial)
	})

	t.Run("cancel outside the window fails with window denial", func(t *testing.T) {
		o := newTestOrder(t, now.Add(-11*24*time.Hour))

		err := o.Cancel(now)

		var denied *order.CancellationNotAllowedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, order.DenialWindowExpired, denied.Denial)
	})

	t.Run("cancelled order rejects further mutation", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.Cancel(now))

		require.Error(t, o.Cancel(now.Add(time.Minute)))
		require.Error(t, o.ConfirmPayment("TXN-1", now.Add(time.Minute)))
		require.Error(t, o.RecordMilestone(order.Preparing, now.Add(time.Minute)))
	})
}

func TestOrder_RecordMilestone(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("advances through the fulfillment chain", func(t *testing.T) {
		o := newTestOrder(t, now)
		deliveredAt := advanceToDelivered(t, o, now)

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())

		statuses := make([]order.Status, 0)
		for _, m := range o.Tracking().Milestones() {
			statuses = append(statuses, m.Status())
		}
		assert.Equal(t, []order.Status{
			order.PaymentReceived, order.Preparing, order.ReadyForPickup,
			order.PickedUp, order.InTransit, order.OutForDelivery, order.Delivered,
		}, statuses)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.ConfirmPayment("TXN-1", now))

		err := o.RecordMilestone(order.InTransit, now.Add(time.Hour))

		require.Error(t, err)
		assert.Equal(t, order.PaymentReceived, o.Status())
	})

	t.Run("pickup requires logistics condition confirmation", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.ConfirmPayment("TXN-1", now))
		require.NoError(t, o.RecordMilestone(order.Preparing, now.Add(time.Hour)))
		require.NoError(t, o.RecordMilestone(order.ReadyForPickup, now.Add(2*time.Hour)))

		err := o.RecordMilestone(order.PickedUp, now.Add(3*time.Hour))
		require.ErrorIs(t, err, order.ErrConditionNotConfirmed)

		require.NoError(t, o.ConfirmLogisticsReceipt("package sealed", now.Add(3*time.Hour)))
		require.NoError(t, o.RecordMilestone(order.PickedUp, now.Add(4*time.Hour)))
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("non-fulfillment status is not a milestone", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.Error(t, o.RecordMilestone(order.PaymentReceived, now))
		require.Error(t, o.RecordMilestone(order.Confirmed, now))
	})

	t.Run("milestone timestamps must not go backwards", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.ConfirmPayment("TXN-1", now.Add(time.Hour)))

		err := o.RecordMilestone(order.Preparing, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "precedes previous milestone")
	})
}

func TestOrder_ReleaseEscrow(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("fails before delivery", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.ConfirmPayment("TXN-1", now))
		require.NoError(t, o.RecordMilestone(order.Preparing, now.Add(time.Hour)))

		err := o.ReleaseEscrow(now.Add(2 * time.Hour))

		require.ErrorIs(t, err, order.ErrOrderNotYetDelivered)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.PaymentHeldInEscrow, o.Payment().Status())
	})

	t.Run("releases both portions atomically on delivered order", func(t *testing.T) {
		o := newTestOrder(t, now)
		deliveredAt := advanceToDelivered(t, o, now)

		confirmedAt := deliveredAt.Add(time.Hour)
		require.NoError(t, o.ReleaseEscrow(confirmedAt))

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.PaymentReleasedToSeller, o.Payment().Status())
		require.NotNil(t, o.BuyerConfirmedAt())
		assert.Equal(t, confirmedAt, *o.BuyerConfirmedAt())

		escrow := o.Payment().Escrow()
		require.NotNil(t, escrow.SellerReleasedAt())
		require.NotNil(t, escrow.LogisticsReleasedAt())
		assert.Equal(t, confirmedAt, *escrow.SellerReleasedAt())
		assert.Equal(t, confirmedAt, *escrow.LogisticsReleasedAt())
	})

	t.Run("already confirmed order is a no-op", func(t *testing.T) {
		o := newTestOrder(t, now)
		deliveredAt := advanceToDelivered(t, o, now)
		confirmedAt := deliveredAt.Add(time.Hour)
		require.NoError(t, o.ReleaseEscrow(confirmedAt))

		require.NoError(t, o.ReleaseEscrow(confirmedAt.Add(time.Hour)))

		assert.Equal(t, confirmedAt, *o.BuyerConfirmedAt())
		assert.Equal(t, confirmedAt, *o.Payment().Escrow().SellerReleasedAt())
	})
}

func TestOrder_ConditionEvidence(t *testing.T) {
	now := time.Date(2026, 1, 21, 9, 0, 0, 0, time.UTC)

	t.Run("seller attaches photos and video before pickup", func(t *testing.T) {
		o := newTestOrder(t, now)

		err := o.AttachSellerEvidence(
			[]string{"/docs/orders/x/seller-packing-1.jpg", "/docs/orders/x/seller-packing-2.jpg"},
			"/docs/orders/x/seller-packing.mp4",
			now,
		)

		require.NoError(t, err)
		photos := o.Condition().SellerPhotos()
		require.Len(t, photos, 2)
		assert.Equal(t, "/docs/orders/x/seller-packing-1.jpg", photos[0].URL())
		assert.Equal(t, now, photos[0].UploadedAt())
		assert.Equal(t, "/docs/orders/x/seller-packing.mp4", o.Condition().SellerVideoURL())
	})

	t.Run("evidence without photos or video is rejected", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.Error(t, o.AttachSellerEvidence(nil, "", now))
	})

	t.Run("evidence after pickup is rejected", func(t *testing.T) {
		o := newTestOrder(t, now)
		advanceToDelivered(t, o, now)

		require.Error(t, o.AttachSellerEvidence([]string{"/late.jpg"}, "", now.Add(24*time.Hour)))
	})

	t.Run("logistics receipt confirmation records notes", func(t *testing.T) {
		o := newTestOrder(t, now)
		confirmedAt := now.Add(2 * time.Hour)

		require.NoError(t, o.ConfirmLogisticsReceipt("received in good condition", confirmedAt))

		require.True(t, o.Condition().IsConfirmedByLogistics())
		assert.Equal(t, confirmedAt, *o.Condition().LogisticsConfirmedAt())
		assert.Equal(t, "received in good condition", o.Condition().LogisticsNotes())
	})
}

func TestOrder_EndToEndScenarios(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("cancel after pickup milestone is denied", func(t *testing.T) {
		o := newTestOrder(t, now, mustItem(t, "299.99", 1))
		require.NoError(t, o.ConfirmPayment("TXN-1", now.Add(time.Minute)))
		require.NoError(t, o.RecordMilestone(order.Preparing, now.Add(time.Hour)))
		require.NoError(t, o.RecordMilestone(order.ReadyForPickup, now.Add(2*time.Hour)))
		require.NoError(t, o.ConfirmLogisticsReceipt("ok", now.Add(3*time.Hour)))
		require.NoError(t, o.RecordMilestone(order.PickedUp, now.Add(4*time.Hour)))

		err := o.Cancel(now.Add(5 * time.Hour))

		var denied *order.CancellationNotAllowedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, order.DenialAlreadyPickedUp, denied.Denial)
	})

	t.Run("cancel without pickup within the window succeeds", func(t *testing.T) {
		o := newTestOrder(t, now, mustItem(t, "299.99", 1))
		require.NoError(t, o.ConfirmPayment("TXN-1", now.Add(time.Minute)))

		require.NoError(t, o.Cancel(now.Add(48*time.Hour)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.Payment().Status())
	})

	t.Run("full happy path through escrow release", func(t *testing.T) {
		o := newTestOrder(t, now, mustItem(t, "179.99", 1))
		deliveredAt := advanceToDelivered(t, o, now)
		require.NoError(t, o.ReleaseEscrow(deliveredAt.Add(time.Hour)))

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.PaymentReleasedToSeller, o.Payment().Status())
		assert.Equal(t, "15.00", o.ShippingFee().String())
		assert.Equal(t, "194.99", o.Total().String())
		assert.Equal(t, "9.00", o.Payment().Escrow().PlatformFee().String())
		assert.Equal(t, "170.99", o.Payment().Escrow().SellerAmount().String())
		assert.True(t, o.Payment().Escrow().LogisticsAmount().IsEqual(o.ShippingFee()))
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	t.Run("round-trips full order state", func(t *testing.T) {
		original := newTestOrder(t, now)
		deliveredAt := advanceToDelivered(t, original, now)

		milestone0 := original.Tracking().Milestones()[0]
		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:          original.ID(),
			BuyerID:     original.BuyerID(),
			SellerID:    original.SellerID(),
			CreatedAt:   original.CreatedAt(),
			Items:       original.Items(),
			Subtotal:    original.Subtotal(),
			ShippingFee: original.ShippingFee(),
			Total:       original.Total(),
			Address:     original.Address(),
			Status:      original.Status(),
			Payment:     original.Payment(),
			Condition:   original.Condition(),
			Tracking:    original.Tracking(),
			DeliveredAt: original.DeliveredAt(),
		})

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, order.Delivered, restored.Status())
		assert.Equal(t, milestone0.Status(), restored.Tracking().Milestones()[0].Status())
		require.NotNil(t, restored.DeliveredAt())
		assert.Equal(t, deliveredAt, *restored.DeliveredAt())

		// Restored aggregates accept further transitions.
		require.NoError(t, restored.ReleaseEscrow(deliveredAt.Add(time.Hour)))
		assert.Equal(t, order.Confirmed, restored.Status())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:       kernel.NewUUID(),
			BuyerID:  kernel.NewUUID(),
			SellerID: kernel.NewUUID(),
			Status:   order.Status(99),
		})

		require.Error(t, err)
	})
}
