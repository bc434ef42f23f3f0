// Package order provides the Order aggregate root and the business logic of the
// DragonPath order/escrow lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning identity, financial split, payment record,
//     condition documentation, and the milestone tracking record
//   - Status and PaymentStatus: two state machines with explicit transition tables
//   - LineItem, Address, Payment, Escrow, Tracking, Milestone, Condition: the
//     embedded value objects of an order
//   - The fee policy: tiered shipping fee and percentage platform fee
//
// Key business rules:
//   - An order's total always equals subtotal plus shipping fee, and the escrow
//     seller amount plus platform fee always equals the subtotal
//   - Status transitions are monotonic along the fulfillment chain, with the
//     cancellation/refund exit available only before logistics pickup
//   - Payment state is tracked separately from fulfillment state so refunds can
//     be issued while the shipment record is preserved
//   - Buyers may cancel within ten days of creation, until pickup
//   - Escrow is released to seller and logistics atomically on buyer confirmation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
