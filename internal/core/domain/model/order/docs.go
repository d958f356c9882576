// Package order provides the order aggregate for the marketplace core.
//
// The package models both marketplace services as a single tagged-variant
// aggregate: a necessities order carries a seller snapshot, an agricultural
// produce order does not. One Status state machine serves both variants; only
// the terminal state differs per service:
//
//	necessities:          Unaccepted -> Accepted -> Completed
//	agricultural_product: Unaccepted -> Accepted -> Delivered
//
// Key business rules:
//   - Orders are created Unaccepted, with at least one line item
//   - Line items are snapshots fixed at order time and never mutated
//   - Total price always equals the sum of item price times quantity
//   - Accept is valid only from Unaccepted, completion only from Accepted;
//     every other transition attempt is a conflict
//   - Transfers change custody, never status; the aggregate keeps only the
//     immediately prior custodian as a denormalized snapshot
package order
