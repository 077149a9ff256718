// Package order implements the Order aggregate: the inventory ledger every
// other component of the fulfillment engine reads and writes.
//
// The aggregate consists of:
//   - Order: the aggregate root, owning lifecycle state, shipment batch
//     bookkeeping, and readiness derivation
//   - Item: one SKU line with the per-line quantity invariants
//   - PickEvent: immutable audit records of pick allocations
//   - Status: the order lifecycle state machine
//
// Ownership is strictly one-directional: Order owns Items, Items are
// referenced by PickEvents through their ID. All quantity mutations go
// through aggregate methods so the no-over-allocation invariant
// (qtyPicked + qtyShort <= qtyOrdered) holds at all times.
package order
