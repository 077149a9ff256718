// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the fulfillment engine. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PickAllocator: FIFO distribution of a pick quantity for one SKU across
//     the order items competing for it
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple orders following Domain-Driven Design principles.
package services
