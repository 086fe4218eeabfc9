// Package strategy implements the Strategy pattern over shipping quotes:
// a Calculator holds one interchangeable pricing Strategy and delegates
// every quote to it, so pricing rules swap at runtime without the caller
// changing shape.
//
// Shipped strategies: Ground (per-km with a floor), Air (weight-dominated),
// Flat (fixed). Prices are in integer cents.
//
// Errors:
//
//   - ErrNoStrategy       Quote on a Calculator with no strategy set
//   - ErrInvalidShipment  non-positive weight or distance
package strategy
