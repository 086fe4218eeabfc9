package strategy

import (
	"errors"
	"fmt"
)

// Sentinel errors for quoting.
var (
	// ErrNoStrategy indicates Quote was called before SetStrategy.
	ErrNoStrategy = errors.New("strategy: no pricing strategy set")

	// ErrInvalidShipment indicates a non-positive weight or distance.
	ErrInvalidShipment = errors.New("strategy: weight and distance must be positive")
)

// Shipment is the input to every pricing strategy.
type Shipment struct {
	// WeightKg is the parcel weight in kilograms.
	WeightKg float64

	// DistanceKm is the delivery distance in kilometers.
	DistanceKm float64
}

// Strategy prices a shipment in cents.
type Strategy interface {
	// Price returns the cost of the shipment in cents.
	Price(s Shipment) int64

	// Name identifies the strategy in quotes and logs.
	Name() string
}

// Ground prices by distance with a minimum charge.
type Ground struct{}

// Price implements Strategy: 50¢/km, floor 500¢.
func (Ground) Price(s Shipment) int64 {
	cents := int64(s.DistanceKm * 50)
	if cents < 500 {
		return 500
	}

	return cents
}

// Name implements Strategy.
func (Ground) Name() string { return "ground" }

// Air prices mostly by weight.
type Air struct{}

// Price implements Strategy: 300¢/kg plus 10¢/km.
func (Air) Price(s Shipment) int64 {
	return int64(s.WeightKg*300) + int64(s.DistanceKm*10)
}

// Name implements Strategy.
func (Air) Name() string { return "air" }

// Flat prices every shipment the same.
type Flat struct {
	// Cents is the fixed price; zero means free.
	Cents int64
}

// Price implements Strategy.
func (f Flat) Price(Shipment) int64 { return f.Cents }

// Name implements Strategy.
func (Flat) Name() string { return "flat" }

// Calculator is the strategy context: it validates the shipment and
// delegates pricing to the current strategy.
type Calculator struct {
	strategy Strategy
}

// NewCalculator returns a Calculator using strategy, which may be nil and
// set later through SetStrategy.
func NewCalculator(strategy Strategy) *Calculator {
	return &Calculator{strategy: strategy}
}

// SetStrategy swaps the pricing rules at runtime.
func (c *Calculator) SetStrategy(strategy Strategy) { c.strategy = strategy }

// Quote prices the shipment with the current strategy.
//
// Errors:
//   - ErrNoStrategy if no strategy is set
//   - ErrInvalidShipment for non-positive weight or distance
func (c *Calculator) Quote(s Shipment) (int64, error) {
	if c.strategy == nil {
		return 0, ErrNoStrategy
	}
	if s.WeightKg <= 0 || s.DistanceKm <= 0 {
		return 0, fmt.Errorf("%w: weight=%.2f distance=%.2f", ErrInvalidShipment, s.WeightKg, s.DistanceKm)
	}

	return c.strategy.Price(s), nil
}
