package decorator

// Beverage is the component interface shared by drinks and their wrappers.
type Beverage interface {
	// Description lists the drink and every added condiment, inner first.
	Description() string

	// Cost returns the total price in cents.
	Cost() int64
}

// Espresso is a base drink.
type Espresso struct{}

// Description implements Beverage.
func (Espresso) Description() string { return "espresso" }

// Cost implements Beverage.
func (Espresso) Cost() int64 { return 250 }

// HouseBlend is a base drink.
type HouseBlend struct{}

// Description implements Beverage.
func (HouseBlend) Description() string { return "house blend" }

// Cost implements Beverage.
func (HouseBlend) Cost() int64 { return 180 }

// condiment is the shared wrapper core: a wrapped beverage plus one addition.
type condiment struct {
	inner Beverage
	label string
	price int64
}

func (c condiment) Description() string { return c.inner.Description() + " + " + c.label }

func (c condiment) Cost() int64 { return c.inner.Cost() + c.price }

// WithMilk wraps b, adding steamed milk.
func WithMilk(b Beverage) Beverage {
	return condiment{inner: b, label: "milk", price: 40}
}

// WithMocha wraps b, adding chocolate.
func WithMocha(b Beverage) Beverage {
	return condiment{inner: b, label: "mocha", price: 60}
}

// WithWhip wraps b, adding whipped cream.
func WithWhip(b Beverage) Beverage {
	return condiment{inner: b, label: "whip", price: 50}
}
