package decorator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gopatterns/decorator"
)

func TestBaseDrinksUndecorated(t *testing.T) {
	assert.Equal(t, "espresso", decorator.Espresso{}.Description())
	assert.Equal(t, int64(250), decorator.Espresso{}.Cost())
	assert.Equal(t, "house blend", decorator.HouseBlend{}.Description())
	assert.Equal(t, int64(180), decorator.HouseBlend{}.Cost())
}

func TestSingleWrapper(t *testing.T) {
	b := decorator.WithMilk(decorator.Espresso{})
	assert.Equal(t, "espresso + milk", b.Description())
	assert.Equal(t, int64(290), b.Cost())
}

func TestStackedWrappersAccumulate(t *testing.T) {
	b := decorator.WithWhip(decorator.WithMocha(decorator.WithMilk(decorator.HouseBlend{})))
	assert.Equal(t, "house blend + milk + mocha + whip", b.Description())
	assert.Equal(t, int64(180+40+60+50), b.Cost())
}

func TestSameWrapperTwice(t *testing.T) {
	b := decorator.WithMocha(decorator.WithMocha(decorator.Espresso{}))
	assert.Equal(t, "espresso + mocha + mocha", b.Description())
	assert.Equal(t, int64(250+60+60), b.Cost())
}

func TestWrappingOrderAffectsDescriptionNotCost(t *testing.T) {
	ab := decorator.WithWhip(decorator.WithMilk(decorator.Espresso{}))
	ba := decorator.WithMilk(decorator.WithWhip(decorator.Espresso{}))
	assert.NotEqual(t, ab.Description(), ba.Description())
	assert.Equal(t, ab.Cost(), ba.Cost())
}
