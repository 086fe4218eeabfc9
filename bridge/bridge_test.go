package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gopatterns/bridge"
)

func TestShapesCombineWithEitherRenderer(t *testing.T) {
	vec := bridge.VectorRenderer{}
	ras := bridge.RasterRenderer{DPI: 300}

	assert.Equal(t, "vector circle r=2.0", bridge.NewCircle(vec, 2).Draw())
	assert.Equal(t, "raster circle r=2.0 at 300 dpi", bridge.NewCircle(ras, 2).Draw())
	assert.Equal(t, "vector square side=3.5", bridge.NewSquare(vec, 3.5).Draw())
	assert.Equal(t, "raster square side=3.5 at 300 dpi", bridge.NewSquare(ras, 3.5).Draw())
}

func TestRasterRenderer_DefaultDPI(t *testing.T) {
	c := bridge.NewCircle(bridge.RasterRenderer{}, 1)
	assert.Equal(t, "raster circle r=1.0 at 96 dpi", c.Draw())
}

func TestScale_AbstractionChangesWithoutTouchingRenderer(t *testing.T) {
	c := bridge.NewCircle(bridge.VectorRenderer{}, 2)
	c.Scale(2.5)
	assert.Equal(t, "vector circle r=5.0", c.Draw())

	s := bridge.NewSquare(bridge.VectorRenderer{}, 4)
	s.Scale(0.5)
	assert.Equal(t, "vector square side=2.0", s.Draw())
}
