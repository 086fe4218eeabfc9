// Package bridge implements the Bridge pattern: the shape abstraction
// (Circle, Square) varies independently of the rendering implementation
// (VectorRenderer, RasterRenderer), connected only through the Renderer
// interface. Adding a shape touches no renderer and adding a renderer
// touches no shape.
package bridge
