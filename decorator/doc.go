// Package decorator implements the Decorator pattern over beverage pricing:
// condiment wrappers stack around a base Beverage, each adding its own cost
// and description without the base type knowing it is wrapped.
//
// Cost is carried in integer cents so stacked additions stay exact.
// Wrapping order is visible in Description (outermost wrapper last) and
// irrelevant to Cost.
package decorator
