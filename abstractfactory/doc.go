// Package abstractfactory implements the Abstract Factory pattern over UI
// widget families: a WidgetFactory produces a Button and a Checkbox that are
// guaranteed to belong to the same visual theme, so client code can never
// mix a light button with a dark checkbox.
//
// ForTheme(theme) selects the concrete family; unknown themes yield
// ErrUnknownTheme.
package abstractfactory
