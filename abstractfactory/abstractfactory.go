package abstractfactory

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme indicates that ForTheme was given a theme with no
// registered widget family.
var ErrUnknownTheme = errors.New("abstractfactory: unknown theme")

// Theme selects a widget family.
type Theme string

// Built-in themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Button is one abstract product of a widget family.
type Button interface {
	// Press returns the rendered press interaction.
	Press() string
}

// Checkbox is the other abstract product of a widget family.
type Checkbox interface {
	// Toggle returns the rendered toggle interaction.
	Toggle() string
}

// WidgetFactory creates a family of widgets sharing one theme.
type WidgetFactory interface {
	CreateButton(label string) Button
	CreateCheckbox(label string) Checkbox
}

// ForTheme returns the widget factory for theme.
// Returns ErrUnknownTheme for any theme other than ThemeLight and ThemeDark.
func ForTheme(theme Theme) (WidgetFactory, error) {
	switch theme {
	case ThemeLight:
		return lightFactory{}, nil
	case ThemeDark:
		return darkFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
}

// lightFactory produces the light-theme family.
type lightFactory struct{}

func (lightFactory) CreateButton(label string) Button {
	return &themedButton{theme: ThemeLight, label: label}
}

func (lightFactory) CreateCheckbox(label string) Checkbox {
	return &themedCheckbox{theme: ThemeLight, label: label}
}

// darkFactory produces the dark-theme family.
type darkFactory struct{}

func (darkFactory) CreateButton(label string) Button {
	return &themedButton{theme: ThemeDark, label: label}
}

func (darkFactory) CreateCheckbox(label string) Checkbox {
	return &themedCheckbox{theme: ThemeDark, label: label}
}

type themedButton struct {
	theme Theme
	label string
}

// Press implements Button.
func (b *themedButton) Press() string {
	return fmt.Sprintf("[%s] button %q pressed", b.theme, b.label)
}

type themedCheckbox struct {
	theme Theme
	label string
}

// Toggle implements Checkbox.
func (c *themedCheckbox) Toggle() string {
	return fmt.Sprintf("[%s] checkbox %q toggled", c.theme, c.label)
}
