package factory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for factory operations.
var (
	// ErrUnknownKind indicates that no constructor is registered for the Kind.
	ErrUnknownKind = errors.New("factory: unknown notifier kind")

	// ErrKindExists indicates an attempt to register an already-taken Kind.
	ErrKindExists = errors.New("factory: kind already registered")
)

// Kind selects a concrete Notifier product.
type Kind string

// Built-in notifier kinds.
const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
	KindPush  Kind = "push"
)

// Notifier is the product: it formats a notification for one delivery channel.
type Notifier interface {
	// Notify returns the delivery line for recipient and message.
	Notify(recipient, message string) string
}

// Constructor builds a fresh Notifier. Registered constructors must be
// side-effect free so every New call yields an independent product.
type Constructor func() Notifier

var (
	mu       sync.RWMutex
	registry = map[Kind]Constructor{
		KindEmail: func() Notifier { return &EmailNotifier{} },
		KindSMS:   func() Notifier { return &SMSNotifier{} },
		KindPush:  func() Notifier { return &PushNotifier{} },
	}
)

// New is the factory method: it looks kind up in the dispatch table and
// returns a freshly constructed Notifier.
// Returns ErrUnknownKind if no constructor is registered for kind.
func New(kind Kind) (Notifier, error) {
	mu.RLock()
	ctor, ok := registry[kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return ctor(), nil
}

// Register adds a user-defined Kind to the dispatch table.
// Returns ErrKindExists if kind is already taken; built-in kinds cannot be
// replaced.
func Register(kind Kind, ctor Constructor) error {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[kind]; exists {
		return fmt.Errorf("%w: %q", ErrKindExists, kind)
	}
	registry[kind] = ctor

	return nil
}

// Kinds returns all registered kinds in lexical order.
func Kinds() []Kind {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// EmailNotifier delivers over e-mail.
type EmailNotifier struct{}

// Notify implements Notifier.
func (n *EmailNotifier) Notify(recipient, message string) string {
	return fmt.Sprintf("email to %s: %s", recipient, message)
}

// SMSNotifier delivers over SMS.
type SMSNotifier struct{}

// Notify implements Notifier.
func (n *SMSNotifier) Notify(recipient, message string) string {
	return fmt.Sprintf("sms to %s: %s", recipient, message)
}

// PushNotifier delivers over mobile push.
type PushNotifier struct{}

// Notify implements Notifier.
func (n *PushNotifier) Notify(recipient, message string) string {
	return fmt.Sprintf("push to %s: %s", recipient, message)
}
