package prototype

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownPrototype indicates a Create call for a name that was never
// registered.
var ErrUnknownPrototype = errors.New("prototype: unknown prototype")

// Document is a cloneable exemplar. ID is assigned at construction and
// regenerated on every Clone; the remaining fields are copied deeply.
type Document struct {
	// ID uniquely identifies this instance, never shared with clones.
	ID string

	// Title and Body are plain content fields.
	Title string
	Body  string

	// Tags is an ordered label list, deep-copied by Clone.
	Tags []string
}

// NewDocument creates a Document with a fresh UUID.
func NewDocument(title, body string, tags ...string) *Document {
	return &Document{
		ID:    uuid.NewString(),
		Title: title,
		Body:  body,
		Tags:  append([]string(nil), tags...),
	}
}

// Clone returns a deep copy of the document with a fresh UUID.
// The clone shares no mutable state with the original.
// Complexity: O(len(Tags) + text length).
func (d *Document) Clone() *Document {
	return &Document{
		ID:    uuid.NewString(),
		Title: d.Title,
		Body:  d.Body,
		Tags:  append([]string(nil), d.Tags...),
	}
}

// Registry maps names to prototype documents.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	prototypes map[string]*Document
}

// NewRegistry returns an empty prototype registry.
func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[string]*Document)}
}

// Register stores proto under name, replacing any previous prototype.
// The registry keeps the pointer; callers normally register dedicated
// exemplars and mutate them no further.
func (r *Registry) Register(name string, proto *Document) {
	r.prototypes[name] = proto
}

// Create returns a fresh clone of the prototype registered under name.
// Returns ErrUnknownPrototype if name was never registered.
func (r *Registry) Create(name string) (*Document, error) {
	proto, ok := r.prototypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
	}

	return proto.Clone(), nil
}

// Len returns the number of registered prototypes.
func (r *Registry) Len() int { return len(r.prototypes) }
