// Package prototype implements the Prototype pattern: new objects are
// produced by deep-cloning registered exemplars instead of being constructed
// from scratch.
//
// A Document clone copies title, body and tags, and always receives a fresh
// UUID, so identity never leaks from the prototype into its copies. The
// Registry maps names to prototypes; Create looks a name up and hands back
// an independent clone.
//
// Errors:
//
//   - ErrUnknownPrototype  Create was given a name never Registered
package prototype
