// Package iterator implements the Iterator pattern over a generic ordered
// List: traversal state lives in the Iterator, not in the collection, so
// several traversals can run over one list independently.
//
// What:
//
//   - List[T]: append-only ordered collection
//   - Iterator[T]: classic HasNext / Next cursor over a stable snapshot
//   - All / Enumerate: Go 1.23 iter.Seq bridges, so a List works directly
//     in range-over-func loops
//
// An Iterator snapshots the list at creation: elements appended afterwards
// are seen by the next Iterator, never by one already handed out.
//
// Errors: none. Exhaustion is reported through Next's second return value.
package iterator
