// Package factory implements the Factory Method pattern over notification
// channels: callers name a Kind and receive a ready Notifier without knowing
// the concrete type behind it.
//
// What:
//
//   - Notifier: the product interface (format a notification for delivery)
//   - Kind: the selector (KindEmail, KindSMS, KindPush out of the box)
//   - New(kind): the factory method, a dispatch table Kind → constructor
//   - Register(kind, fn): opens the table to user-defined products
//
// Errors:
//
//   - ErrUnknownKind   New was given a Kind with no registered constructor
//   - ErrKindExists    Register was given an already-taken Kind
//
// Complexity: New and Register are O(1) map operations.
package factory
