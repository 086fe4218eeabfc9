// Package singleton implements the Singleton pattern: one process-wide
// Registry instance, created lazily on first use via sync.Once.
//
// Instance() always returns the same *Registry; construct nothing yourself.
// The registry is safe for concurrent readers and writers so the shared
// instance stays usable from any goroutine.
package singleton
