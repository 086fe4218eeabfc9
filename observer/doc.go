// Package observer implements the Observer pattern: a Subject fans events
// out to its subscribed Observers synchronously, in subscription order.
//
// What:
//
//   - Event: topic + payload value object
//   - Observer: the notification sink; ObserverFunc adapts plain functions
//   - Subject: Subscribe / Unsubscribe / Publish
//   - LogObserver: a ready observer that writes every event as a structured
//     zerolog line, the catalog's logging citizen
//
// Delivery is synchronous and ordered: Publish returns after the last
// observer ran, and observers always see events in Publish order.
// Unsubscribing removes the first matching subscription only.
//
// Errors: none. Observers have no way to fail delivery; a sink that can
// fail should record the failure itself.
package observer
