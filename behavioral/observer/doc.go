// Package observer demonstrates the Observer (publish/subscribe) pattern.
//
// A subject keeps a list of observers and notifies all of them when
// something happens, knowing nothing about them beyond the observer
// interface.
//
// Two subjects are provided:
//
//   - Channel publishes events to Subscribers in subscription order.
//     Subscribe returns a Subscription handle that Unsubscribe accepts.
//   - StockObservable notifies StockObservers only when an item comes back
//     in stock, that is when stock moves from zero to a positive amount.
package observer
