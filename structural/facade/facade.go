// Package facade demonstrates the Facade pattern: Operation hides the
// order, payment and delivery subsystems behind a single CompleteOrder call.
package facade

import (
	"fmt"
	"io"
)

// OrderPlacer records orders.
type OrderPlacer struct{}

// PlaceOrder records an order.
func (OrderPlacer) PlaceOrder(w io.Writer) { fmt.Fprintln(w, "Order placed") }

// PaymentGateway takes payments.
type PaymentGateway struct{}

// MakePayment charges the customer.
func (PaymentGateway) MakePayment(w io.Writer) { fmt.Fprintln(w, "Payment received") }

// Courier delivers parcels.
type Courier struct{}

// Deliver hands the parcel over.
func (Courier) Deliver(w io.Writer) { fmt.Fprintln(w, "Order Delivered") }

// Operation is the facade.
type Operation struct {
	Order    OrderPlacer
	Payment  PaymentGateway
	Delivery Courier
}

// CompleteOrder runs the subsystems in the only valid order.
func (o Operation) CompleteOrder(w io.Writer) {
	o.Order.PlaceOrder(w)
	o.Payment.MakePayment(w)
	o.Delivery.Deliver(w)
}

// Demo completes one order.
func Demo(w io.Writer) error {
	Operation{}.CompleteOrder(w)
	return nil
}
