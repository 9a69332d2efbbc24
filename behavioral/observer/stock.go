package observer

import (
	"fmt"
	"io"
)

// StockObserver is told when a product is back in stock.
type StockObserver interface {
	Update(w io.Writer)
}

// StockObservable tracks the stock of one product.
type StockObservable struct {
	observers []StockObserver
	stock     int
}

// Register adds o to the notification list.
func (s *StockObservable) Register(o StockObserver) {
	s.observers = append(s.observers, o)
}

// Stock returns the number of items left.
func (s *StockObservable) Stock() int { return s.stock }

// SetStock adds n items. Observers are notified only on a restock, when
// the product was sold out before the call and n is positive.
func (s *StockObservable) SetStock(w io.Writer, n int) {
	restock := s.stock == 0 && n > 0
	s.stock += n
	if restock {
		s.notify(w)
	}
}

// Take removes up to n items and returns how many were removed.
func (s *StockObservable) Take(n int) int {
	if n > s.stock {
		n = s.stock
	}
	s.stock -= n
	return n
}

func (s *StockObservable) notify(w io.Writer) {
	for _, o := range s.observers {
		o.Update(w)
	}
}

// MobileObserver notifies by text message.
type MobileObserver struct {
	Number string
}

// Update implements StockObserver.
func (m MobileObserver) Update(w io.Writer) {
	fmt.Fprintf(w, "Message sent to %s\n", m.Number)
}

// EmailObserver notifies by email.
type EmailObserver struct {
	Address string
}

// Update implements StockObserver.
func (e EmailObserver) Update(w io.Writer) {
	fmt.Fprintf(w, "Email sent to %s\n", e.Address)
}

// Demo publishes a video to three subscribers and restocks a phone.
func Demo(w io.Writer) error {
	ch := NewChannel("funtime")
	for _, name := range []string{"sub1", "sub2", "sub3"} {
		ch.Subscribe(User{Name: name})
	}
	ch.Publish(w, "New video uploaded")

	var iphone StockObservable
	iphone.Register(MobileObserver{Number: "123"})
	iphone.Register(EmailObserver{Address: "abc@gmail.com"})
	iphone.Register(EmailObserver{Address: "xyz@gmail.com"})
	iphone.SetStock(w, 10)

	return nil
}
