package chain

import (
	"fmt"
	"io"
)

// User is the record the chain processes.
type User struct {
	OrderPlaced bool
	PaymentDone bool
	Delivered   bool
}

// Department is one link of the chain.
type Department interface {
	// Handle applies this department's step to u.
	Handle(w io.Writer, u *User)
	// Next returns the successor, or nil at the end of the chain.
	Next() Department
}

// Linker is implemented by departments whose successor can be set.
type Linker interface {
	Department
	SetNext(Department)
}

// Execute runs d and every successor on u, in order.
func Execute(w io.Writer, d Department, u *User) {
	for ; d != nil; d = d.Next() {
		d.Handle(w, u)
	}
}

// NewChain links ds front to back and returns the head. It returns nil
// when ds is empty.
func NewChain(ds ...Linker) Department {
	if len(ds) == 0 {
		return nil
	}
	for i := 0; i < len(ds)-1; i++ {
		ds[i].SetNext(ds[i+1])
	}
	return ds[0]
}

// link is the successor slot shared by every department.
type link struct {
	next Department
}

// Next implements Department.
func (l *link) Next() Department { return l.next }

// SetNext implements Linker.
func (l *link) SetNext(d Department) { l.next = d }

// Order places the order.
type Order struct{ link }

// Handle implements Department.
func (*Order) Handle(w io.Writer, u *User) {
	if u.OrderPlaced {
		fmt.Fprintln(w, "Order is already placed")
		return
	}
	u.OrderPlaced = true
	fmt.Fprintln(w, "Order placed")
}

// Payment takes the payment.
type Payment struct{ link }

// Handle implements Department.
func (*Payment) Handle(w io.Writer, u *User) {
	if u.PaymentDone {
		fmt.Fprintln(w, "Payment is already done")
		return
	}
	u.PaymentDone = true
	fmt.Fprintln(w, "Payment done")
}

// Delivery ships the order.
type Delivery struct{ link }

// Handle implements Department.
func (*Delivery) Handle(w io.Writer, u *User) {
	if u.Delivered {
		fmt.Fprintln(w, "Delivery is already done")
		return
	}
	u.Delivered = true
	fmt.Fprintln(w, "Delivered")
}

// Demo runs the order chain twice on the same user.
func Demo(w io.Writer) error {
	var u User
	head := NewChain(&Order{}, &Payment{}, &Delivery{})

	Execute(w, head, &u)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The Order has been already handled:")
	fmt.Fprintln(w)
	Execute(w, head, &u)

	return nil
}
