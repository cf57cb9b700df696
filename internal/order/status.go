package order

import "fmt"

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
	StatusReturned   Status = "Returned"
)

// PaymentStatus tracks payment independently of fulfillment; any payment
// status may follow any other.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

type PaymentMethod string

const (
	MethodCashOnDelivery PaymentMethod = "Cash on Delivery"
	MethodCreditCard     PaymentMethod = "Credit Card"
	MethodPayPal         PaymentMethod = "PayPal"
	MethodStripe         PaymentMethod = "Stripe"
	MethodBankTransfer   PaymentMethod = "Bank Transfer"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCashOnDelivery, MethodCreditCard, MethodPayPal, MethodStripe, MethodBankTransfer:
		return true
	}
	return false
}

// transitions is the legal status graph. Cancelled and Returned are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusReturned},
	StatusDelivered:  {StatusReturned},
	StatusCancelled:  {},
	StatusReturned:   {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Predecessors returns every status from which target may legally be
// reached. The repository uses it to apply a status change as a single
// conditional update, so two racing writers cannot both win against a
// stale current value.
func Predecessors(target Status) []Status {
	var from []Status
	for s, nexts := range transitions {
		for _, next := range nexts {
			if next == target {
				from = append(from, s)
			}
		}
	}
	return from
}

// InvalidTransitionError reports a status change outside the legal graph.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}
