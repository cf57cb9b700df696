package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusReturned, true},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusReturned, true},
		{StatusDelivered, StatusShipped, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusProcessing, false},
		{StatusReturned, StatusPending, false},
		{StatusReturned, StatusDelivered, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPredecessors(t *testing.T) {
	preds := Predecessors(StatusCancelled)
	assert.ElementsMatch(t, []Status{StatusPending, StatusProcessing}, preds)

	preds = Predecessors(StatusReturned)
	assert.ElementsMatch(t, []Status{StatusShipped, StatusDelivered}, preds)

	assert.Empty(t, Predecessors(StatusPending))
}

func TestPredecessorsMatchesTransitionGraph(t *testing.T) {
	all := []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned}
	for _, target := range all {
		for _, from := range all {
			inPreds := false
			for _, p := range Predecessors(target) {
				if p == from {
					inPreds = true
				}
			}
			assert.Equalf(t, CanTransition(from, target), inPreds, "%s -> %s", from, target)
		}
	}
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusPending.Valid())
	require.True(t, StatusReturned.Valid())
	require.False(t, Status("Completed").Valid())
	require.False(t, Status("pending").Valid())
}

func TestPaymentStatusValid(t *testing.T) {
	require.True(t, PaymentPaid.Valid())
	require.True(t, PaymentRefunded.Valid())
	require.False(t, PaymentStatus("Settled").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	require.True(t, MethodCashOnDelivery.Valid())
	require.True(t, MethodStripe.Valid())
	require.False(t, PaymentMethod("Cheque").Valid())
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := &InvalidTransitionError{From: StatusCancelled, To: StatusShipped}
	assert.Equal(t, "cannot change status from Cancelled to Shipped", err.Error())
}
