package audit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

func sampleOrder() model.Order {
	return model.Order{
		ID:     76,
		Code:   "ORD-0076",
		Status: model.OrderDraft,
	}
}

func TestOrderCreatedEvent(t *testing.T) {
	e := OrderCreated(sampleOrder(), "rush job")
	require.NoError(t, e.Validate())
	require.Equal(t, KindOrderCreated, e.Kind)
	require.Equal(t, uint(76), e.OrderID)
	require.Equal(t, "ORD-0076", e.OrderCode)
	require.Empty(t, e.From)
	require.Equal(t, "draft", e.To)
	require.Equal(t, "rush job", e.Note)
	require.NotEmpty(t, e.ID)
	require.Positive(t, e.At)
}

func TestOrderStatusChangedEvent(t *testing.T) {
	o := sampleOrder()
	o.Status = model.OrderOngoing
	e := OrderStatusChanged(o, model.OrderDraft, "")
	require.NoError(t, e.Validate())
	require.Equal(t, KindOrderStatusChanged, e.Kind)
	require.Equal(t, "draft", e.From)
	require.Equal(t, "ongoing", e.To)

	// Distinct invocations mint distinct event ids.
	require.NotEqual(t, e.ID, OrderStatusChanged(o, model.OrderDraft, "").ID)
}

func TestValidateRejectsDirtyEvents(t *testing.T) {
	base := OrderCreated(sampleOrder(), "")
	cases := []struct {
		name   string
		mutate func(*Event)
	}{
		{"missing id", func(e *Event) { e.ID = "" }},
		{"unknown kind", func(e *Event) { e.Kind = "order.deleted" }},
		{"missing order id", func(e *Event) { e.OrderID = 0 }},
		{"missing order code", func(e *Event) { e.OrderCode = "" }},
		{"zero timestamp", func(e *Event) { e.At = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := base
			tc.mutate(&e)
			require.Error(t, e.Validate())
		})
	}
}

func TestParseEventRoundTrip(t *testing.T) {
	o := sampleOrder()
	o.Status = model.OrderCompleted
	want := OrderStatusChanged(o, model.OrderOngoing, "picked up")

	values := make(map[string]interface{}, 8)
	for k, v := range want.streamValues() {
		values[k] = v
	}
	got, err := parseEvent(values)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseEventRejectsDirtyEntries(t *testing.T) {
	good := OrderCreated(sampleOrder(), "").streamValues()

	t.Run("missing field", func(t *testing.T) {
		values := map[string]interface{}{}
		for k, v := range good {
			values[k] = v
		}
		delete(values, "event_id")
		_, err := parseEvent(values)
		require.Error(t, err)
	})

	t.Run("bad order id", func(t *testing.T) {
		values := map[string]interface{}{}
		for k, v := range good {
			values[k] = v
		}
		values["order_id"] = "seventy-six"
		_, err := parseEvent(values)
		require.Error(t, err)
	})
}
