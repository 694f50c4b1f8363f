package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from model.OrderStatus
		want model.OrderStatus
	}{
		{model.OrderDraft, model.OrderOngoing},
		{model.OrderOngoing, model.OrderCompleted},
		{model.OrderCompleted, model.OrderCompleted},
		{model.OrderCancelled, model.OrderCancelled},
	}
	for _, tt := range tests {
		got, err := Next(tt.from)
		require.NoError(t, err, "from %s", tt.from)
		assert.Equal(t, tt.want, got, "from %s", tt.from)
	}

	_, err := Next(model.OrderStatus("melted"))
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestAdvanceIsNoOpOnTerminal(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderCompleted, model.OrderCancelled} {
		got, err := Advance(model.Order{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}
}

func TestCancel(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderDraft, model.OrderOngoing} {
		got, err := Cancel(model.Order{Status: status})
		require.NoError(t, err)
		assert.Equal(t, model.OrderCancelled, got)
	}

	// Idempotent on an already-cancelled order.
	got, err := Cancel(model.Order{Status: model.OrderCancelled})
	require.NoError(t, err)
	assert.Equal(t, model.OrderCancelled, got)

	// Completed orders can never be cancelled.
	_, err = Cancel(model.Order{Status: model.OrderCompleted})
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestStep(t *testing.T) {
	tests := []struct {
		name    string
		from    model.OrderStatus
		to      model.OrderStatus
		wantErr error
	}{
		{"draft advances", model.OrderDraft, model.OrderOngoing, nil},
		{"ongoing completes", model.OrderOngoing, model.OrderCompleted, nil},
		{"draft cancels", model.OrderDraft, model.OrderCancelled, nil},
		{"ongoing cancels", model.OrderOngoing, model.OrderCancelled, nil},
		{"completed replay is noop", model.OrderCompleted, model.OrderCompleted, nil},
		{"cancelled replay is noop", model.OrderCancelled, model.OrderCancelled, nil},
		{"skip a step", model.OrderDraft, model.OrderCompleted, model.ErrInvalidTransition},
		{"no going back", model.OrderOngoing, model.OrderDraft, model.ErrInvalidTransition},
		{"draft self-loop", model.OrderDraft, model.OrderDraft, model.ErrInvalidTransition},
		{"cancel after completed", model.OrderCompleted, model.OrderCancelled, model.ErrInvalidTransition},
		{"leave cancelled", model.OrderCancelled, model.OrderDraft, model.ErrInvalidTransition},
		{"unknown source", model.OrderStatus("melted"), model.OrderDraft, model.ErrInvalidStatus},
		{"unknown target", model.OrderDraft, model.OrderStatus("melted"), model.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Step(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, Terminal(model.OrderDraft))
	assert.False(t, Terminal(model.OrderOngoing))
	assert.True(t, Terminal(model.OrderCompleted))
	assert.True(t, Terminal(model.OrderCancelled))
}
