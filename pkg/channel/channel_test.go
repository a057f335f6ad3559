package channel

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := map[Status][]Status{
		StatusPending: {StatusOpen, StatusClosed},
		StatusOpen:    {StatusClosing, StatusClosed},
		StatusClosing: {StatusClosed},
		StatusClosed:  {},
	}

	all := []Status{StatusPending, StatusOpen, StatusClosing, StatusClosed}

	for from, allowed := range tests {
		t.Run(from.String(), func(t *testing.T) {
			for _, to := range all {
				assert.Equal(t, contains(allowed, to), from.CanTransition(to), "%s -> %s", from, to)
			}
		})
	}
}

func contains(s []Status, v Status) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func TestStatusJSON(t *testing.T) {
	b, err := json.Marshal(Channel{ID: "0x1", Status: StatusClosing})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"status":"closing"`)

	c := Channel{}
	require.NoError(t, json.Unmarshal(b, &c))
	assert.Equal(t, StatusClosing, c.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"melted"}`), &c))
}

func TestStateErrorIs(t *testing.T) {
	err := errors.Wrap(NewStateError(StateChannelClosed, "0x1"), "claiming")

	assert.ErrorIs(t, err, ErrState)
	assert.ErrorIs(t, err, &StateError{Kind: StateChannelClosed})
	assert.NotErrorIs(t, err, &StateError{Kind: StateChannelMissing})
}
