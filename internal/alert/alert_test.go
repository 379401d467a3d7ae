package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	first := Alert{ID: "1", Msg: "Test alert 1", Type: "success"}
	second := Alert{ID: "2", Msg: "Test alert 2", Type: "danger"}

	cases := []struct {
		name   string
		state  []Alert
		action Action
		want   []Alert
	}{
		{
			name:   "nil state with unknown action is empty",
			state:  nil,
			action: Action{},
			want:   []Alert{},
		},
		{
			name:   "set appends to empty state",
			state:  []Alert{},
			action: Action{Type: SetAlert, Alert: first},
			want:   []Alert{first},
		},
		{
			name:   "set appends after existing alerts",
			state:  []Alert{first},
			action: Action{Type: SetAlert, Alert: second},
			want:   []Alert{first, second},
		},
		{
			name:   "remove filters by id",
			state:  []Alert{first, second},
			action: Action{Type: RemoveAlert, ID: "1"},
			want:   []Alert{second},
		},
		{
			name:   "remove with unknown id is unchanged",
			state:  []Alert{first},
			action: Action{Type: RemoveAlert, ID: "2"},
			want:   []Alert{first},
		},
		{
			name:   "unknown action is unchanged",
			state:  []Alert{first},
			action: Action{Type: "UNKNOWN_ACTION"},
			want:   []Alert{first},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Reduce(tc.state, tc.action))
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	state := make([]Alert, 1, 4)
	state[0] = Alert{ID: "1"}

	next := Reduce(state, Action{Type: SetAlert, Alert: Alert{ID: "2"}})
	next[0].Msg = "changed"

	assert.Empty(t, state[0].Msg)
	assert.Len(t, state, 1)
}
