package game

import (
	"sync"
	"testing"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ component.Environment = (*Context)(nil)

func TestTransitions(t *testing.T) {
	tests := []struct {
		name  string
		steps []State
		want  []bool
		final State
	}{
		{
			name:  "normal_session",
			steps: []State{StatePlaying, StateGameOver},
			want:  []bool{true, true},
			final: StateGameOver,
		},
		{
			name:  "paused_cannot_end",
			steps: []State{StateGameOver},
			want:  []bool{false},
			final: StatePaused,
		},
		{
			name:  "game_over_is_terminal",
			steps: []State{StatePlaying, StateGameOver, StatePlaying, StatePaused, StateGameOver},
			want:  []bool{true, true, false, false, false},
			final: StateGameOver,
		},
		{
			name:  "playing_cannot_pause",
			steps: []State{StatePlaying, StatePaused, StatePlaying},
			want:  []bool{true, false, false},
			final: StatePlaying,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContext(800, 600)
			require.Equal(t, StatePaused, c.State())
			for i, s := range tc.steps {
				assert.Equal(t, tc.want[i], c.Transition(s), "step %d to %s", i, s)
			}
			assert.Equal(t, tc.final, c.State())
		})
	}
}

func TestStateListenersAndLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewContext(800, 600, WithLogger(zap.New(core)))

	var got []string
	c.OnStateChange(func(from, to State) {
		// listeners may read the context
		assert.Equal(t, to, c.State())
		got = append(got, from.String()+"->"+to.String())
	})

	c.Transition(StatePlaying)
	c.Transition(StatePlaying)
	c.Transition(StateGameOver)

	assert.Equal(t, []string{"PAUSED->PLAYING", "PLAYING->GAME_OVER"}, got)
	assert.Equal(t, 2, logs.FilterMessage("state changed").Len())
}

func TestTimeScaleAndScore(t *testing.T) {
	c := NewContext(800, 600)
	assert.Equal(t, 1.0, c.TimeScale())
	c.SetTimeScale(0.4)
	assert.Equal(t, 0.4, c.TimeScale())
	c.SetTimeScale(-2)
	assert.Zero(t, c.TimeScale())

	assert.Equal(t, 1, c.AddScore(1))
	c.SetScore(10)
	assert.Equal(t, 12, c.AddScore(2))
	assert.Equal(t, common.Vec(800, 600), c.Size())
}

func TestPhysicsTuning(t *testing.T) {
	c := NewContext(1, 1)
	assert.Equal(t, common.Vec(0, component.DefaultGravity), c.Gravity())
	assert.Equal(t, component.DefaultDamping, c.Damping())

	c = NewContext(1, 1, WithPhysics(common.Vec(0, 100), 0.5))
	assert.Equal(t, common.Vec(0, 100), c.Gravity())

	c.SetPhysics(common.Vec(1, 2), 0.2)
	assert.Equal(t, common.Vec(1, 2), c.Gravity())
	assert.Equal(t, 0.2, c.Damping())
}

func TestConcurrentAccess(t *testing.T) {
	c := NewContext(1, 1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.SetTimeScale(float64(i))
				_ = c.TimeScale()
				c.AddScore(1)
				c.Transition(StatePlaying)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 800, c.Score())
	assert.Equal(t, StatePlaying, c.State())
}
