package input

import (
	"testing"
	"time"

	"github.com/milk9111/triggerfinger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() (*Tracker, *common.ManualClock) {
	clock := common.NewManualClock(time.Unix(1000, 0))
	return NewTracker(Config{}, clock), clock
}

func TestQuickShotClassification(t *testing.T) {
	tests := []struct {
		name      string
		hold      time.Duration
		moveTo    common.Vector2
		wantDrag  bool
		wantQuick bool
	}{
		{name: "tap", hold: 100 * time.Millisecond, moveTo: common.Vec(5, 5), wantQuick: true},
		{name: "drag_suppresses", hold: 100 * time.Millisecond, moveTo: common.Vec(20, 0), wantDrag: true},
		{name: "long_press", hold: 300 * time.Millisecond, moveTo: common.Vec(1, 0)},
		{name: "exact_threshold_is_not_drag", hold: 50 * time.Millisecond, moveTo: common.Vec(15, 0), wantQuick: true},
		{name: "exact_duration_is_not_quick", hold: 200 * time.Millisecond, moveTo: common.Zero},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, clock := newTestTracker()
			var ended []Gesture
			tr.OnEnd(func(g Gesture) { ended = append(ended, g) })

			tr.Start(common.Zero)
			tr.Move(tc.moveTo)
			clock.Advance(tc.hold)
			tr.End(tc.moveTo)

			require.Len(t, ended, 1)
			g := ended[0]
			assert.Equal(t, KindEnd, g.Kind)
			assert.Equal(t, tc.hold, g.Duration)
			assert.Equal(t, tc.wantDrag, g.Drag)
			assert.Equal(t, tc.wantQuick, g.QuickShot)
			assert.Equal(t, tc.wantQuick, tr.QuickShot())
			assert.False(t, tr.Touching())
		})
	}
}

func TestDragStaysUntilNextStart(t *testing.T) {
	tr, _ := newTestTracker()
	tr.Start(common.Zero)
	tr.Move(common.Vec(0, 40))
	tr.Move(common.Vec(0, 1))
	assert.True(t, tr.Drag())
	tr.End(common.Vec(0, 1))

	tr.Start(common.Vec(100, 100))
	assert.False(t, tr.Drag())
	assert.Zero(t, tr.Duration())
}

func TestHoldUpdatesDurationWhileTouching(t *testing.T) {
	tr, clock := newTestTracker()
	holds := 0
	tr.OnHold(func(g Gesture) {
		holds++
		assert.True(t, g.Touching)
	})

	tr.Hold()
	assert.Zero(t, holds)

	tr.Start(common.Zero)
	clock.Advance(150 * time.Millisecond)
	tr.Hold()
	assert.Equal(t, 150*time.Millisecond, tr.Duration())
	clock.Advance(100 * time.Millisecond)
	tr.Hold()
	assert.Equal(t, 250*time.Millisecond, tr.Duration())
	assert.False(t, tr.QuickShot())
	assert.Equal(t, 2, holds)

	tr.End(common.Zero)
	clock.Advance(time.Second)
	tr.Hold()
	assert.Equal(t, 2, holds)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	tr, _ := newTestTracker()
	var got []string
	tr.OnStart(func(g Gesture) { got = append(got, "first:"+g.Kind.String()) })
	tr.OnStart(nil)
	tr.OnStart(func(g Gesture) {
		// listeners may read the tracker
		assert.True(t, tr.Touching())
		got = append(got, "second:"+g.Kind.String())
	})
	tr.OnMove(func(g Gesture) { got = append(got, "move") })

	tr.Start(common.Vec(3, 4))
	tr.Move(common.Vec(4, 4))
	assert.Equal(t, []string{"first:start", "second:start", "move"}, got)
}

func TestConfigOverrides(t *testing.T) {
	clock := common.NewManualClock(time.Unix(0, 0))
	tr := NewTracker(Config{DragThreshold: 50, QuickShotDuration: time.Second}, clock)

	tr.Start(common.Zero)
	tr.Move(common.Vec(30, 0))
	clock.Advance(500 * time.Millisecond)
	tr.End(common.Vec(30, 0))
	assert.True(t, tr.QuickShot())
}
