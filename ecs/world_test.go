package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/triggerfinger/common"
	"github.com/milk9111/triggerfinger/ecs/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Base
	name string
	log  *[]string
}

func (p *probe) Update(dt float64) {
	*p.log = append(*p.log, "update:"+p.name)
}

func (p *probe) Draw(f *render.Frame) {
	*p.log = append(*p.log, "draw:"+p.name)
	f.AddSprite(render.SpriteDraw{Entity: p.Entity().ID(), Position: p.Transform().Position})
}

type otherProbe struct {
	probe
}

type needsProbe struct {
	Base
	sibling *probe
}

func (n *needsProbe) Initialize() error {
	p, err := MustGet[*probe](n.Entity())
	if err != nil {
		return err
	}
	n.sibling = p
	return nil
}

func TestBuilderAttachOrder(t *testing.T) {
	tests := []struct {
		name    string
		build   func(log *[]string) (*Entity, error)
		wantErr error
	}{
		{
			name: "dependency_first",
			build: func(log *[]string) (*Entity, error) {
				return NewBuilder("ok", LayerMiddle).
					WithComponent(&probe{name: "a", log: log}).
					WithComponent(&needsProbe{}).
					Build()
			},
		},
		{
			name: "dependency_missing",
			build: func(log *[]string) (*Entity, error) {
				return NewBuilder("broken", LayerMiddle).
					WithComponent(&needsProbe{}).
					WithComponent(&probe{name: "a", log: log}).
					Build()
			},
			wantErr: ErrMissingComponent,
		},
		{
			name: "nil_component",
			build: func(log *[]string) (*Entity, error) {
				return NewBuilder("nil", LayerMiddle).WithComponent(nil).Build()
			},
			wantErr: ErrNilComponent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			e, err := tc.build(&log)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			n, ok := Get[*needsProbe](e)
			require.True(t, ok)
			assert.NotNil(t, n.sibling)
			assert.Same(t, e, n.Entity())
		})
	}
}

func TestMustBuildPanicsOnConfigurationError(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder("broken", LayerMiddle).WithComponent(&needsProbe{}).MustBuild()
	})
}

func TestGetFirstMatchWins(t *testing.T) {
	var log []string
	first := &probe{name: "first", log: &log}
	second := &probe{name: "second", log: &log}

	ent, err := NewBuilder("e", LayerMiddle).WithComponent(first).WithComponent(second).Build()
	require.NoError(t, err)

	got, ok := Get[*probe](ent)
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = Get[*otherProbe](ent)
	assert.False(t, ok)
	assert.False(t, Has[*needsProbe](ent))

	drawer, ok := Get[Drawer](ent)
	require.True(t, ok)
	assert.Same(t, first, drawer)
}

func TestEntityUpdateAndLayeredDraw(t *testing.T) {
	var log []string
	w := NewWorld()
	bg := NewBuilder("bg", LayerBackground).WithComponent(&probe{name: "bg", log: &log}).MustBuild()
	mid := NewBuilder("mid", LayerMiddle).
		WithComponent(&probe{name: "mid1", log: &log}).
		WithComponent(&probe{name: "mid2", log: &log}).
		MustBuild()
	fg := NewBuilder("fg", LayerForeground).WithComponent(&probe{name: "fg", log: &log}).MustBuild()

	// insertion order deliberately differs from layer order
	w.Add(fg)
	w.Add(mid)
	w.Add(bg)

	w.Update(0.016)
	assert.Equal(t, []string{"update:fg", "update:mid1", "update:mid2", "update:bg"}, log)

	log = nil
	f := &render.Frame{}
	w.Draw(f)
	assert.Equal(t, []string{"draw:bg", "draw:mid1", "draw:mid2", "draw:fg"}, log)
	assert.Len(t, f.Items, 4)

	log = nil
	mid.Draw(f, LayerBackground)
	assert.Empty(t, log)
}

func TestWorldUpdateSkipsEntitiesAddedMidStep(t *testing.T) {
	var log []string
	w := NewWorld()
	spawned := NewBuilder("late", LayerMiddle).WithComponent(&probe{name: "late", log: &log}).MustBuild()
	spawner := NewBuilder("spawner", LayerMiddle).WithComponent(&spawnOnUpdate{world: w, spawn: spawned}).MustBuild()
	w.Add(spawner)

	w.Update(0.1)
	assert.Empty(t, log)
	assert.Equal(t, 2, w.Len())

	w.Update(0.1)
	assert.Equal(t, []string{"update:late"}, log)
}

type spawnOnUpdate struct {
	Base
	world *World
	spawn *Entity
	done  bool
}

func (s *spawnOnUpdate) Update(float64) {
	if s.done {
		return
	}
	s.done = true
	s.world.Add(s.spawn)
}

func TestWorldCompact(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
	}{
		{"none", 3, nil},
		{"middle", 3, []int{1}},
		{"all", 2, []int{0, 1}},
		{"ends", 4, []int{0, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]*Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := NewBuilder("e", LayerMiddle).WithTransform(common.Vec(float64(i), 0), 0).MustBuild()
				ents = append(ents, e)
				w.Add(e)
			}
			for _, idx := range c.destroy {
				ents[idx].Destroy()
			}
			// destroyed entities stay in the set until compaction
			assert.Equal(t, c.create, w.Len())

			removed := w.Compact()
			assert.Equal(t, len(c.destroy), removed)
			assert.Equal(t, c.create-len(c.destroy), w.Len())

			prev := -1.0
			for _, e := range w.Entities() {
				assert.False(t, e.Destroyed())
				assert.Greater(t, e.Transform().Position.X, prev)
				prev = e.Transform().Position.X
			}
		})
	}
}

type countingSystem struct {
	seen []int
}

func (s *countingSystem) Update(w *World) {
	s.seen = append(s.seen, w.Len())
}

func TestWorldSystemsAndQuery(t *testing.T) {
	var log []string
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)
	w.AddSystem(nil)

	w.Add(NewBuilder("plain", LayerMiddle).MustBuild())
	w.Add(NewBuilder("probed", LayerMiddle).WithComponent(&probe{name: "p", log: &log}).MustBuild())
	w.RunSystems()
	assert.Equal(t, []int{2}, sys.seen)

	found := Query[*probe](w)
	require.Len(t, found, 1)
	assert.Equal(t, "probed", found[0].Name())

	first, ok := First[Updater](w)
	require.True(t, ok)
	assert.Same(t, found[0], first)
}
