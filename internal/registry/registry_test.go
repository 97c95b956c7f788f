package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapeswap/internal/core"
)

type stubGame struct {
	id     string
	resets int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("stub-missing"))

	g, err := Create("stub-a")
	require.NoError(t, err)
	assert.Equal(t, "stub-a", g.ID())

	// Every Create returns a distinct instance.
	g2, err := Create("stub-a")
	require.NoError(t, err)
	assert.NotSame(t, g, g2)

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"stub-a", "stub-b"})
	assert.IsNonDecreasing(t, ids)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	assert.Panics(t, func() {
		Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	})
}
