package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted devuelve las transiciones en orden y cuenta cuántas veces se mostró.
type scripted struct {
	steps []Transition
	shown int
}

func (s *scripted) Show(context.Context, *App) Transition {
	t := s.steps[s.shown]
	s.shown++
	return t
}

func TestNavigator_PushPopRecarga(t *testing.T) {
	child := &scripted{steps: []Transition{pop()}}
	root := &scripted{steps: []Transition{push(child), quit()}}

	nav := NewNavigator(root)
	require.NoError(t, nav.Run(context.Background(), nil))
	assert.Equal(t, 2, root.shown, "al volver se muestra de nuevo")
	assert.Equal(t, 1, child.shown)
	assert.Zero(t, nav.Depth())
	assert.Nil(t, nav.Current())
}

func TestNavigator_Replace(t *testing.T) {
	home := &scripted{steps: []Transition{pop()}}
	login := &scripted{steps: []Transition{stay(), replaceWith(home)}}

	nav := NewNavigator(login)
	require.NoError(t, nav.Run(context.Background(), nil))
	assert.Equal(t, 2, login.shown)
	assert.Equal(t, 1, home.shown)
}

func TestNavigator_Apply(t *testing.T) {
	a, b := &scripted{}, &scripted{}
	nav := NewNavigator(a)
	nav.Apply(push(b))
	assert.Equal(t, 2, nav.Depth())
	assert.Same(t, b, nav.Current())

	nav.Apply(pop())
	nav.Apply(pop())
	nav.Apply(pop())
	assert.Zero(t, nav.Depth())

	nav.Apply(replaceWith(b))
	assert.Same(t, b, nav.Current())
}

func TestNavigator_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root := &scripted{steps: []Transition{stay()}}
	err := NewNavigator(root).Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, root.shown)
}

func TestChooseOption(t *testing.T) {
	names := []string{"Centro", "Norte"}
	assert.Equal(t, "Norte", chooseOption("2", names))
	assert.Equal(t, "Centro", chooseOption("Centro", names))
	assert.Equal(t, "3", chooseOption("3", names), "fuera de rango se envía tal cual")
	assert.Equal(t, "Sur", chooseOption("Sur", names))
}

func TestParseCommand(t *testing.T) {
	cmd := parseCommand("  E 12 ")
	assert.Equal(t, "e", cmd.verb)
	id, ok := cmd.id()
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	_, ok = parseCommand("e -1").id()
	assert.False(t, ok)
	assert.Equal(t, "", parseCommand("   ").verb)
}
