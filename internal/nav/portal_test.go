package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalRendersNothingBeforeReady(t *testing.T) {
	surface := &recordingSurface{}
	p := NewPortal(surface)

	assert.False(t, p.Render("menu"))
	assert.Equal(t, 0, surface.attached)
	assert.False(t, p.IsReady())
}

func TestPortalMountsExactlyOnce(t *testing.T) {
	surface := &recordingSurface{}
	p := NewPortal(surface)
	p.Ready()
	p.Ready()

	require.True(t, p.Render("first"))
	require.True(t, p.Render("second"))
	assert.Equal(t, 1, surface.attached)
	layer := surface.layers[p.ID()]
	require.NotNil(t, layer)
	assert.Equal(t, []string{"first", "second"}, layer.sets)
}

func TestPortalCloseIsFinal(t *testing.T) {
	surface := &recordingSurface{}
	p := NewPortal(surface)
	p.Ready()
	p.Close()
	p.Close()
	p.Ready()

	assert.True(t, surface.layers[p.ID()].detached)
	assert.False(t, p.Render("late"))
	assert.Equal(t, 1, surface.attached)
}

func TestPortalIDsAreDistinct(t *testing.T) {
	assert.NotEqual(t, NewPortal(nil).ID(), NewPortal(nil).ID())
}
