package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarMountAtRoot(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")

	p := f.bar.Presentation()
	assert.Equal(t, "Home", p.Active)
	assert.Equal(t, PhaseTop, p.Phase)
	assert.False(t, p.Elevated)
	assert.False(t, p.MenuOpen)

	active := 0
	for _, item := range p.Items {
		if item.Active {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestBarMountAtUnknownPathHasNoActiveItem(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/contact")
	for _, item := range f.bar.Presentation().Items {
		assert.False(t, item.Active, item.ID)
	}
	assert.Empty(t, f.bar.Active())
}

func TestBarScrollFlipsPhase(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")
	f.hub.Scroll(0)
	f.hub.Scroll(50)
	assert.True(t, f.bar.Presentation().Elevated)
	f.hub.Scroll(0)
	assert.False(t, f.bar.Presentation().Elevated)

	var phases []ScrollPhase
	for _, p := range f.snapshot {
		phases = append(phases, p.Phase)
	}
	assert.Equal(t, []ScrollPhase{PhaseElevated, PhaseTop}, phases)
}

func TestBarSelectBlogScenario(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")
	f.bar.Toggle()
	require.True(t, f.bar.Armed())
	f.snapshot = nil

	f.bar.SelectItem("Blog")

	require.Len(t, f.snapshot, 1)
	got := f.snapshot[0]
	assert.False(t, got.MenuOpen)
	assert.Equal(t, "Blog", got.Active)
	assert.Equal(t, []string{"/blog"}, f.router.intents)
	assert.False(t, f.bar.Armed())
}

func TestBarOutsideAndEscapeClose(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")

	f.bar.Toggle()
	f.hub.PointerDown(target{region: "page"})
	assert.Equal(t, MenuClosed, f.bar.MenuState())
	assert.False(t, f.bar.Armed())

	f.bar.Toggle()
	f.hub.KeyDown(KeyEscape)
	assert.Equal(t, MenuClosed, f.bar.MenuState())
	assert.Equal(t, 1, f.hub.Count(EventScroll))
	assert.Equal(t, 1, f.hub.Total())
}

func TestBarUnmountReleasesEverything(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")
	f.bar.Toggle()
	f.bar.Portal().Ready()
	f.bar.Unmount()
	f.bar.Unmount()

	assert.Equal(t, 0, f.hub.Total())
	assert.False(t, f.bar.Mounted())
	assert.True(t, f.surface.layers[f.bar.Portal().ID()].detached)
}

func TestBarTooltipsPassDescriptionsVerbatim(t *testing.T) {
	f := newFixture()
	tip := &recordingTooltip{}
	f.bar.Tooltips(tip)

	want := map[string]string{
		"Home":  "Welcome to my portfolio",
		"Blog":  "My thoughts and insights",
		"About": "Learn about me",
	}
	if diff := cmp.Diff(want, tip.texts); diff != "" {
		t.Fatalf("tooltips mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Home", "Blog", "About"}, tip.order)
}

func TestBarNavigateLeavesActiveRoute(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/about")
	f.bar.Navigate("/contact")
	f.bar.Navigate("")
	assert.Equal(t, "About", f.bar.Active())
	assert.Equal(t, []string{"/contact"}, f.router.intents)
}

func TestBarInputAfterUnmountChangesNothing(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")
	f.bar.Toggle()
	require.True(t, f.bar.Armed())
	f.bar.Unmount()

	assert.Equal(t, MenuClosed, f.bar.MenuState())
	assert.False(t, f.bar.Armed())

	f.bar.Toggle()
	f.bar.SelectItem("Blog")
	assert.False(t, f.bar.Activate("About"))
	f.bar.Navigate("/contact")

	assert.Equal(t, MenuClosed, f.bar.MenuState())
	assert.False(t, f.bar.Armed())
	assert.Equal(t, "Home", f.bar.Active())
	assert.Equal(t, 0, f.hub.Total())
	assert.Empty(t, f.router.intents)
}

func TestBarUnmountIsFinal(t *testing.T) {
	f := newFixture()
	f.bar.Mount("/")
	f.bar.Toggle()
	f.bar.Portal().Ready()
	f.bar.Unmount()

	f.bar.Mount("/blog")
	assert.False(t, f.bar.Mounted())
	assert.Equal(t, f.bar.MenuState() == MenuOpen, f.bar.Armed())
	assert.Equal(t, MenuClosed, f.bar.MenuState())
	assert.Equal(t, 0, f.hub.Total())

	f.hub.Scroll(50)
	f.hub.KeyDown(KeyEscape)
	assert.Equal(t, PhaseTop, f.bar.Phase())
}
