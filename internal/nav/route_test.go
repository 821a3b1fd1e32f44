package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEveryConfiguredDestination(t *testing.T) {
	table := portfolioTable()
	resolver := NewResolver(table)
	for _, item := range table.Items() {
		id, ok := resolver.Resolve(item.Destination)
		assert.True(t, ok, "destination %s", item.Destination)
		assert.Equal(t, item.ID, id)
	}
}

func TestResolveRequiresExactMatch(t *testing.T) {
	resolver := NewResolver(portfolioTable())
	for _, path := range []string{"/contact", "/blog/", "/Blog", "/blog/post-1", "", "/about?x=1"} {
		id, ok := resolver.Resolve(path)
		assert.False(t, ok, "path %q", path)
		assert.Empty(t, id, "path %q", path)
	}
}

func TestResolveNilTable(t *testing.T) {
	_, ok := NewResolver(nil).Resolve("/")
	assert.False(t, ok)
}
