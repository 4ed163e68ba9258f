package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownTemplates(t *testing.T) {
	for id, want := range map[int]string{1: "classic", 2: "showcase", 3: "story"} {
		tmpl, name, ok := Resolve(id)
		require.True(t, ok, "template %d should resolve", id)
		require.NotNil(t, tmpl)
		assert.Equal(t, want, name)
	}
}

func TestResolveUnknownTemplate(t *testing.T) {
	for _, id := range []int{0, 4, 99, -1} {
		tmpl, name, ok := Resolve(id)
		assert.False(t, ok, "template %d should not resolve", id)
		assert.Nil(t, tmpl)
		assert.Empty(t, name)
	}
}

func TestTemplatesDefineEveryPage(t *testing.T) {
	pages := []string{"home", "products", "product", "opportunity", "join", "contact", "blogs", "blog"}
	for id := 1; id <= 3; id++ {
		tmpl, _, ok := Resolve(id)
		require.True(t, ok)
		for _, page := range pages {
			assert.NotNil(t, tmpl.Lookup(page), "template %d missing page %q", id, page)
		}
	}
}
