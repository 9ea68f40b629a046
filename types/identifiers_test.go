package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifiers(t *testing.T) {
	assert := assert.New(t)

	t.Run("AddAndHas", func(t *testing.T) {
		ids := NewIdentifiers()
		ids.Add("https://insta.com/a")
		assert.True(ids.Has("https://insta.com/a"))
		assert.False(ids.Has("https://insta.com/b"))
	})

	t.Run("Dedup", func(t *testing.T) {
		ids := NewIdentifiers("a", "b", "a", "a")
		assert.Len(ids, 2)
	})

	t.Run("Sorted", func(t *testing.T) {
		ids := NewIdentifiers("c", "a", "b")
		assert.Equal([]string{"a", "b", "c"}, ids.Sorted())
	})

	t.Run("SortedEmpty", func(t *testing.T) {
		assert.Empty(NewIdentifiers().Sorted())
	})
}

func TestIdentifiersAlgebra(t *testing.T) {
	assert := assert.New(t)

	a := NewIdentifiers("a", "b", "c")
	b := NewIdentifiers("b", "c", "d")

	t.Run("Intersection", func(t *testing.T) {
		assert.Equal([]string{"b", "c"}, a.Intersection(b).Sorted())
		assert.Equal([]string{"b", "c"}, b.Intersection(a).Sorted())
	})

	t.Run("Difference", func(t *testing.T) {
		assert.Equal([]string{"a"}, a.Difference(b).Sorted())
		assert.Equal([]string{"d"}, b.Difference(a).Sorted())
	})

	t.Run("DisjointSets", func(t *testing.T) {
		x := NewIdentifiers("a")
		y := NewIdentifiers("b")
		assert.Empty(x.Intersection(y))
		assert.Equal([]string{"a"}, x.Difference(y).Sorted())
	})
}
