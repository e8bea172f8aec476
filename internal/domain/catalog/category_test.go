package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates root category with valid inputs", func(t *testing.T) {
		category, err := NewCategory("Electronics")
		require.NoError(t, err)
		require.NotNil(t, category)

		assert.Equal(t, "Electronics", category.Name)
		assert.Nil(t, category.ParentID)
		assert.Equal(t, 0, category.Level)
		assert.True(t, category.IsRoot())
		assert.NotEmpty(t, category.ID)
		assert.Equal(t, category.ID.String(), category.Path)
	})

	t.Run("trims whitespace from name", func(t *testing.T) {
		category, err := NewCategory("  Electronics  ")
		require.NoError(t, err)
		assert.Equal(t, "Electronics", category.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("x", 256))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 255 characters")
	})
}

func TestNewChildCategory(t *testing.T) {
	parent, err := NewCategory("Electronics")
	require.NoError(t, err)

	t.Run("creates child with path under parent", func(t *testing.T) {
		child, err := NewChildCategory("Laptops", parent)
		require.NoError(t, err)

		require.NotNil(t, child.ParentID)
		assert.Equal(t, parent.ID, *child.ParentID)
		assert.Equal(t, 1, child.Level)
		assert.Equal(t, parent.Path+"/"+child.ID.String(), child.Path)
		assert.False(t, child.IsRoot())
		assert.True(t, child.IsDescendantOf(parent))
		assert.True(t, parent.IsAncestorOf(child))
	})

	t.Run("fails with nil parent", func(t *testing.T) {
		_, err := NewChildCategory("Laptops", nil)
		assert.Error(t, err)
	})

	t.Run("fails beyond max depth", func(t *testing.T) {
		current := parent
		for level := 1; level < MaxCategoryDepth; level++ {
			next, err := NewChildCategory("Level", current)
			require.NoError(t, err)
			current = next
		}

		_, err := NewChildCategory("TooDeep", current)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depth")
	})
}

func TestCategory_MoveTo(t *testing.T) {
	t.Run("moves under new parent", func(t *testing.T) {
		a, _ := NewCategory("A")
		b, _ := NewCategory("B")

		require.NoError(t, b.MoveTo(a))
		require.NotNil(t, b.ParentID)
		assert.Equal(t, a.ID, *b.ParentID)
		assert.Equal(t, 1, b.Level)
		assert.True(t, b.IsDescendantOf(a))
	})

	t.Run("nil parent promotes to root", func(t *testing.T) {
		a, _ := NewCategory("A")
		b, _ := NewChildCategory("B", a)

		require.NoError(t, b.MoveTo(nil))
		assert.Nil(t, b.ParentID)
		assert.Equal(t, 0, b.Level)
		assert.Equal(t, b.ID.String(), b.Path)
	})

	t.Run("rejects self as parent", func(t *testing.T) {
		a, _ := NewCategory("A")
		err := a.MoveTo(a)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own parent")
	})

	t.Run("rejects cycle through descendant", func(t *testing.T) {
		a, _ := NewCategory("A")
		b, _ := NewChildCategory("B", a)
		c, _ := NewChildCategory("C", b)

		err := a.MoveTo(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "descendants")
	})
}

func TestCategory_PromoteToRoot(t *testing.T) {
	a, _ := NewCategory("A")
	b, _ := NewChildCategory("B", a)

	b.PromoteToRoot()

	assert.Nil(t, b.ParentID)
	assert.Equal(t, 0, b.Level)
	assert.Equal(t, b.ID.String(), b.Path)
}

func TestCategory_RebasePath(t *testing.T) {
	a, _ := NewCategory("A")
	b, _ := NewChildCategory("B", a)
	c, _ := NewChildCategory("C", b)

	// Promote b's subtree to root: c must follow
	oldPrefix := b.Path
	b.PromoteToRoot()
	c.RebasePath(oldPrefix, b.Path, -1)

	assert.Equal(t, b.Path+"/"+c.ID.String(), c.Path)
	assert.Equal(t, 1, c.Level)
	assert.True(t, c.IsDescendantOf(b))
	assert.False(t, c.IsDescendantOf(a))
}

func TestCategory_AncestorIDs(t *testing.T) {
	a, _ := NewCategory("A")
	b, _ := NewChildCategory("B", a)
	c, _ := NewChildCategory("C", b)

	ancestors := c.AncestorIDs()
	require.Len(t, ancestors, 2)
	assert.Equal(t, a.ID, ancestors[0])
	assert.Equal(t, b.ID, ancestors[1])

	assert.Nil(t, a.AncestorIDs())
}

func TestCategory_Rename(t *testing.T) {
	a, _ := NewCategory("A")
	version := a.Version

	require.NoError(t, a.Rename("Audio"))
	assert.Equal(t, "Audio", a.Name)
	assert.Equal(t, version+1, a.Version)

	assert.Error(t, a.Rename(""))
}
