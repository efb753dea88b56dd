package extract_test

import (
	"testing"

	"github.com/fwojciec/uidoc"
	"github.com/fwojciec/uidoc/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExamples(t *testing.T) {
	t.Parallel()

	t.Run("titles blocks after h2 or h3 headings, falls back positionally", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(2, "Foo"),
			code("<Foo />"),
		}
		nodes = append(nodes, code("const x = 1"))

		examples := extract.GenericExamples(nodes)

		require.Len(t, examples, 2)
		assert.Equal(t, "Foo", examples[0].Title)
		assert.Equal(t, "Foo example", examples[0].Description)
		assert.Equal(t, "Code Example 2", examples[1].Title)
		assert.Equal(t, "Code example", examples[1].Description)
	})

	t.Run("h1 heading does not title a block", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(1, "Button"),
			code("<Button />"),
		}

		examples := extract.GenericExamples(nodes)

		require.Len(t, examples, 1)
		assert.Equal(t, "Code Example 1", examples[0].Title)
		assert.Equal(t, "Code example", examples[0].Description)
	})

	t.Run("uses the nearest preceding heading", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(2, "Far"),
			heading(3, "Near"),
			paragraph("text between"),
			code("<Near />"),
		}

		examples := extract.GenericExamples(nodes)

		require.Len(t, examples, 1)
		assert.Equal(t, "Near", examples[0].Title)
	})

	t.Run("skips blocks that trim to nothing", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			code("   \n  "),
			code("real code"),
		}

		examples := extract.GenericExamples(nodes)

		require.Len(t, examples, 1)
		assert.Equal(t, "Code Example 1", examples[0].Title)
		assert.Equal(t, "real code", examples[0].Code)
	})

	t.Run("descends into tab containers", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(2, "Preview"),
			tabs(code("tab code")),
		}

		examples := extract.GenericExamples(nodes)

		require.Len(t, examples, 1)
		assert.Equal(t, "tab code", examples[0].Code)
		assert.Equal(t, "Code Example 1", examples[0].Title)
	})

	t.Run("returns nothing for a document without code", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{heading(1, "Button"), paragraph("words")}

		assert.Empty(t, extract.GenericExamples(nodes))
	})
}

func TestSectionExamples(t *testing.T) {
	t.Parallel()

	t.Run("numbers entries within the section", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(2, "Usage"),
			code("first"),
			code("second"),
		}

		examples := extract.SectionExamples(nodes, "Usage")

		require.Len(t, examples, 2)
		assert.Equal(t, "Usage Example 1", examples[0].Title)
		assert.Equal(t, "Usage example", examples[0].Description)
		assert.Equal(t, "Usage Example 2", examples[1].Title)
	})

	t.Run("absent section yields no entries", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{heading(1, "Button")}

		assert.Empty(t, extract.SectionExamples(nodes, "Link"))
	})
}

func TestPageExamples(t *testing.T) {
	t.Parallel()

	t.Run("passes run in fixed order", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(1, "Button"),
			code("generic block"),
			heading(2, "Usage"),
			code("usage block"),
			heading(2, "Link"),
			code("link block"),
		}

		examples := extract.PageExamples(nodes)

		// The generic pass sees all three blocks first, then the named
		// sections re-emit theirs.
		require.Len(t, examples, 5)
		assert.Equal(t, "Code Example 1", examples[0].Title)
		assert.Equal(t, "Usage", examples[1].Title)
		assert.Equal(t, "Link", examples[2].Title)
		assert.Equal(t, "Usage Example 1", examples[3].Title)
		assert.Equal(t, "usage block", examples[3].Code)
		assert.Equal(t, "Link Example 1", examples[4].Title)
		assert.Equal(t, "link block", examples[4].Code)
	})

	t.Run("duplicates across passes are preserved", func(t *testing.T) {
		t.Parallel()

		nodes := []uidoc.Node{
			heading(2, "Usage"),
			code("shared"),
		}

		examples := extract.PageExamples(nodes)

		require.Len(t, examples, 2)
		assert.Equal(t, "shared", examples[0].Code)
		assert.Equal(t, "shared", examples[1].Code)
	})
}
