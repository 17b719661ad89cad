package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyContentMatchesType(t *testing.T) {
	types := []BlockType{
		BlockTypePage, BlockTypeText, BlockTypeFile, BlockTypeLayout, BlockTypeDiv,
		BlockTypeBookmark, BlockTypeLink, BlockTypeDataview, BlockTypeRelation,
		BlockTypeFeatured, BlockTypeLatex, BlockTypeTableOfContents, BlockTypeEmpty,
	}
	for _, typ := range types {
		assert.Equal(t, typ, EmptyContent(typ).BlockType(), typ)
	}

	assert.Equal(t, BlockTypeEmpty, EmptyContent("widget").BlockType())
}

func TestBlockNormalize(t *testing.T) {
	b := &Block{ID: "b", Type: BlockTypeText, Content: &LatexContent{Text: "x"}}
	b.Normalize()

	text, ok := b.Text()
	require.True(t, ok)
	assert.Equal(t, &TextContent{Marks: []Mark{}}, text)
	assert.Equal(t, []string{}, b.ChildrenIDs)
	assert.Equal(t, map[string]any{}, b.Fields)

	kept := &Block{Type: BlockTypeLatex, Content: &LatexContent{Text: "x"}}
	kept.Normalize()
	assert.Equal(t, &LatexContent{Text: "x"}, kept.Content)

	untyped := &Block{}
	untyped.Normalize()
	assert.Equal(t, BlockTypeEmpty, untyped.Type)
	assert.Equal(t, &EmptyBlockContent{}, untyped.Content)
}

func TestNewViewFillsLists(t *testing.T) {
	v := NewView(View{ID: "v1", Name: "All"})
	assert.NotNil(t, v.Sorts)
	assert.NotNil(t, v.Filters)
	assert.NotNil(t, v.Relations)
	assert.Equal(t, "All", v.Name)

	src := View{Sorts: []Sort{{RelationKey: "name"}}}
	copied := NewView(src)
	copied.Sorts[0].RelationKey = "changed"
	assert.Equal(t, "name", src.Sorts[0].RelationKey)
}
