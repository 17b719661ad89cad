package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockgraph/blockgraph.go/pkg/models"
)

func tree() []models.Block {
	return []models.Block{
		{ID: "root", Type: models.BlockTypePage, ChildrenIDs: []string{"t1", "dv", "t2"}},
		{ID: "t1", Type: models.BlockTypeText, Content: &models.TextContent{Text: "one"}},
		{ID: "t2", Type: models.BlockTypeText, Content: &models.TextContent{Text: "two"}},
		{ID: "dv", Type: models.BlockTypeDataview, Content: &models.DataviewContent{
			Views: []models.View{{ID: "v1", Name: "Grid"}},
		}},
	}
}

func TestSetGetChildren(t *testing.T) {
	s := New(nil)
	s.Set("root", tree())

	b, ok := s.Get("root", "t1")
	require.True(t, ok)
	text, ok := b.Text()
	require.True(t, ok)
	assert.Equal(t, "one", text.Text)

	children := s.Children("root", "root")
	require.Len(t, children, 3)
	assert.Equal(t, []string{"t1", "dv", "t2"}, []string{children[0].ID, children[1].ID, children[2].ID})

	_, ok = s.Get("root", "missing")
	assert.False(t, ok)
	assert.Empty(t, s.Children("other", "root"))

	page, _ := s.Get("root", "root")
	assert.Equal(t, &models.PageContent{}, page.Content)
}

func TestDelete(t *testing.T) {
	s := New(nil)
	s.Set("root", tree())

	s.Delete("root", "t1", "t2")

	_, ok := s.Get("root", "t1")
	assert.False(t, ok)
	page, _ := s.Get("root", "root")
	assert.Equal(t, []string{"dv"}, page.ChildrenIDs)

	assert.NotPanics(t, func() { s.Delete("unknown", "x") })
}

func TestAddAndSetChildren(t *testing.T) {
	s := New(nil)
	s.Set("root", tree())

	s.Add("root", models.Block{ID: "t3", Type: models.BlockTypeLatex, Content: &models.LatexContent{Text: "x"}})
	s.SetChildrenIDs("root", "root", []string{"t3", "t1"})

	children := s.Children("root", "root")
	require.Len(t, children, 2)
	assert.Equal(t, "t3", children[0].ID)

	s.SetFields("root", "t3", map[string]any{"width": 0.5})
	b, _ := s.Get("root", "t3")
	assert.Equal(t, map[string]any{"width": 0.5}, b.Fields)
}

func TestViews(t *testing.T) {
	s := New(nil)
	s.Set("root", tree())

	before, _ := s.Get("root", "dv")

	s.ViewSet("root", "dv", models.View{ID: "v2", Name: "Board", Type: models.ViewBoard})
	s.ViewSet("root", "dv", models.View{ID: "v1", Name: "Renamed"})

	views := s.Views("root", "dv")
	require.Len(t, views, 2)
	assert.Equal(t, "Renamed", views[0].Name)
	assert.NotNil(t, views[0].Filters)
	assert.Equal(t, models.ViewBoard, views[1].Type)

	dv, _ := before.Dataview()
	assert.Equal(t, "Grid", dv.Views[0].Name)

	s.ViewDelete("root", "dv", "v1")
	views = s.Views("root", "dv")
	require.Len(t, views, 1)
	assert.Equal(t, "v2", views[0].ID)

	s.ViewSet("root", "t1", models.View{ID: "v9"})
	assert.Empty(t, s.Views("root", "t1"))
}

func TestClear(t *testing.T) {
	s := New(nil)
	s.Set("a", tree())
	s.Set("b", tree())

	s.Clear("a")
	_, ok := s.Get("a", "root")
	assert.False(t, ok)
	_, ok = s.Get("b", "root")
	assert.True(t, ok)

	s.ClearAll()
	_, ok = s.Get("b", "root")
	assert.False(t, ok)
}
