package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

func sampleView() models.View {
	return models.View{
		ID:               "view1",
		Type:             models.ViewBoard,
		Name:             "Board",
		CoverRelationKey: "coverId",
		CoverFit:         true,
		CardSize:         2,
		HideIcon:         true,
		GroupRelationKey: "status",
		Relations: []models.ViewRelation{
			{RelationKey: "name", IsVisible: true, Width: 250},
			{RelationKey: "dueDate", IncludeTime: true, TimeFormat: 1, DateFormat: 3},
		},
		Filters: []models.Filter{
			{RelationKey: "tag", Operator: models.FilterAnd, Condition: models.ConditionIn, Value: []any{"a", "b"}},
			{RelationKey: "done", Operator: models.FilterOr, Condition: models.ConditionEqual, Value: true},
		},
		Sorts: []models.Sort{
			{RelationKey: "name", Type: models.SortDesc},
		},
	}
}

func sampleRelation() models.Relation {
	return models.Relation{
		RelationKey:        "status",
		Format:             models.FormatStatus,
		Name:               "Status",
		DefaultValue:       "todo",
		DataSource:         1,
		IsHidden:           false,
		IsReadonlyValue:    true,
		IsReadonlyRelation: true,
		MaxCount:           1,
		ObjectTypes:        []string{"task"},
		Scope:              2,
		SelectDict: []models.SelectOption{
			{ID: "o1", Text: "Todo", Color: "red", Scope: 1},
		},
	}
}

func TestBlockRoundTrip(t *testing.T) {
	cases := []models.Block{
		{Type: models.BlockTypePage, Content: &models.PageContent{}},
		{Type: models.BlockTypeText, Content: &models.TextContent{
			Text:    "hello world",
			Style:   models.TextHeader1,
			Checked: true,
			Color:   "red",
			Marks: []models.Mark{
				{Type: models.MarkBold, Range: models.Range{From: 0, To: 5}},
				{Type: models.MarkLink, Param: "https://example.com", Range: models.Range{From: 6, To: 11}},
			},
		}},
		{Type: models.BlockTypeFile, Content: &models.FileContent{
			Hash: "h", Name: "a.png", Type: 2, Style: 1, Mime: "image/png", Size: 1024, AddedAt: 1700000000, State: 2,
		}},
		{Type: models.BlockTypeLayout, Content: &models.LayoutContent{Style: 2}},
		{Type: models.BlockTypeDiv, Content: &models.DivContent{Style: 1}},
		{Type: models.BlockTypeBookmark, Content: &models.BookmarkContent{
			URL: "https://example.com", Title: "Example", Description: "d", ImageHash: "i", FaviconHash: "f", Type: 1,
		}},
		{Type: models.BlockTypeLink, Content: &models.LinkContent{
			TargetBlockID: "target", Style: 1, Fields: map[string]any{"iconSize": 2.0},
		}},
		{Type: models.BlockTypeDataview, Content: &models.DataviewContent{
			Sources:      []string{"type.task"},
			Views:        []models.View{sampleView()},
			Relations:    []models.Relation{sampleRelation()},
			ObjectOrders: []models.ObjectOrder{{ViewID: "view1", GroupID: "g1", ObjectIDs: []string{"x", "y"}}},
		}},
		{Type: models.BlockTypeRelation, Content: &models.RelationContent{Key: "status"}},
		{Type: models.BlockTypeFeatured, Content: &models.FeaturedContent{}},
		{Type: models.BlockTypeLatex, Content: &models.LatexContent{Text: `\sum_i x_i`}},
		{Type: models.BlockTypeTableOfContents, Content: &models.TableOfContentsContent{}},
	}

	for _, in := range cases {
		t.Run(string(in.Type), func(t *testing.T) {
			in.ID = "block-" + string(in.Type)
			in.ChildrenIDs = []string{"c1", "c2"}
			in.Fields = map[string]any{"width": 0.5}
			in.Align = models.AlignCenter
			in.BgColor = "yellow"

			out := FromBlock(ToBlock(in))
			assert.Equal(t, in, out)
		})
	}
}

func TestBlockTypeTablesCoverEveryType(t *testing.T) {
	for c, typ := range blockTypes {
		assert.Contains(t, fromContent, typ, c)
		assert.Contains(t, toContent, typ, c)
	}
	assert.Contains(t, fromContent, models.BlockTypeEmpty)
	assert.Contains(t, toContent, models.BlockTypeEmpty)
}

func TestUnknownBlockType(t *testing.T) {
	assert.Equal(t, models.BlockTypeEmpty, BlockType(wire.ContentCase(999)))
	assert.Equal(t, models.BlockTypeEmpty, BlockType(wire.ContentIcon))
	assert.Equal(t, models.BlockTypeEmpty, BlockType(wire.ContentNotSet))

	b := FromBlock(&wire.Block{ID: "x"})
	assert.Equal(t, models.BlockTypeEmpty, b.Type)
	assert.Equal(t, &models.EmptyBlockContent{}, b.Content)
	assert.Equal(t, []string{}, b.ChildrenIDs)
	assert.Equal(t, map[string]any{}, b.Fields)

	assert.NotPanics(t, func() { FromBlock(nil) })
}

func TestToBlockMismatchedContent(t *testing.T) {
	b := ToBlock(models.Block{ID: "x", Type: models.BlockTypeText, Content: &models.LatexContent{Text: "x"}})
	assert.Equal(t, wire.ContentText, b.ContentCase())
	assert.Nil(t, b.Latex)
	assert.Equal(t, "", b.GetText().Text)
	assert.NotNil(t, b.Fields)
}

func TestViewRoundTrip(t *testing.T) {
	in := sampleView()
	out := FromView(ToView(in))

	require.Len(t, out.Filters, 2)
	require.Len(t, out.Sorts, 1)
	require.Len(t, out.Relations, 2)
	assert.Equal(t, in.Filters, out.Filters)
	assert.Equal(t, in.Sorts, out.Sorts)
	assert.Equal(t, in.Relations, out.Relations)
	assert.Equal(t, in, out)
}

func TestToViewNeverOmitsLists(t *testing.T) {
	v := ToView(models.View{ID: "v"})
	assert.NotNil(t, v.Relations)
	assert.NotNil(t, v.Filters)
	assert.NotNil(t, v.Sorts)
}

func TestFilterWithoutValue(t *testing.T) {
	f := FromFilter(&wire.Filter{RelationKey: "name", Condition: int32(models.ConditionEmpty)})
	assert.Nil(t, f.Value)
	assert.Equal(t, models.ConditionEmpty, f.Condition)

	out := FromFilter(ToFilter(models.Filter{RelationKey: "name"}))
	assert.Nil(t, out.Value)
}

func TestRelationRoundTrip(t *testing.T) {
	in := sampleRelation()
	assert.Equal(t, in, FromRelation(ToRelation(in)))
}

func TestObjectTypeRoundTrip(t *testing.T) {
	in := models.ObjectType{
		ID:          "type.task",
		Name:        "Task",
		Description: "Something to do",
		Layout:      models.LayoutTask,
		IconEmoji:   "✅",
		IsHidden:    true,
		IsArchived:  true,
		IsReadonly:  true,
		Types:       []int32{1, 2},
		Relations:   []models.Relation{sampleRelation()},
	}
	assert.Equal(t, in, FromObjectType(ToObjectType(in)))
}

func TestFromNilDefaults(t *testing.T) {
	r := FromRestrictions(nil)
	assert.Equal(t, []int32{}, r.Object)
	assert.Equal(t, []models.RestrictionsDataview{}, r.Dataview)

	v := FromView(nil)
	assert.Equal(t, []models.Sort{}, v.Sorts)
	assert.Equal(t, []models.Filter{}, v.Filters)
	assert.Equal(t, []models.ViewRelation{}, v.Relations)

	assert.Equal(t, []models.ThreadDevice{}, FromThreadAccount(nil).Devices)
	assert.Equal(t, []string{}, FromHistoryVersion(nil).PreviousIDs)
	assert.Equal(t, map[string]any{}, FromDetails(nil).Details)
	assert.Equal(t, models.ThreadUnknown, FromThreadSummary(nil).Status)
	assert.Equal(t, models.ThreadFiles{}, FromThreadCafe(&wire.ThreadCafe{Status: 3}).Files)
}

func TestFromObjectInfo(t *testing.T) {
	info := FromObjectInfo(&wire.ObjectInfo{
		ID:              "a",
		Details:         wire.EncodeStruct(map[string]any{"name": "A"}),
		Snippet:         "s",
		HasInboundLinks: true,
	})
	assert.Equal(t, models.ObjectInfo{
		ID:              "a",
		Details:         map[string]any{"name": "A"},
		Snippet:         "s",
		HasInboundLinks: true,
	}, info)
}

func TestFromGraph(t *testing.T) {
	node := FromGraphNode(&wire.GraphNode{ID: "n", Type: "page", Name: "N", Layout: 9, Done: true, RelationFormat: 2})
	assert.Equal(t, models.LayoutNote, node.Layout)
	assert.Equal(t, models.FormatNumber, node.RelationFormat)
	assert.True(t, node.Done)

	edge := FromGraphEdge(&wire.GraphEdge{Source: "a", Target: "b", Hidden: true, Type: 1})
	assert.Equal(t, models.GraphEdge{Source: "a", Target: "b", IsHidden: true, Type: 1}, edge)
}

func TestDetailsAndFields(t *testing.T) {
	kv := ToDetails(models.DetailValue{Key: "name", Value: "Doc"})
	assert.Equal(t, "name", kv.Key)
	assert.Equal(t, "Doc", wire.DecodeValue(kv.Value))

	f := ToFields(models.BlockFields{BlockID: "b"})
	assert.Equal(t, "b", f.BlockID)
	assert.Equal(t, map[string]any{}, wire.DecodeStruct(f.Fields))

	p := ToPasteFile(models.PasteFile{Name: "a.txt", Path: "/tmp/a.txt"})
	assert.Equal(t, &wire.PasteFile{Name: "a.txt", LocalPath: "/tmp/a.txt"}, p)
}

func TestFromChatMessage(t *testing.T) {
	msg := FromChatMessage(&wire.ChatMessage{
		ID:      "m",
		Creator: "u1",
		Message: &wire.ChatMessageContent{Text: "hi", Marks: []*wire.Mark{{Type: 3, Range: &wire.Range{To: 2}}}},
		Reactions: &wire.ChatReactions{Reactions: map[string]*wire.IdentityList{
			"🔥": {IDs: []string{"u2"}},
			"👍": {IDs: []string{"u1", "u2"}},
			"👀": {},
		}},
		Attachments: []*wire.ChatAttachment{{Target: "obj", Type: 1}},
	})

	assert.Equal(t, "hi", msg.Content.Text)
	assert.Equal(t, []models.Mark{{Type: models.MarkBold, Range: models.Range{To: 2}}}, msg.Content.Marks)
	assert.Equal(t, []models.Attachment{{Target: "obj", Type: 1}}, msg.Attachments)
	assert.Equal(t, []models.Reaction{
		{Icon: "👍", Authors: []string{"u1", "u2"}},
		{Icon: "🔥", Authors: []string{"u2"}},
	}, msg.Reactions)
}
