package mapper

import (
	"slices"

	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

func ToRange(v models.Range) *wire.Range {
	return &wire.Range{From: v.From, To: v.To}
}

func ToMark(v models.Mark) *wire.Mark {
	return &wire.Mark{
		Type:  int32(v.Type),
		Param: v.Param,
		Range: ToRange(v.Range),
	}
}

func ToDetails(v models.DetailValue) *wire.DetailKV {
	return &wire.DetailKV{Key: v.Key, Value: wire.EncodeValue(v.Value)}
}

func ToFields(v models.BlockFields) *wire.BlockField {
	return &wire.BlockField{BlockID: v.BlockID, Fields: wire.EncodeStruct(v.Fields)}
}

func ToBlockLayout(v models.LayoutContent) *wire.BlockContentLayout {
	return &wire.BlockContentLayout{Style: v.Style}
}

func ToBlockText(v models.TextContent) *wire.BlockContentText {
	return &wire.BlockContentText{
		Text:    v.Text,
		Style:   int32(v.Style),
		Checked: v.Checked,
		Color:   v.Color,
		Marks:   &wire.Marks{Marks: mapList(v.Marks, ToMark)},
	}
}

func ToBlockFile(v models.FileContent) *wire.BlockContentFile {
	return &wire.BlockContentFile{
		Hash:    v.Hash,
		Name:    v.Name,
		Type:    v.Type,
		Style:   v.Style,
		Mime:    v.Mime,
		Size:    v.Size,
		AddedAt: v.AddedAt,
		State:   v.State,
	}
}

func ToBlockBookmark(v models.BookmarkContent) *wire.BlockContentBookmark {
	return &wire.BlockContentBookmark{
		URL:         v.URL,
		Title:       v.Title,
		Description: v.Description,
		ImageHash:   v.ImageHash,
		FaviconHash: v.FaviconHash,
		Type:        v.Type,
	}
}

func ToBlockLink(v models.LinkContent) *wire.BlockContentLink {
	return &wire.BlockContentLink{
		TargetBlockID: v.TargetBlockID,
		Style:         v.Style,
		Fields:        wire.EncodeStruct(v.Fields),
	}
}

func ToBlockDiv(v models.DivContent) *wire.BlockContentDiv {
	return &wire.BlockContentDiv{Style: v.Style}
}

func ToBlockRelation(v models.RelationContent) *wire.BlockContentRelation {
	return &wire.BlockContentRelation{Key: v.Key}
}

func ToBlockLatex(v models.LatexContent) *wire.BlockContentLatex {
	return &wire.BlockContentLatex{Text: v.Text}
}

func ToBlockDataview(v models.DataviewContent) *wire.BlockContentDataview {
	return &wire.BlockContentDataview{
		Source:       nonNil(slices.Clone(v.Sources)),
		Views:        mapList(v.Views, ToView),
		Relations:    mapList(v.Relations, ToRelation),
		ObjectOrders: mapList(v.ObjectOrders, ToObjectOrder),
	}
}

// ToBlock encodes a block. A payload that does not match the block type is
// encoded as the empty payload for that type.
func ToBlock(v models.Block) *wire.Block {
	v.Normalize()

	b := &wire.Block{
		ID:              v.ID,
		Fields:          wire.EncodeStruct(v.Fields),
		ChildrenIDs:     slices.Clone(v.ChildrenIDs),
		BackgroundColor: v.BgColor,
		Align:           int32(v.Align),
	}
	if conv, ok := toContent[v.Type]; ok {
		conv(v.Content, b)
	}
	return b
}

func ToViewRelation(v models.ViewRelation) *wire.ViewRelation {
	return &wire.ViewRelation{
		Key:             v.RelationKey,
		IsVisible:       v.IsVisible,
		Width:           v.Width,
		DateIncludeTime: v.IncludeTime,
		TimeFormat:      v.TimeFormat,
		DateFormat:      v.DateFormat,
	}
}

func ToFilter(v models.Filter) *wire.Filter {
	return &wire.Filter{
		RelationKey: v.RelationKey,
		Operator:    int32(v.Operator),
		Condition:   int32(v.Condition),
		Value:       wire.EncodeValue(v.Value),
	}
}

func ToSort(v models.Sort) *wire.Sort {
	return &wire.Sort{RelationKey: v.RelationKey, Type: int32(v.Type)}
}

// ToView goes through models.NewView first so the relation, filter and sort
// lists are always present in the encoded view.
func ToView(v models.View) *wire.View {
	v = models.NewView(v)
	return &wire.View{
		ID:               v.ID,
		Type:             int32(v.Type),
		Name:             v.Name,
		CoverRelationKey: v.CoverRelationKey,
		CoverFit:         v.CoverFit,
		CardSize:         v.CardSize,
		HideIcon:         v.HideIcon,
		GroupRelationKey: v.GroupRelationKey,
		Relations:        mapList(v.Relations, ToViewRelation),
		Filters:          mapList(v.Filters, ToFilter),
		Sorts:            mapList(v.Sorts, ToSort),
	}
}

func ToObjectOrder(v models.ObjectOrder) *wire.ObjectOrder {
	return &wire.ObjectOrder{
		ViewID:    v.ViewID,
		GroupID:   v.GroupID,
		ObjectIDs: nonNil(slices.Clone(v.ObjectIDs)),
	}
}

func ToPasteFile(v models.PasteFile) *wire.PasteFile {
	return &wire.PasteFile{Name: v.Name, LocalPath: v.Path}
}

func ToObjectType(v models.ObjectType) *wire.ObjectType {
	return &wire.ObjectType{
		URL:         v.ID,
		Name:        v.Name,
		Description: v.Description,
		Layout:      int32(v.Layout),
		IconEmoji:   v.IconEmoji,
		Hidden:      v.IsHidden,
		ReadOnly:    v.IsReadonly,
		IsArchived:  v.IsArchived,
		Types:       nonNil(slices.Clone(v.Types)),
		Relations:   mapList(v.Relations, ToRelation),
	}
}

func ToRelation(v models.Relation) *wire.Relation {
	return &wire.Relation{
		Key:              v.RelationKey,
		Format:           int32(v.Format),
		Name:             v.Name,
		DefaultValue:     wire.EncodeValue(v.DefaultValue),
		DataSource:       v.DataSource,
		Hidden:           v.IsHidden,
		ReadOnly:         v.IsReadonlyValue,
		ReadOnlyRelation: v.IsReadonlyRelation,
		MaxCount:         v.MaxCount,
		ObjectTypes:      nonNil(slices.Clone(v.ObjectTypes)),
		Scope:            v.Scope,
		SelectDict:       mapList(v.SelectDict, ToSelectOption),
	}
}

func ToSelectOption(v models.SelectOption) *wire.RelationOption {
	return &wire.RelationOption{ID: v.ID, Text: v.Text, Color: v.Color, Scope: v.Scope}
}
