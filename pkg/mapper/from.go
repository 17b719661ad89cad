package mapper

import (
	"slices"
	"strings"

	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

func FromAccount(v *wire.Account) models.Account {
	v = orZero(v)
	return models.Account{ID: v.ID, Name: v.Name}
}

func FromAccountConfig(v *wire.AccountConfig) models.AccountConfig {
	v = orZero(v)
	return models.AccountConfig{AllowSpaces: v.EnableSpaces}
}

func FromObjectInfo(v *wire.ObjectInfo) models.ObjectInfo {
	v = orZero(v)
	return models.ObjectInfo{
		ID:              v.ID,
		Details:         wire.DecodeStruct(v.Details),
		Snippet:         v.Snippet,
		HasInboundLinks: v.HasInboundLinks,
	}
}

// FromRecord decodes one search subscription record.
func FromRecord(v *wire.Struct) map[string]any {
	return wire.DecodeStruct(v)
}

func FromRange(v *wire.Range) models.Range {
	v = orZero(v)
	return models.Range{From: v.From, To: v.To}
}

func FromMark(v *wire.Mark) models.Mark {
	v = orZero(v)
	return models.Mark{
		Type:  models.MarkType(v.Type),
		Param: v.Param,
		Range: FromRange(v.Range),
	}
}

func FromPreviewLink(v *wire.LinkPreview) models.PreviewLink {
	v = orZero(v)
	return models.PreviewLink{
		Type:        v.Type,
		Title:       v.Title,
		Description: v.Description,
		FaviconURL:  v.FaviconURL,
		ImageURL:    v.ImageURL,
		URL:         v.URL,
	}
}

func FromDetails(v *wire.ObjectDetails) models.Details {
	v = orZero(v)
	return models.Details{ID: v.ID, Details: wire.DecodeStruct(v.Details)}
}

func FromBlockLayout(v *wire.BlockContentLayout) models.LayoutContent {
	return models.LayoutContent{Style: orZero(v).Style}
}

func FromBlockDiv(v *wire.BlockContentDiv) models.DivContent {
	return models.DivContent{Style: orZero(v).Style}
}

func FromBlockLink(v *wire.BlockContentLink) models.LinkContent {
	v = orZero(v)
	return models.LinkContent{
		TargetBlockID: v.TargetBlockID,
		Style:         v.Style,
		Fields:        wire.DecodeStruct(v.Fields),
	}
}

func FromBlockBookmark(v *wire.BlockContentBookmark) models.BookmarkContent {
	v = orZero(v)
	return models.BookmarkContent{
		URL:         v.URL,
		Title:       v.Title,
		Description: v.Description,
		ImageHash:   v.ImageHash,
		FaviconHash: v.FaviconHash,
		Type:        v.Type,
	}
}

func FromBlockText(v *wire.BlockContentText) models.TextContent {
	v = orZero(v)
	return models.TextContent{
		Text:    v.Text,
		Style:   models.TextStyle(v.Style),
		Checked: v.Checked,
		Color:   v.Color,
		Marks:   mapList(v.GetMarks(), FromMark),
	}
}

func FromBlockFile(v *wire.BlockContentFile) models.FileContent {
	v = orZero(v)
	return models.FileContent{
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

func FromBlockDataview(v *wire.BlockContentDataview) models.DataviewContent {
	v = orZero(v)
	return models.DataviewContent{
		Sources:      nonNil(slices.Clone(v.Source)),
		Views:        mapList(v.Views, FromView),
		Relations:    mapList(v.Relations, FromRelation),
		ObjectOrders: mapList(v.ObjectOrders, FromObjectOrder),
	}
}

func FromBlockRelation(v *wire.BlockContentRelation) models.RelationContent {
	return models.RelationContent{Key: orZero(v).Key}
}

func FromBlockLatex(v *wire.BlockContentLatex) models.LatexContent {
	return models.LatexContent{Text: orZero(v).Text}
}

// FromBlock resolves the block type from the content discriminant and
// converts the matching payload. Unknown kinds become an empty block.
func FromBlock(v *wire.Block) models.Block {
	v = orZero(v)
	typ := BlockType(v.ContentCase())

	var content models.BlockContent
	if conv, ok := fromContent[typ]; ok {
		content = conv(v)
	} else {
		content = models.EmptyContent(typ)
	}

	return models.Block{
		ID:          v.ID,
		Type:        typ,
		ChildrenIDs: nonNil(slices.Clone(v.ChildrenIDs)),
		Fields:      wire.DecodeStruct(v.Fields),
		Align:       models.BlockAlign(v.Align),
		BgColor:     v.BackgroundColor,
		Content:     content,
	}
}

func FromBlocks(v []*wire.Block) []models.Block {
	return mapList(v, FromBlock)
}

func FromRestrictions(v *wire.Restrictions) models.Restrictions {
	v = orZero(v)
	return models.Restrictions{
		Object:   nonNil(slices.Clone(v.Object)),
		Dataview: mapList(v.Dataview, FromRestrictionsDataview),
	}
}

func FromRestrictionsDataview(v *wire.RestrictionsDataview) models.RestrictionsDataview {
	v = orZero(v)
	return models.RestrictionsDataview{
		BlockID:      v.BlockID,
		Restrictions: nonNil(slices.Clone(v.Restrictions)),
	}
}

func FromObjectType(v *wire.ObjectType) models.ObjectType {
	v = orZero(v)
	return models.ObjectType{
		ID:          v.URL,
		Name:        v.Name,
		Description: v.Description,
		Layout:      models.ObjectLayout(v.Layout),
		IconEmoji:   v.IconEmoji,
		IsHidden:    v.Hidden,
		IsArchived:  v.IsArchived,
		IsReadonly:  v.ReadOnly,
		Types:       nonNil(slices.Clone(v.Types)),
		Relations:   mapList(v.Relations, FromRelation),
	}
}

func FromRelation(v *wire.Relation) models.Relation {
	v = orZero(v)
	return models.Relation{
		RelationKey:        v.Key,
		Format:             models.RelationFormat(v.Format),
		Name:               v.Name,
		DefaultValue:       wire.DecodeValue(v.DefaultValue),
		DataSource:         v.DataSource,
		IsHidden:           v.Hidden,
		IsReadonlyValue:    v.ReadOnly,
		IsReadonlyRelation: v.ReadOnlyRelation,
		MaxCount:           v.MaxCount,
		ObjectTypes:        nonNil(slices.Clone(v.ObjectTypes)),
		Scope:              v.Scope,
		SelectDict:         mapList(v.SelectDict, FromSelectOption),
	}
}

func FromSelectOption(v *wire.RelationOption) models.SelectOption {
	v = orZero(v)
	return models.SelectOption{ID: v.ID, Text: v.Text, Color: v.Color, Scope: v.Scope}
}

func FromViewRelation(v *wire.ViewRelation) models.ViewRelation {
	v = orZero(v)
	return models.ViewRelation{
		RelationKey: v.Key,
		IsVisible:   v.IsVisible,
		Width:       v.Width,
		IncludeTime: v.DateIncludeTime,
		TimeFormat:  v.TimeFormat,
		DateFormat:  v.DateFormat,
	}
}

// FromFilter decodes the filter value only when one is present.
func FromFilter(v *wire.Filter) models.Filter {
	v = orZero(v)
	f := models.Filter{
		RelationKey: v.RelationKey,
		Operator:    models.FilterOperator(v.Operator),
		Condition:   models.FilterCondition(v.Condition),
	}
	if v.HasValue() {
		f.Value = wire.DecodeValue(v.Value)
	}
	return f
}

func FromSort(v *wire.Sort) models.Sort {
	v = orZero(v)
	return models.Sort{RelationKey: v.RelationKey, Type: models.SortType(v.Type)}
}

func FromView(v *wire.View) models.View {
	v = orZero(v)
	return models.View{
		ID:               v.ID,
		Type:             models.ViewType(v.Type),
		Name:             v.Name,
		CoverRelationKey: v.CoverRelationKey,
		CoverFit:         v.CoverFit,
		CardSize:         v.CardSize,
		HideIcon:         v.HideIcon,
		GroupRelationKey: v.GroupRelationKey,
		Sorts:            mapList(v.Sorts, FromSort),
		Filters:          mapList(v.Filters, FromFilter),
		Relations:        mapList(v.Relations, FromViewRelation),
	}
}

func FromObjectOrder(v *wire.ObjectOrder) models.ObjectOrder {
	v = orZero(v)
	return models.ObjectOrder{
		ViewID:    v.ViewID,
		GroupID:   v.GroupID,
		ObjectIDs: nonNil(slices.Clone(v.ObjectIDs)),
	}
}

func FromHistoryVersion(v *wire.HistoryVersion) models.HistoryVersion {
	v = orZero(v)
	return models.HistoryVersion{
		ID:          v.ID,
		PreviousIDs: nonNil(slices.Clone(v.PreviousIDs)),
		AuthorID:    v.AuthorID,
		AuthorName:  v.AuthorName,
		GroupID:     v.GroupID,
		Time:        v.Time,
	}
}

func FromThreadSummary(v *wire.ThreadSummary) models.ThreadSummary {
	return models.ThreadSummary{Status: models.ThreadStatus(orZero(v).Status)}
}

func FromThreadCafe(v *wire.ThreadCafe) models.ThreadCafe {
	v = orZero(v)
	return models.ThreadCafe{
		Status:          models.ThreadStatus(v.Status),
		LastPulled:      v.LastPulled,
		LastPushSucceed: v.LastPushSucceed,
		Files:           FromThreadFiles(v.Files),
	}
}

func FromThreadFiles(v *wire.ThreadFiles) models.ThreadFiles {
	v = orZero(v)
	return models.ThreadFiles{
		Pinning: v.Pinning,
		Pinned:  v.Pinned,
		Failed:  v.Failed,
		Updated: v.Updated,
	}
}

func FromThreadDevice(v *wire.ThreadDevice) models.ThreadDevice {
	v = orZero(v)
	return models.ThreadDevice{
		Name:       v.Name,
		Online:     v.Online,
		LastPulled: v.LastPulled,
		LastEdited: v.LastEdited,
	}
}

func FromThreadAccount(v *wire.ThreadAccount) models.ThreadAccount {
	v = orZero(v)
	return models.ThreadAccount{
		ID:         v.ID,
		Name:       v.Name,
		ImageHash:  v.ImageHash,
		Online:     v.Online,
		LastPulled: v.LastPulled,
		LastEdited: v.LastEdited,
		Devices:    mapList(v.Devices, FromThreadDevice),
	}
}

func FromThreadStatus(v *wire.EventThreadStatus) models.ThreadStatusInfo {
	v = orZero(v)
	return models.ThreadStatusInfo{
		Summary:  FromThreadSummary(v.Summary),
		Cafe:     FromThreadCafe(v.Cafe),
		Accounts: mapList(v.Accounts, FromThreadAccount),
	}
}

func FromGraphEdge(v *wire.GraphEdge) models.GraphEdge {
	v = orZero(v)
	return models.GraphEdge{
		Type:        v.Type,
		Source:      v.Source,
		Target:      v.Target,
		Name:        v.Name,
		Description: v.Description,
		IconImage:   v.IconImage,
		IconEmoji:   v.IconEmoji,
		IsHidden:    v.Hidden,
	}
}

func FromGraphNode(v *wire.GraphNode) models.GraphNode {
	v = orZero(v)
	return models.GraphNode{
		ID:             v.ID,
		Type:           v.Type,
		Name:           v.Name,
		Layout:         models.ObjectLayout(v.Layout),
		Description:    v.Description,
		Snippet:        v.Snippet,
		IconImage:      v.IconImage,
		IconEmoji:      v.IconEmoji,
		Done:           v.Done,
		RelationFormat: models.RelationFormat(v.RelationFormat),
	}
}

func FromUnsplashPicture(v *wire.UnsplashPicture) models.UnsplashPicture {
	v = orZero(v)
	return models.UnsplashPicture{
		ID:        v.ID,
		URL:       v.URL,
		Artist:    v.Artist,
		ArtistURL: v.ArtistURL,
	}
}

func FromObjectView(v *wire.ObjectView) models.ObjectView {
	v = orZero(v)
	return models.ObjectView{
		RootID:       v.RootID,
		Blocks:       mapList(v.Blocks, FromBlock),
		Details:      mapList(v.Details, FromDetails),
		ObjectTypes:  mapList(v.ObjectTypes, FromObjectType),
		Relations:    mapList(v.Relations, FromRelation),
		Restrictions: FromRestrictions(v.Restrictions),
	}
}

func FromChatMessage(v *wire.ChatMessage) models.Message {
	v = orZero(v)
	content := orZero(v.Message)
	return models.Message{
		ID:         v.ID,
		OrderID:    v.OrderID,
		Creator:    v.Creator,
		CreatedAt:  v.CreatedAt,
		ModifiedAt: v.ModifiedAt,
		ReplyToID:  v.ReplyToID,
		Content: models.MessageContent{
			Text:  content.Text,
			Style: models.TextStyle(content.Style),
			Marks: mapList(content.Marks, FromMark),
		},
		Attachments: mapList(v.Attachments, FromChatAttachment),
		Reactions:   FromChatReactions(v.Reactions),
	}
}

func FromChatAttachment(v *wire.ChatAttachment) models.Attachment {
	v = orZero(v)
	return models.Attachment{Target: v.Target, Type: v.Type}
}

// FromChatReactions flattens the emoji map into reactions ordered by icon.
// Entries without identities are dropped.
func FromChatReactions(v *wire.ChatReactions) []models.Reaction {
	v = orZero(v)
	out := make([]models.Reaction, 0, len(v.Reactions))
	for icon, ids := range v.Reactions {
		if ids == nil || len(ids.IDs) == 0 {
			continue
		}
		out = append(out, models.Reaction{Icon: icon, Authors: slices.Clone(ids.IDs)})
	}
	slices.SortFunc(out, func(a, b models.Reaction) int {
		return strings.Compare(a.Icon, b.Icon)
	})
	return out
}
