package mapper

import (
	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

var blockTypes = map[wire.ContentCase]models.BlockType{
	wire.ContentSmartblock:        models.BlockTypePage,
	wire.ContentText:              models.BlockTypeText,
	wire.ContentFile:              models.BlockTypeFile,
	wire.ContentLayout:            models.BlockTypeLayout,
	wire.ContentDiv:               models.BlockTypeDiv,
	wire.ContentBookmark:          models.BlockTypeBookmark,
	wire.ContentLink:              models.BlockTypeLink,
	wire.ContentDataview:          models.BlockTypeDataview,
	wire.ContentRelation:          models.BlockTypeRelation,
	wire.ContentFeaturedRelations: models.BlockTypeFeatured,
	wire.ContentLatex:             models.BlockTypeLatex,
	wire.ContentTableOfContents:   models.BlockTypeTableOfContents,
}

// BlockType resolves a content discriminant. Unknown discriminants resolve
// to BlockTypeEmpty.
func BlockType(c wire.ContentCase) models.BlockType {
	if t, ok := blockTypes[c]; ok {
		return t
	}
	return models.BlockTypeEmpty
}

type contentFrom func(*wire.Block) models.BlockContent

type contentTo func(models.BlockContent, *wire.Block)

var fromContent = map[models.BlockType]contentFrom{
	models.BlockTypeEmpty: func(*wire.Block) models.BlockContent {
		return &models.EmptyBlockContent{}
	},
	models.BlockTypePage: func(*wire.Block) models.BlockContent {
		return &models.PageContent{}
	},
	models.BlockTypeText: func(b *wire.Block) models.BlockContent {
		c := FromBlockText(b.Text)
		return &c
	},
	models.BlockTypeFile: func(b *wire.Block) models.BlockContent {
		c := FromBlockFile(b.File)
		return &c
	},
	models.BlockTypeLayout: func(b *wire.Block) models.BlockContent {
		c := FromBlockLayout(b.Layout)
		return &c
	},
	models.BlockTypeDiv: func(b *wire.Block) models.BlockContent {
		c := FromBlockDiv(b.Div)
		return &c
	},
	models.BlockTypeBookmark: func(b *wire.Block) models.BlockContent {
		c := FromBlockBookmark(b.Bookmark)
		return &c
	},
	models.BlockTypeLink: func(b *wire.Block) models.BlockContent {
		c := FromBlockLink(b.Link)
		return &c
	},
	models.BlockTypeDataview: func(b *wire.Block) models.BlockContent {
		c := FromBlockDataview(b.Dataview)
		return &c
	},
	models.BlockTypeRelation: func(b *wire.Block) models.BlockContent {
		c := FromBlockRelation(b.Relation)
		return &c
	},
	models.BlockTypeFeatured: func(*wire.Block) models.BlockContent {
		return &models.FeaturedContent{}
	},
	models.BlockTypeLatex: func(b *wire.Block) models.BlockContent {
		c := FromBlockLatex(b.Latex)
		return &c
	},
	models.BlockTypeTableOfContents: func(*wire.Block) models.BlockContent {
		return &models.TableOfContentsContent{}
	},
}

// toContent converters receive content already checked against the block
// type by models.Block.Normalize.
var toContent = map[models.BlockType]contentTo{
	models.BlockTypeEmpty: func(models.BlockContent, *wire.Block) {},
	models.BlockTypePage: func(_ models.BlockContent, b *wire.Block) {
		b.Smartblock = &wire.BlockContentSmartblock{}
	},
	models.BlockTypeText: func(c models.BlockContent, b *wire.Block) {
		b.Text = ToBlockText(*c.(*models.TextContent))
	},
	models.BlockTypeFile: func(c models.BlockContent, b *wire.Block) {
		b.File = ToBlockFile(*c.(*models.FileContent))
	},
	models.BlockTypeLayout: func(c models.BlockContent, b *wire.Block) {
		b.Layout = ToBlockLayout(*c.(*models.LayoutContent))
	},
	models.BlockTypeDiv: func(c models.BlockContent, b *wire.Block) {
		b.Div = ToBlockDiv(*c.(*models.DivContent))
	},
	models.BlockTypeBookmark: func(c models.BlockContent, b *wire.Block) {
		b.Bookmark = ToBlockBookmark(*c.(*models.BookmarkContent))
	},
	models.BlockTypeLink: func(c models.BlockContent, b *wire.Block) {
		b.Link = ToBlockLink(*c.(*models.LinkContent))
	},
	models.BlockTypeDataview: func(c models.BlockContent, b *wire.Block) {
		b.Dataview = ToBlockDataview(*c.(*models.DataviewContent))
	},
	models.BlockTypeRelation: func(c models.BlockContent, b *wire.Block) {
		b.Relation = ToBlockRelation(*c.(*models.RelationContent))
	},
	models.BlockTypeFeatured: func(_ models.BlockContent, b *wire.Block) {
		b.FeaturedRelations = &wire.BlockContentFeaturedRelations{}
	},
	models.BlockTypeLatex: func(c models.BlockContent, b *wire.Block) {
		b.Latex = ToBlockLatex(*c.(*models.LatexContent))
	},
	models.BlockTypeTableOfContents: func(_ models.BlockContent, b *wire.Block) {
		b.TableOfContents = &wire.BlockContentTableOfContents{}
	},
}
