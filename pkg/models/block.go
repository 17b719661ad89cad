package models

type Block struct {
	ID          string
	Type        BlockType
	ChildrenIDs []string
	Fields      map[string]any
	Align       BlockAlign
	BgColor     string
	Content     BlockContent
}

// BlockContent is the type specific payload of a Block. Every variant
// reports the BlockType it belongs to.
type BlockContent interface {
	BlockType() BlockType
}

type EmptyBlockContent struct{}

type PageContent struct{}

type TextContent struct {
	Text    string
	Style   TextStyle
	Marks   []Mark
	Checked bool
	Color   string
}

type FileContent struct {
	Hash    string
	Name    string
	Type    int32
	Style   int32
	Mime    string
	Size    int64
	AddedAt int64
	State   int32
}

type LayoutContent struct {
	Style int32
}

type DivContent struct {
	Style int32
}

type BookmarkContent struct {
	URL         string
	Title       string
	Description string
	ImageHash   string
	FaviconHash string
	Type        int32
}

type LinkContent struct {
	TargetBlockID string
	Style         int32
	Fields        map[string]any
}

type DataviewContent struct {
	Sources      []string
	Views        []View
	Relations    []Relation
	ObjectOrders []ObjectOrder
}

type RelationContent struct {
	Key string
}

type FeaturedContent struct{}

type LatexContent struct {
	Text string
}

type TableOfContentsContent struct{}

func (*EmptyBlockContent) BlockType() BlockType      { return BlockTypeEmpty }
func (*PageContent) BlockType() BlockType            { return BlockTypePage }
func (*TextContent) BlockType() BlockType            { return BlockTypeText }
func (*FileContent) BlockType() BlockType            { return BlockTypeFile }
func (*LayoutContent) BlockType() BlockType          { return BlockTypeLayout }
func (*DivContent) BlockType() BlockType             { return BlockTypeDiv }
func (*BookmarkContent) BlockType() BlockType        { return BlockTypeBookmark }
func (*LinkContent) BlockType() BlockType            { return BlockTypeLink }
func (*DataviewContent) BlockType() BlockType        { return BlockTypeDataview }
func (*RelationContent) BlockType() BlockType        { return BlockTypeRelation }
func (*FeaturedContent) BlockType() BlockType        { return BlockTypeFeatured }
func (*LatexContent) BlockType() BlockType           { return BlockTypeLatex }
func (*TableOfContentsContent) BlockType() BlockType { return BlockTypeTableOfContents }

// EmptyContent returns the zero payload for t. Unknown types get an
// EmptyBlockContent.
func EmptyContent(t BlockType) BlockContent {
	switch t {
	case BlockTypePage:
		return &PageContent{}
	case BlockTypeText:
		return &TextContent{Marks: []Mark{}}
	case BlockTypeFile:
		return &FileContent{}
	case BlockTypeLayout:
		return &LayoutContent{}
	case BlockTypeDiv:
		return &DivContent{}
	case BlockTypeBookmark:
		return &BookmarkContent{}
	case BlockTypeLink:
		return &LinkContent{Fields: map[string]any{}}
	case BlockTypeDataview:
		return &DataviewContent{
			Sources:      []string{},
			Views:        []View{},
			Relations:    []Relation{},
			ObjectOrders: []ObjectOrder{},
		}
	case BlockTypeRelation:
		return &RelationContent{}
	case BlockTypeFeatured:
		return &FeaturedContent{}
	case BlockTypeLatex:
		return &LatexContent{}
	case BlockTypeTableOfContents:
		return &TableOfContentsContent{}
	default:
		return &EmptyBlockContent{}
	}
}

// Normalize makes the content agree with the type. A missing or mismatched
// payload is replaced with EmptyContent, nil lists become empty.
func (b *Block) Normalize() {
	if b.Type == "" {
		b.Type = BlockTypeEmpty
	}
	if b.Content == nil || b.Content.BlockType() != b.Type {
		b.Content = EmptyContent(b.Type)
	}
	if b.ChildrenIDs == nil {
		b.ChildrenIDs = []string{}
	}
	if b.Fields == nil {
		b.Fields = map[string]any{}
	}
}

func (b *Block) Text() (*TextContent, bool) {
	c, ok := b.Content.(*TextContent)
	return c, ok
}

func (b *Block) Dataview() (*DataviewContent, bool) {
	c, ok := b.Content.(*DataviewContent)
	return c, ok
}

type Range struct {
	From int32
	To   int32
}

type Mark struct {
	Type  MarkType
	Param string
	Range Range
}
