package wire

// ContentCase discriminates the content oneof of a Block.
type ContentCase int32

const (
	ContentNotSet            ContentCase = 0
	ContentSmartblock        ContentCase = 11
	ContentText              ContentCase = 14
	ContentFile              ContentCase = 15
	ContentLayout            ContentCase = 16
	ContentDiv               ContentCase = 17
	ContentBookmark          ContentCase = 18
	ContentIcon              ContentCase = 19
	ContentLink              ContentCase = 20
	ContentDataview          ContentCase = 21
	ContentRelation          ContentCase = 22
	ContentFeaturedRelations ContentCase = 23
	ContentLatex             ContentCase = 24
	ContentTableOfContents   ContentCase = 25
)

type Block struct {
	ID              string   `cbor:"id"`
	Fields          *Struct  `cbor:"fields,omitempty"`
	ChildrenIDs     []string `cbor:"childrenIds,omitempty"`
	BackgroundColor string   `cbor:"backgroundColor,omitempty"`
	Align           int32    `cbor:"align,omitempty"`

	Smartblock        *BlockContentSmartblock        `cbor:"smartblock,omitempty"`
	Text              *BlockContentText              `cbor:"text,omitempty"`
	File              *BlockContentFile              `cbor:"file,omitempty"`
	Layout            *BlockContentLayout            `cbor:"layout,omitempty"`
	Div               *BlockContentDiv               `cbor:"div,omitempty"`
	Bookmark          *BlockContentBookmark          `cbor:"bookmark,omitempty"`
	Link              *BlockContentLink              `cbor:"link,omitempty"`
	Dataview          *BlockContentDataview          `cbor:"dataview,omitempty"`
	Relation          *BlockContentRelation          `cbor:"relation,omitempty"`
	FeaturedRelations *BlockContentFeaturedRelations `cbor:"featuredRelations,omitempty"`
	Latex             *BlockContentLatex             `cbor:"latex,omitempty"`
	TableOfContents   *BlockContentTableOfContents   `cbor:"tableOfContents,omitempty"`
}

// ContentCase reports which content field is set. When a malformed message
// carries several, the first in declaration order wins.
func (b *Block) ContentCase() ContentCase {
	switch {
	case b == nil:
		return ContentNotSet
	case b.Smartblock != nil:
		return ContentSmartblock
	case b.Text != nil:
		return ContentText
	case b.File != nil:
		return ContentFile
	case b.Layout != nil:
		return ContentLayout
	case b.Div != nil:
		return ContentDiv
	case b.Bookmark != nil:
		return ContentBookmark
	case b.Link != nil:
		return ContentLink
	case b.Dataview != nil:
		return ContentDataview
	case b.Relation != nil:
		return ContentRelation
	case b.FeaturedRelations != nil:
		return ContentFeaturedRelations
	case b.Latex != nil:
		return ContentLatex
	case b.TableOfContents != nil:
		return ContentTableOfContents
	default:
		return ContentNotSet
	}
}

func (b *Block) GetText() *BlockContentText {
	if b == nil {
		return nil
	}
	return b.Text
}

func (b *Block) GetFile() *BlockContentFile {
	if b == nil {
		return nil
	}
	return b.File
}

func (b *Block) GetLayout() *BlockContentLayout {
	if b == nil {
		return nil
	}
	return b.Layout
}

func (b *Block) GetDiv() *BlockContentDiv {
	if b == nil {
		return nil
	}
	return b.Div
}

func (b *Block) GetBookmark() *BlockContentBookmark {
	if b == nil {
		return nil
	}
	return b.Bookmark
}

func (b *Block) GetLink() *BlockContentLink {
	if b == nil {
		return nil
	}
	return b.Link
}

func (b *Block) GetDataview() *BlockContentDataview {
	if b == nil {
		return nil
	}
	return b.Dataview
}

func (b *Block) GetRelation() *BlockContentRelation {
	if b == nil {
		return nil
	}
	return b.Relation
}

func (b *Block) GetLatex() *BlockContentLatex {
	if b == nil {
		return nil
	}
	return b.Latex
}

type BlockContentSmartblock struct{}

type BlockContentFeaturedRelations struct{}

type BlockContentTableOfContents struct{}

type BlockContentText struct {
	Text    string `cbor:"text"`
	Style   int32  `cbor:"style"`
	Marks   *Marks `cbor:"marks,omitempty"`
	Checked bool   `cbor:"checked"`
	Color   string `cbor:"color"`
}

func (t *BlockContentText) GetMarks() []*Mark {
	if t == nil || t.Marks == nil {
		return nil
	}
	return t.Marks.Marks
}

type Marks struct {
	Marks []*Mark `cbor:"marks"`
}

type Mark struct {
	Range *Range `cbor:"range,omitempty"`
	Type  int32  `cbor:"type"`
	Param string `cbor:"param"`
}

type Range struct {
	From int32 `cbor:"from"`
	To   int32 `cbor:"to"`
}

type BlockContentFile struct {
	Hash    string `cbor:"hash"`
	Name    string `cbor:"name"`
	Type    int32  `cbor:"type"`
	Mime    string `cbor:"mime"`
	Size    int64  `cbor:"size"`
	AddedAt int64  `cbor:"addedAt"`
	State   int32  `cbor:"state"`
	Style   int32  `cbor:"style"`
}

type BlockContentLayout struct {
	Style int32 `cbor:"style"`
}

type BlockContentDiv struct {
	Style int32 `cbor:"style"`
}

type BlockContentBookmark struct {
	URL         string `cbor:"url"`
	Title       string `cbor:"title"`
	Description string `cbor:"description"`
	ImageHash   string `cbor:"imageHash"`
	FaviconHash string `cbor:"faviconHash"`
	Type        int32  `cbor:"type"`
}

type BlockContentLink struct {
	TargetBlockID string  `cbor:"targetBlockId"`
	Style         int32   `cbor:"style"`
	Fields        *Struct `cbor:"fields,omitempty"`
}

type BlockContentDataview struct {
	Source       []string       `cbor:"source,omitempty"`
	Views        []*View        `cbor:"views,omitempty"`
	Relations    []*Relation    `cbor:"relations,omitempty"`
	ObjectOrders []*ObjectOrder `cbor:"objectOrders,omitempty"`
}

type BlockContentRelation struct {
	Key string `cbor:"key"`
}

type BlockContentLatex struct {
	Text string `cbor:"text"`
}
