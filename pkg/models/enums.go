package models

type BlockType string

const (
	BlockTypeEmpty           BlockType = "empty"
	BlockTypePage            BlockType = "page"
	BlockTypeText            BlockType = "text"
	BlockTypeFile            BlockType = "file"
	BlockTypeLayout          BlockType = "layout"
	BlockTypeDiv             BlockType = "div"
	BlockTypeBookmark        BlockType = "bookmark"
	BlockTypeLink            BlockType = "link"
	BlockTypeDataview        BlockType = "dataview"
	BlockTypeRelation        BlockType = "relation"
	BlockTypeFeatured        BlockType = "featured"
	BlockTypeLatex           BlockType = "latex"
	BlockTypeTableOfContents BlockType = "tableOfContents"
)

type ObjectLayout int32

const (
	LayoutPage ObjectLayout = iota
	LayoutHuman
	LayoutTask
	LayoutSet
	LayoutObjectType
	LayoutRelation
	LayoutFile
	LayoutDashboard
	LayoutImage
	LayoutNote
	LayoutSpace
	LayoutBookmark
	LayoutRelationOptionList
	LayoutRelationOption
	LayoutCollection
)

type CoverType int32

const (
	CoverNone CoverType = iota
	CoverUpload
	CoverColor
	CoverGradient
	CoverImage
)

type BlockAlign int32

const (
	AlignLeft BlockAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

type RelationFormat int32

const (
	FormatLongText  RelationFormat = 0
	FormatShortText RelationFormat = 1
	FormatNumber    RelationFormat = 2
	FormatStatus    RelationFormat = 3
	FormatDate      RelationFormat = 4
	FormatFile      RelationFormat = 5
	FormatCheckbox  RelationFormat = 6
	FormatURL       RelationFormat = 7
	FormatEmail     RelationFormat = 8
	FormatPhone     RelationFormat = 9
	FormatEmoji     RelationFormat = 10
	FormatTag       RelationFormat = 11
	FormatObject    RelationFormat = 100
	FormatRelations RelationFormat = 101
)

type ViewType int32

const (
	ViewGrid ViewType = iota
	ViewList
	ViewGallery
	ViewBoard
)

type FilterOperator int32

const (
	FilterAnd FilterOperator = iota
	FilterOr
)

type FilterCondition int32

const (
	ConditionNone FilterCondition = iota
	ConditionEqual
	ConditionNotEqual
	ConditionGreater
	ConditionLess
	ConditionGreaterOrEqual
	ConditionLessOrEqual
	ConditionLike
	ConditionNotLike
	ConditionIn
	ConditionNotIn
	ConditionEmpty
	ConditionNotEmpty
	ConditionAllIn
	ConditionNotAllIn
	ConditionExactIn
	ConditionNotExactIn
)

type SortType int32

const (
	SortAsc SortType = iota
	SortDesc
)

type MarkType int32

const (
	MarkStrike MarkType = iota
	MarkCode
	MarkItalic
	MarkBold
	MarkUnderline
	MarkLink
	MarkTextColor
	MarkBgColor
	MarkMention
	MarkEmoji
	MarkObject
)

type TextStyle int32

const (
	TextParagraph TextStyle = iota
	TextHeader1
	TextHeader2
	TextHeader3
	TextHeader4
	TextQuote
	TextCode
	TextTitle
	TextCheckbox
	TextMarked
	TextNumbered
	TextToggle
	TextDescription
	TextCallout
)

type ThreadStatus int32

const (
	ThreadUnknown ThreadStatus = iota
	ThreadOffline
	ThreadSyncing
	ThreadSynced
	ThreadFailed
)

// BlockPosition places a new block relative to its target.
type BlockPosition int32

const (
	PositionNone BlockPosition = iota
	PositionTop
	PositionBottom
	PositionLeft
	PositionRight
	PositionInner
	PositionReplace
	PositionInnerFirst
)
