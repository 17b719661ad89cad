package wire

type ObjectView struct {
	RootID       string           `cbor:"rootId"`
	Blocks       []*Block         `cbor:"blocks,omitempty"`
	Details      []*ObjectDetails `cbor:"details,omitempty"`
	ObjectTypes  []*ObjectType    `cbor:"objectTypes,omitempty"`
	Relations    []*Relation      `cbor:"relations,omitempty"`
	Restrictions *Restrictions    `cbor:"restrictions,omitempty"`
}

type ObjectOpenRequest struct {
	ContextID string `cbor:"contextId"`
	ObjectID  string `cbor:"objectId"`
	TraceID   string `cbor:"traceId,omitempty"`
}

type ObjectOpenResponse struct {
	ObjectView *ObjectView `cbor:"objectView,omitempty"`
}

type ObjectCloseRequest struct {
	ContextID string `cbor:"contextId"`
	ObjectID  string `cbor:"objectId"`
}

type ObjectSetDetailsRequest struct {
	ContextID string      `cbor:"contextId"`
	Details   []*DetailKV `cbor:"details"`
}

type BlockListSetFieldsRequest struct {
	ContextID   string        `cbor:"contextId"`
	BlockFields []*BlockField `cbor:"blockFields"`
}

type BlockCreateRequest struct {
	ContextID string `cbor:"contextId"`
	TargetID  string `cbor:"targetId"`
	Position  int32  `cbor:"position"`
	Block     *Block `cbor:"block"`
}

type BlockCreateResponse struct {
	BlockID string `cbor:"blockId"`
}

type BlockPasteRequest struct {
	ContextID        string       `cbor:"contextId"`
	FocusedBlockID   string       `cbor:"focusedBlockId"`
	SelectedBlockIDs []string     `cbor:"selectedBlockIds"`
	TextSlot         string       `cbor:"textSlot"`
	HTMLSlot         string       `cbor:"htmlSlot"`
	FileSlot         []*PasteFile `cbor:"fileSlot"`
}

type BlockPasteResponse struct {
	BlockIDs      []string `cbor:"blockIds,omitempty"`
	CaretPosition int32    `cbor:"caretPosition"`
	IsSameBlock   bool     `cbor:"isSameBlockCaret"`
}

type BlockDataviewViewUpdateRequest struct {
	ContextID string `cbor:"contextId"`
	BlockID   string `cbor:"blockId"`
	ViewID    string `cbor:"viewId"`
	View      *View  `cbor:"view"`
}

type ObjectSearchSubscribeRequest struct {
	SubID        string    `cbor:"subId"`
	Filters      []*Filter `cbor:"filters"`
	Sorts        []*Sort   `cbor:"sorts"`
	Keys         []string  `cbor:"keys"`
	Sources      []string  `cbor:"source"`
	Limit        int64     `cbor:"limit"`
	Offset       int64     `cbor:"offset"`
	CollectionID string    `cbor:"collectionId"`
	NoDeps       bool      `cbor:"noDepSubscription"`
}

type ObjectSearchSubscribeResponse struct {
	SubID        string                     `cbor:"subId"`
	Records      []*Struct                  `cbor:"records,omitempty"`
	Dependencies []*Struct                  `cbor:"dependencies,omitempty"`
	Counters     *EventSubscriptionCounters `cbor:"counters,omitempty"`
}

type ObjectSearchUnsubscribeRequest struct {
	SubIDs []string `cbor:"subIds"`
}

type ObjectCreateRelationRequest struct {
	Details *Struct `cbor:"details"`
}

type ObjectCreateRelationResponse struct {
	ObjectID string  `cbor:"objectId"`
	Key      string  `cbor:"key"`
	Details  *Struct `cbor:"details,omitempty"`
}

type ObjectTypeCreateRequest struct {
	ObjectType *ObjectType `cbor:"objectType"`
}

type ObjectTypeCreateResponse struct {
	ObjectType *ObjectType `cbor:"objectType,omitempty"`
}

type HistoryGetVersionsRequest struct {
	ObjectID      string `cbor:"objectId"`
	LastVersionID string `cbor:"lastVersionId"`
	Limit         int32  `cbor:"limit"`
}

type HistoryGetVersionsResponse struct {
	Versions []*HistoryVersion `cbor:"versions,omitempty"`
}

type ObjectGraphRequest struct {
	Filters []*Filter `cbor:"filters"`
	Limit   int32     `cbor:"limit"`
}

type ObjectGraphResponse struct {
	Nodes []*GraphNode `cbor:"nodes,omitempty"`
	Edges []*GraphEdge `cbor:"edges,omitempty"`
}

type UnsplashSearchRequest struct {
	Query string `cbor:"query"`
	Limit int32  `cbor:"limit"`
}

type UnsplashSearchResponse struct {
	Pictures []*UnsplashPicture `cbor:"pictures,omitempty"`
}

type LinkPreviewRequest struct {
	URL string `cbor:"url"`
}

type LinkPreviewResponse struct {
	LinkPreview *LinkPreview `cbor:"linkPreview,omitempty"`
}

type AccountSelectRequest struct {
	ID       string `cbor:"id"`
	RootPath string `cbor:"rootPath"`
}

type AccountSelectResponse struct {
	Account *Account       `cbor:"account,omitempty"`
	Config  *AccountConfig `cbor:"config,omitempty"`
}

type ChatToggleReactionRequest struct {
	ChatObjectID string `cbor:"chatObjectId"`
	MessageID    string `cbor:"messageId"`
	Emoji        string `cbor:"emoji"`
}
