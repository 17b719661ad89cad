package models

// DefaultRelationKeys are merged into every key filtered detail read.
var DefaultRelationKeys = []string{
	"id",
	"spaceId",
	"type",
	"name",
	"description",
	"snippet",
	"layout",
	"layoutAlign",
	"iconEmoji",
	"iconImage",
	"coverId",
	"coverType",
	"coverX",
	"coverY",
	"coverScale",
	"done",
	"isArchived",
	"isDeleted",
	"isHidden",
	"isReadonly",
	"restrictions",
	"featuredRelations",
}

type Account struct {
	ID   string
	Name string
}

type AccountConfig struct {
	AllowSpaces bool
}

type ObjectInfo struct {
	ID              string
	Details         map[string]any
	Snippet         string
	HasInboundLinks bool
}

// Details is the relation key/value mapping of one object.
type Details struct {
	ID      string
	Details map[string]any
}

type DetailValue struct {
	Key   string
	Value any
}

type BlockFields struct {
	BlockID string
	Fields  map[string]any
}

type PasteFile struct {
	Name string
	Path string
}

type HistoryVersion struct {
	ID          string
	PreviousIDs []string
	AuthorID    string
	AuthorName  string
	GroupID     int64
	Time        int64
}

type PreviewLink struct {
	Type        int32
	Title       string
	Description string
	FaviconURL  string
	ImageURL    string
	URL         string
}

type UnsplashPicture struct {
	ID        string
	URL       string
	Artist    string
	ArtistURL string
}

type GraphNode struct {
	ID             string
	Type           string
	Name           string
	Layout         ObjectLayout
	Description    string
	Snippet        string
	IconImage      string
	IconEmoji      string
	Done           bool
	RelationFormat RelationFormat
}

type GraphEdge struct {
	Type        int32
	Source      string
	Target      string
	Name        string
	Description string
	IconImage   string
	IconEmoji   string
	IsHidden    bool
}

type ThreadSummary struct {
	Status ThreadStatus
}

type ThreadCafe struct {
	Status          ThreadStatus
	LastPulled      int64
	LastPushSucceed bool
	Files           ThreadFiles
}

type ThreadFiles struct {
	Pinning int32
	Pinned  int32
	Failed  int32
	Updated int64
}

type ThreadDevice struct {
	Name       string
	Online     bool
	LastPulled int64
	LastEdited int64
}

type ThreadAccount struct {
	ID         string
	Name       string
	ImageHash  string
	Online     bool
	LastPulled int64
	LastEdited int64
	Devices    []ThreadDevice
}

// ObjectView is everything the backend returns when an object is opened.
type ObjectView struct {
	RootID       string
	Blocks       []Block
	Details      []Details
	ObjectTypes  []ObjectType
	Relations    []Relation
	Restrictions Restrictions
}

// ThreadStatusInfo is the sync state of the local node and its peers.
type ThreadStatusInfo struct {
	Summary  ThreadSummary
	Cafe     ThreadCafe
	Accounts []ThreadAccount
}
