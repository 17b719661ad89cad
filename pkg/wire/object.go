package wire

type Account struct {
	ID   string `cbor:"id"`
	Name string `cbor:"name"`
}

type AccountConfig struct {
	EnableSpaces bool `cbor:"enableSpaces"`
}

type ObjectInfo struct {
	ID              string  `cbor:"id"`
	Details         *Struct `cbor:"details,omitempty"`
	Snippet         string  `cbor:"snippet"`
	HasInboundLinks bool    `cbor:"hasInboundLinks"`
}

// ObjectDetails carries the full detail set of one object.
type ObjectDetails struct {
	ID      string  `cbor:"id"`
	Details *Struct `cbor:"details,omitempty"`
}

// DetailKV is a single relation key/value pair.
type DetailKV struct {
	Key   string `cbor:"key"`
	Value *Value `cbor:"value,omitempty"`
}

type BlockField struct {
	BlockID string  `cbor:"blockId"`
	Fields  *Struct `cbor:"fields,omitempty"`
}

type PasteFile struct {
	Name      string `cbor:"name"`
	LocalPath string `cbor:"localPath"`
}

type HistoryVersion struct {
	ID          string   `cbor:"id"`
	PreviousIDs []string `cbor:"previousIds,omitempty"`
	AuthorID    string   `cbor:"authorId"`
	AuthorName  string   `cbor:"authorName"`
	Time        int64    `cbor:"time"`
	GroupID     int64    `cbor:"groupId"`
}

type LinkPreview struct {
	URL         string `cbor:"url"`
	Title       string `cbor:"title"`
	Description string `cbor:"description"`
	ImageURL    string `cbor:"imageUrl"`
	FaviconURL  string `cbor:"faviconUrl"`
	Type        int32  `cbor:"type"`
}

type UnsplashPicture struct {
	ID        string `cbor:"id"`
	URL       string `cbor:"url"`
	Artist    string `cbor:"artist"`
	ArtistURL string `cbor:"artistUrl"`
}

type GraphNode struct {
	ID             string `cbor:"id"`
	Type           string `cbor:"type"`
	Name           string `cbor:"name"`
	Layout         int32  `cbor:"layout"`
	Description    string `cbor:"description"`
	Snippet        string `cbor:"snippet"`
	IconImage      string `cbor:"iconImage"`
	IconEmoji      string `cbor:"iconEmoji"`
	Done           bool   `cbor:"done"`
	RelationFormat int32  `cbor:"relationFormat"`
}

type GraphEdge struct {
	Source      string `cbor:"source"`
	Target      string `cbor:"target"`
	Name        string `cbor:"name"`
	Type        int32  `cbor:"type"`
	Description string `cbor:"description"`
	IconImage   string `cbor:"iconImage"`
	IconEmoji   string `cbor:"iconEmoji"`
	Hidden      bool   `cbor:"hidden"`
}

type ThreadSummary struct {
	Status int32 `cbor:"status"`
}

type ThreadCafe struct {
	Status          int32        `cbor:"status"`
	LastPulled      int64        `cbor:"lastPulled"`
	LastPushSucceed bool         `cbor:"lastPushSucceed"`
	Files           *ThreadFiles `cbor:"files,omitempty"`
}

type ThreadFiles struct {
	Pinning int32 `cbor:"pinning"`
	Pinned  int32 `cbor:"pinned"`
	Failed  int32 `cbor:"failed"`
	Updated int64 `cbor:"updated"`
}

type ThreadDevice struct {
	Name       string `cbor:"name"`
	Online     bool   `cbor:"online"`
	LastPulled int64  `cbor:"lastPulled"`
	LastEdited int64  `cbor:"lastEdited"`
}

type ThreadAccount struct {
	ID         string          `cbor:"id"`
	Name       string          `cbor:"name"`
	ImageHash  string          `cbor:"imageHash"`
	Online     bool            `cbor:"online"`
	LastPulled int64           `cbor:"lastPulled"`
	LastEdited int64           `cbor:"lastEdited"`
	Devices    []*ThreadDevice `cbor:"devices,omitempty"`
}
