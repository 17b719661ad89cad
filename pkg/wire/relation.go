package wire

type Relation struct {
	Key              string            `cbor:"key"`
	Format           int32             `cbor:"format"`
	Name             string            `cbor:"name"`
	DefaultValue     *Value            `cbor:"defaultValue,omitempty"`
	DataSource       int32             `cbor:"dataSource"`
	Hidden           bool              `cbor:"hidden"`
	ReadOnly         bool              `cbor:"readOnly"`
	ReadOnlyRelation bool              `cbor:"readOnlyRelation"`
	ObjectTypes      []string          `cbor:"objectTypes,omitempty"`
	SelectDict       []*RelationOption `cbor:"selectDict,omitempty"`
	MaxCount         int32             `cbor:"maxCount"`
	Scope            int32             `cbor:"scope"`
}

type RelationOption struct {
	ID    string `cbor:"id"`
	Text  string `cbor:"text"`
	Color string `cbor:"color"`
	Scope int32  `cbor:"scope"`
}

type ObjectType struct {
	URL         string      `cbor:"url"`
	Name        string      `cbor:"name"`
	Relations   []*Relation `cbor:"relations,omitempty"`
	Layout      int32       `cbor:"layout"`
	IconEmoji   string      `cbor:"iconEmoji"`
	Description string      `cbor:"description"`
	Hidden      bool        `cbor:"hidden"`
	ReadOnly    bool        `cbor:"readOnly"`
	Types       []int32     `cbor:"types,omitempty"`
	IsArchived  bool        `cbor:"isArchived"`
}

type Restrictions struct {
	Object   []int32                 `cbor:"object,omitempty"`
	Dataview []*RestrictionsDataview `cbor:"dataview,omitempty"`
}

type RestrictionsDataview struct {
	BlockID      string  `cbor:"blockId"`
	Restrictions []int32 `cbor:"restrictions,omitempty"`
}
