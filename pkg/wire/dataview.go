package wire

type View struct {
	ID               string          `cbor:"id"`
	Type             int32           `cbor:"type"`
	Name             string          `cbor:"name"`
	Sorts            []*Sort         `cbor:"sorts"`
	Filters          []*Filter       `cbor:"filters"`
	Relations        []*ViewRelation `cbor:"relations"`
	CoverRelationKey string          `cbor:"coverRelationKey"`
	HideIcon         bool            `cbor:"hideIcon"`
	CardSize         int32           `cbor:"cardSize"`
	CoverFit         bool            `cbor:"coverFit"`
	GroupRelationKey string          `cbor:"groupRelationKey"`
}

type ViewRelation struct {
	Key             string `cbor:"key"`
	IsVisible       bool   `cbor:"isVisible"`
	Width           int32  `cbor:"width"`
	DateIncludeTime bool   `cbor:"dateIncludeTime"`
	TimeFormat      int32  `cbor:"timeFormat"`
	DateFormat      int32  `cbor:"dateFormat"`
}

type Filter struct {
	Operator    int32  `cbor:"operator"`
	RelationKey string `cbor:"relationKey"`
	Condition   int32  `cbor:"condition"`
	Value       *Value `cbor:"value,omitempty"`
}

func (f *Filter) HasValue() bool {
	return f != nil && f.Value != nil
}

type Sort struct {
	RelationKey string `cbor:"relationKey"`
	Type        int32  `cbor:"type"`
}

// ObjectOrder is the manual ordering of records inside one view group.
type ObjectOrder struct {
	ViewID    string   `cbor:"viewId"`
	GroupID   string   `cbor:"groupId"`
	ObjectIDs []string `cbor:"objectIds"`
}
