package models

type Relation struct {
	ObjectID           string
	RelationKey        string
	Format             RelationFormat
	Name               string
	DefaultValue       any
	DataSource         int32
	IsHidden           bool
	IsReadonlyValue    bool
	IsReadonlyRelation bool
	MaxCount           int32
	ObjectTypes        []string
	Scope              int32
	SelectDict         []SelectOption
}

type SelectOption struct {
	ID    string
	Text  string
	Color string
	Scope int32
}

type ObjectType struct {
	ID          string
	Name        string
	Description string
	Layout      ObjectLayout
	IconEmoji   string
	IsHidden    bool
	IsArchived  bool
	IsReadonly  bool
	Types       []int32
	Relations   []Relation
}

type Restrictions struct {
	Object   []int32
	Dataview []RestrictionsDataview
}

type RestrictionsDataview struct {
	BlockID      string
	Restrictions []int32
}
