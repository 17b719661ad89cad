package models

type View struct {
	ID               string
	Type             ViewType
	Name             string
	CoverRelationKey string
	CoverFit         bool
	CardSize         int32
	HideIcon         bool
	GroupRelationKey string
	Sorts            []Sort
	Filters          []Filter
	Relations        []ViewRelation
}

// NewView copies v and guarantees that its relation, filter and sort lists
// are non-nil.
func NewView(v View) View {
	out := v
	out.Sorts = append(make([]Sort, 0, len(v.Sorts)), v.Sorts...)
	out.Filters = append(make([]Filter, 0, len(v.Filters)), v.Filters...)
	out.Relations = append(make([]ViewRelation, 0, len(v.Relations)), v.Relations...)
	return out
}

type ViewRelation struct {
	RelationKey string
	IsVisible   bool
	Width       int32
	IncludeTime bool
	TimeFormat  int32
	DateFormat  int32
}

type Filter struct {
	RelationKey string
	Operator    FilterOperator
	Condition   FilterCondition
	Value       any
}

type Sort struct {
	RelationKey string
	Type        SortType
}

// ObjectOrder is the manual ordering of records inside one board group.
type ObjectOrder struct {
	ViewID    string
	GroupID   string
	ObjectIDs []string
}
