package detail

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/blockgraph/blockgraph.go/pkg/models"
)

// EmptyKey marks the stub returned by Get for objects with no details.
const EmptyKey = "_empty_"

// Object is the flat relation key to value view of one object, as returned
// by Store.Get.
type Object map[string]any

// IsEmpty reports whether o is the stub returned for an unknown object.
func (o Object) IsEmpty() bool {
	empty, _ := o[EmptyKey].(bool)
	return empty
}

func (o Object) ID() string {
	return o.String("id")
}

func (o Object) Name() string {
	return o.String("name")
}

func (o Object) Layout() models.ObjectLayout {
	return models.ObjectLayout(o.Number("layout"))
}

// String returns the value under key as a string. Lists yield their first
// element, absent values yield "".
func (o Object) String(key string) string {
	return stringValue(o[key])
}

// Number returns the value under key as a number, 0 when it has none.
func (o Object) Number(key string) float64 {
	return number(o[key])
}

func (o Object) Bool(key string) bool {
	return truthy(o[key])
}

// number coerces v the way a loosely typed reader would: booleans count as
// 0 or 1 and numeric strings are parsed. Anything else is 0.
func number(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case models.ObjectLayout:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}
	return f
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		if len(x) == 0 {
			return ""
		}
		return stringValue(x[0])
	case []string:
		if len(x) == 0 {
			return ""
		}
		return x[0]
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func orNumber(v any, fallback float64) float64 {
	if n := number(v); n != 0 {
		return n
	}
	return fallback
}
