package wire

import (
	"reflect"

	"google.golang.org/protobuf/types/known/structpb"
)

// DecodeStruct converts a Struct into nested map[string]any, []any and scalar
// values. A nil Struct decodes to an empty map.
func DecodeStruct(s *Struct) map[string]any {
	fields := s.Proto().GetFields()
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = decodeValue(v)
	}
	return out
}

// DecodeValue converts a single Value. Numbers decode as float64, a nil or
// unset Value decodes to nil.
func DecodeValue(v *Value) any {
	return decodeValue(v.Proto())
}

func decodeValue(v *structpb.Value) any {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return k.NumberValue
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_BoolValue:
		return k.BoolValue
	case *structpb.Value_StructValue:
		return DecodeStruct((*Struct)(k.StructValue))
	case *structpb.Value_ListValue:
		values := k.ListValue.GetValues()
		out := make([]any, 0, len(values))
		for _, item := range values {
			out = append(out, decodeValue(item))
		}
		return out
	default:
		return nil
	}
}

// EncodeStruct is the inverse of DecodeStruct.
func EncodeStruct(m map[string]any) *Struct {
	fields := make(map[string]*structpb.Value, len(m))
	for k, v := range m {
		fields[k] = encodeValue(v)
	}
	return (*Struct)(&structpb.Struct{Fields: fields})
}

// EncodeValue is the inverse of DecodeValue. Integer and float32 kinds widen
// to float64, named scalar types are encoded by kind, and anything that has
// no Value representation becomes null.
func EncodeValue(v any) *Value {
	return (*Value)(encodeValue(v))
}

func encodeValue(v any) *structpb.Value {
	switch x := v.(type) {
	case nil:
		return structpb.NewNullValue()
	case *Value:
		if x == nil {
			return structpb.NewNullValue()
		}
		return x.Proto()
	case *Struct:
		if x == nil {
			return structpb.NewNullValue()
		}
		return structpb.NewStructValue(x.Proto())
	case bool:
		return structpb.NewBoolValue(x)
	case string:
		return structpb.NewStringValue(x)
	case float64:
		return structpb.NewNumberValue(x)
	case int:
		return structpb.NewNumberValue(float64(x))
	case int32:
		return structpb.NewNumberValue(float64(x))
	case int64:
		return structpb.NewNumberValue(float64(x))
	case []string:
		values := make([]*structpb.Value, 0, len(x))
		for _, s := range x {
			values = append(values, structpb.NewStringValue(s))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values})
	case []any:
		values := make([]*structpb.Value, 0, len(x))
		for _, item := range x {
			values = append(values, encodeValue(item))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values})
	case map[string]any:
		return structpb.NewStructValue(EncodeStruct(x).Proto())
	}
	return encodeReflect(reflect.ValueOf(v))
}

func encodeReflect(rv reflect.Value) *structpb.Value {
	switch rv.Kind() {
	case reflect.Bool:
		return structpb.NewBoolValue(rv.Bool())
	case reflect.String:
		return structpb.NewStringValue(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return structpb.NewNumberValue(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return structpb.NewNumberValue(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return structpb.NewNumberValue(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return structpb.NewNullValue()
		}
		return encodeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return structpb.NewListValue(&structpb.ListValue{})
		}
		values := make([]*structpb.Value, 0, rv.Len())
		for i := range rv.Len() {
			values = append(values, encodeValue(rv.Index(i).Interface()))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values})
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return structpb.NewNullValue()
		}
		fields := make(map[string]*structpb.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = encodeValue(iter.Value().Interface())
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields})
	default:
		return structpb.NewNullValue()
	}
}
