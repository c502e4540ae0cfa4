package cellfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Kind classifies a raw cell value.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindTime
	KindArray
)

var kindNames = [...]string{"empty", "number", "text", "time", "array"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a coerced cell value. Text holds the original string form of the
// value for every kind except Empty and Array.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
	Time   time.Time
	Items  []Value
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// Coerce classifies raw into a [Value]. It never fails: anything that is not
// empty, numeric, a timestamp or a slice degrades to text.
func Coerce(raw any) Value {
	return coerce(raw, true)
}

func coerce(raw any, descend bool) Value {
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Value{Kind: KindEmpty}
		}
		// Keep the pointer when only it carries the String method.
		if _, ok := raw.(fmt.Stringer); !ok || rv.Elem().Type().Implements(stringerType) {
			return coerce(rv.Elem().Interface(), descend)
		}
	}

	switch v := raw.(type) {
	case nil:
		return Value{Kind: KindEmpty}
	case Value:
		return v
	case bool:
		return Value{Kind: KindText, Text: cast.ToString(v)}
	case []byte:
		return textOrNumber(string(v))
	case string:
		return textOrNumber(v)
	case json.Number:
		return textOrNumber(v.String())
	case time.Time:
		return Value{Kind: KindTime, Time: v, Text: v.UTC().Format(time.RFC3339Nano)}
	case fmt.Stringer:
		return textOrNumber(v.String())
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.String:
		return textOrNumber(rv.String())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		if !descend {
			return Value{Kind: KindText, Text: joinRaw(items)}
		}
		out := Value{Kind: KindArray, Items: make([]Value, len(items))}
		for i, item := range items {
			out.Items[i] = coerce(item, false)
		}
		return out
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			f = reflectFloat(rv)
		}
		if finite(f) {
			return Value{Kind: KindNumber, Number: f, Text: stringify(raw)}
		}
	}
	return Value{Kind: KindText, Text: stringify(raw)}
}

// textOrNumber classifies a string as a number when it parses as a finite
// float, keeping the original spelling for display.
func textOrNumber(s string) Value {
	if f, ok := parseNumber(s); ok {
		return Value{Kind: KindNumber, Number: f, Text: s}
	}
	return Value{Kind: KindText, Text: s}
}

func parseNumber(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(trimmed)
	if err != nil || !finite(f) {
		return 0, false
	}
	return f, true
}

// reflectFloat converts named numeric types cast does not know about.
func reflectFloat(rv reflect.Value) float64 {
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	}
	return math.NaN()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func stringify(raw any) string {
	if s, err := cast.ToStringE(raw); err == nil {
		return s
	}
	return fmt.Sprint(raw)
}

func joinRaw(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		parts[i] = stringify(item)
	}
	return strings.Join(parts, ", ")
}

// Numeric reports the numeric interpretation of v.
func (v Value) Numeric() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// String returns the display text of v. Arrays join their items with ", ".
func (v Value) String() string {
	switch v.Kind {
	case KindEmpty:
		return ""
	case KindArray:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ", ")
	default:
		return v.Text
	}
}
