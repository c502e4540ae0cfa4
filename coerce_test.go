package cellfmt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/cellfmt"
)

type celsius float64

type tag struct{ name string }

func (t *tag) String() string { return t.name }

func TestCoerce(t *testing.T) {
	t.Parallel()
	var nilPtr *int
	var nilTime *time.Time
	var nilTag *tag
	n := 7
	ts := time.Date(2018, 12, 1, 1, 0, 0, 0, time.UTC)
	tests := map[string]struct {
		raw  any
		want cellfmt.Value
	}{
		"nil":             {raw: nil, want: cellfmt.Value{Kind: cellfmt.KindEmpty}},
		"nil pointer":     {raw: nilPtr, want: cellfmt.Value{Kind: cellfmt.KindEmpty}},
		"nil time":        {raw: nilTime, want: cellfmt.Value{Kind: cellfmt.KindEmpty}},
		"nil stringer":    {raw: nilTag, want: cellfmt.Value{Kind: cellfmt.KindEmpty}},
		"int pointer":     {raw: &n, want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 7, Text: "7"}},
		"time pointer":    {raw: &ts, want: cellfmt.Value{Kind: cellfmt.KindTime, Time: ts, Text: "2018-12-01T01:00:00Z"}},
		"stringer ptr":    {raw: &tag{name: "db-1"}, want: cellfmt.Value{Kind: cellfmt.KindText, Text: "db-1"}},
		"int":             {raw: 1230, want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 1230, Text: "1230"}},
		"float":           {raw: 40.5, want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 40.5, Text: "40.5"}},
		"uint8":           {raw: uint8(7), want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 7, Text: "7"}},
		"named float":     {raw: celsius(21.5), want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 21.5, Text: "21.5"}},
		"json number":     {raw: json.Number("2.5"), want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 2.5, Text: "2.5"}},
		"numeric string":  {raw: "1388556366666", want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 1388556366666, Text: "1388556366666"}},
		"padded numeric":  {raw: " 12 ", want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 12, Text: " 12 "}},
		"decimal string":  {raw: "2.1", want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 2.1, Text: "2.1"}},
		"text":            {raw: "asd", want: cellfmt.Value{Kind: cellfmt.KindText, Text: "asd"}},
		"empty string":    {raw: "", want: cellfmt.Value{Kind: cellfmt.KindText, Text: ""}},
		"nan string":      {raw: "NaN", want: cellfmt.Value{Kind: cellfmt.KindText, Text: "NaN"}},
		"infinity string": {raw: "Infinity", want: cellfmt.Value{Kind: cellfmt.KindText, Text: "Infinity"}},
		"bool":            {raw: true, want: cellfmt.Value{Kind: cellfmt.KindText, Text: "true"}},
		"bytes":           {raw: []byte("42"), want: cellfmt.Value{Kind: cellfmt.KindNumber, Number: 42, Text: "42"}},
		"time":            {raw: ts, want: cellfmt.Value{Kind: cellfmt.KindTime, Time: ts, Text: "2018-12-01T01:00:00Z"}},
		"string slice": {
			raw: []string{"a", "1"},
			want: cellfmt.Value{Kind: cellfmt.KindArray, Items: []cellfmt.Value{
				{Kind: cellfmt.KindText, Text: "a"},
				{Kind: cellfmt.KindNumber, Number: 1, Text: "1"},
			}},
		},
		"nested slice collapses": {
			raw: []any{[]any{"x", 2}, nil},
			want: cellfmt.Value{Kind: cellfmt.KindArray, Items: []cellfmt.Value{
				{Kind: cellfmt.KindText, Text: "x, 2"},
				{Kind: cellfmt.KindEmpty},
			}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cellfmt.Coerce(tc.raw))
		})
	}
}

func TestValueString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", cellfmt.Coerce(nil).String())
	assert.Equal(t, "a, 1, ", cellfmt.Coerce([]any{"a", 1, nil}).String())
	assert.Equal(t, " 12 ", cellfmt.Coerce(" 12 ").String())
}

func TestValueNumeric(t *testing.T) {
	t.Parallel()
	n, ok := cellfmt.Coerce("55").Numeric()
	assert.True(t, ok)
	assert.InDelta(t, 55.0, n, 0)

	_, ok = cellfmt.Coerce("on").Numeric()
	assert.False(t, ok)

	_, ok = cellfmt.Coerce([]int{1}).Numeric()
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "number", cellfmt.KindNumber.String())
	assert.Equal(t, "array", cellfmt.KindArray.String())
	assert.Equal(t, "Kind(42)", cellfmt.Kind(42).String())
}
