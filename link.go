package cellfmt

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Scope holds the variable bindings available to link templates.
type Scope map[string]string

// Substituter interpolates $name placeholders in template from scope.
// Unresolved placeholders must be left as literal text.
type Substituter func(template string, scope Scope) string

var placeholder = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// Substitute is the default [Substituter]. It replaces $name and ${name} with
// the bound value; names are matched greedily, so $__cell_1 never resolves as
// $__cell followed by "_1".
func Substitute(template string, scope Scope) string {
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		sub := placeholder.FindStringSubmatch(m)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		if v, ok := scope[name]; ok {
			return v
		}
		return m
	})
}

// RowScope assembles the bindings for a cell: the external vars, then
// __cell for the current value, __cell_<i> for every value in the row and
// each column title bound to its value in the row. Row bindings win over
// external ones.
func RowScope(vars Scope, columns []Column, row []any, current any) Scope {
	scope := make(Scope, len(vars)+2*len(row)+1)
	for k, v := range vars {
		scope[k] = v
	}
	for i, raw := range row {
		text := Coerce(raw).String()
		scope["__cell_"+strconv.Itoa(i)] = text
		if i < len(columns) && columns[i].Title != "" {
			scope[columns[i].Title] = text
		}
	}
	scope["__cell"] = Coerce(current).String()
	return scope
}

// escapeComponent percent-encodes v for any part of a URL; spaces become
// %20 rather than the query-only +.
func escapeComponent(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// ComposeLink builds the hyperlink for a cell. Values interpolated into the
// URL are percent-encoded; the tooltip receives them verbatim. A nil sub uses
// [Substitute].
func ComposeLink(link LinkStyle, scope Scope, sub Substituter) *Link {
	if sub == nil {
		sub = Substitute
	}
	escaped := make(Scope, len(scope))
	for k, v := range scope {
		escaped[k] = escapeComponent(v)
	}
	return &Link{
		Href:    sub(link.URL, escaped),
		Tooltip: sub(link.Tooltip, scope),
	}
}
