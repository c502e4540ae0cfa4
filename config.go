package cellfmt

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Document is a table definition as read from YAML: the grid plus the
// scoped variables made available to link templates.
//
//	vars:
//	  dashboard: main
//	columns:
//	  - title: Time
//	    style: {type: date}
//	  - title: Rate
//	    unit: bps
//	    style: {type: number, decimals: 2, colorMode: value, thresholds: [50, 80], colors: [green, orange, red]}
//	rows:
//	  - [1388556366666, 1230]
type Document struct {
	Vars Scope `yaml:"vars"`
	Grid `yaml:",inline"`
}

// Load decodes a YAML document and validates its rows.
func Load(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return Document{}, err
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Mapping type names accepted in YAML. The numeric forms are kept for
// documents exported from older table panels.
var mappingTypes = map[string]string{
	"":      "",
	"value": "value",
	"1":     "value",
	"range": "range",
	"2":     "range",
}

type yamlValueRule struct {
	Value any    `yaml:"value"`
	Text  string `yaml:"text"`
}

type yamlLink struct {
	URL     string `yaml:"url"`
	Tooltip string `yaml:"tooltip"`
}

type yamlStyle struct {
	Type        ColumnType      `yaml:"type"`
	Pattern     string          `yaml:"pattern"`
	Unit        string          `yaml:"unit"`
	Decimals    *int            `yaml:"decimals"`
	ColorMode   ColorMode       `yaml:"colorMode"`
	Thresholds  []float64       `yaml:"thresholds"`
	Colors      []string        `yaml:"colors"`
	MappingType string          `yaml:"mappingType"`
	ValueMaps   []yamlValueRule `yaml:"valueMaps"`
	RangeMaps   []RangeRule     `yaml:"rangeMaps"`
	Link        *yamlLink       `yaml:"link"`
	Sanitize    bool            `yaml:"sanitize"`
}

var styleKeys = map[string]bool{
	"type": true, "pattern": true, "unit": true, "decimals": true,
	"colorMode": true, "thresholds": true, "colors": true,
	"mappingType": true, "valueMaps": true, "rangeMaps": true,
	"link": true, "sanitize": true,
}

// UnmarshalYAML decodes a style and rejects invalid combinations, such as
// both value and range maps on one column.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	// Decoder.KnownFields does not reach into custom unmarshalers.
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !styleKeys[key.Value] {
				return fmt.Errorf("%w: line %d: unknown field %q", ErrInvalidStyle, key.Line, key.Value)
			}
		}
	}
	var raw yamlStyle
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch raw.Type {
	case "", TypeString, TypeNumber, TypeDate, TypeHidden:
	default:
		return fmt.Errorf("%w: line %d: unknown type %q", ErrInvalidStyle, node.Line, raw.Type)
	}
	switch raw.ColorMode {
	case "", ColorNone, ColorCell, ColorValue:
	default:
		return fmt.Errorf("%w: line %d: unknown colorMode %q", ErrInvalidStyle, node.Line, raw.ColorMode)
	}
	if !slices.IsSorted(raw.Thresholds) {
		return fmt.Errorf("%w: line %d: thresholds must be ascending", ErrInvalidStyle, node.Line)
	}

	mapping, err := raw.mapping()
	if err != nil {
		return fmt.Errorf("%w: line %d: %s", ErrInvalidStyle, node.Line, err)
	}

	*s = Style{
		Type:       raw.Type,
		Pattern:    raw.Pattern,
		Unit:       raw.Unit,
		Decimals:   raw.Decimals,
		ColorMode:  raw.ColorMode,
		Thresholds: raw.Thresholds,
		Colors:     raw.Colors,
		Mapping:    mapping,
		Sanitize:   raw.Sanitize,
	}
	if raw.Link != nil {
		s.Link = &LinkStyle{URL: raw.Link.URL, Tooltip: raw.Link.Tooltip}
	}
	return nil
}

func (raw yamlStyle) mapping() (Mapping, error) {
	kind, ok := mappingTypes[raw.MappingType]
	if !ok {
		return nil, fmt.Errorf("unknown mappingType %q", raw.MappingType)
	}
	if len(raw.ValueMaps) > 0 && len(raw.RangeMaps) > 0 {
		return nil, errors.New("valueMaps and rangeMaps are mutually exclusive")
	}
	if kind == "" {
		switch {
		case len(raw.ValueMaps) > 0:
			kind = "value"
		case len(raw.RangeMaps) > 0:
			kind = "range"
		}
	}
	if kind == "value" && len(raw.RangeMaps) > 0 {
		return nil, errors.New("mappingType value does not take rangeMaps")
	}
	if kind == "range" && len(raw.ValueMaps) > 0 {
		return nil, errors.New("mappingType range does not take valueMaps")
	}
	switch kind {
	case "value":
		m := make(ValueMap, len(raw.ValueMaps))
		for i, r := range raw.ValueMaps {
			match := NullMatch
			if r.Value != nil {
				match = Coerce(r.Value).String()
			}
			m[i] = ValueRule{Match: match, Text: r.Text}
		}
		return m, nil
	case "range":
		m := make(RangeMap, len(raw.RangeMaps))
		copy(m, raw.RangeMaps)
		return m, nil
	default:
		return nil, nil
	}
}
