package models

import "strings"

// AttributionField is a single sub-field of a mapping-shaped attribution,
// e.g. {"first_name": "Maria"}.
type AttributionField struct {
	Key   string
	Value string
}

// Attribution identifies who wrote a message. The message source sends it either
// as a plain scalar ("Maria Lopez") or as a mapping of sub-fields; both shapes are
// resolved once at ingestion so the pipeline never re-inspects raw JSON.
type Attribution struct {
	scalar    string
	fields    []AttributionField // document order
	isMapping bool
}

// ScalarAttribution builds an attribution from a single value.
func ScalarAttribution(value string) Attribution {
	return Attribution{scalar: value}
}

// MappingAttribution builds an attribution from sub-fields, keeping their order.
func MappingAttribution(fields ...AttributionField) Attribution {
	return Attribution{fields: fields, isMapping: true}
}

// IsMapping reports whether the attribution was sent as a mapping.
func (a Attribution) IsMapping() bool {
	return a.isMapping
}

// Fields returns the sub-fields of a mapping attribution (nil for scalars).
func (a Attribution) Fields() []AttributionField {
	return a.fields
}

// Text flattens the attribution to plain text. Mapping values are joined with a
// single space in the order they were received.
func (a Attribution) Text() string {
	if !a.isMapping {
		return a.scalar
	}
	values := make([]string, 0, len(a.fields))
	for _, f := range a.fields {
		values = append(values, f.Value)
	}
	return strings.Join(values, " ")
}

// Message is a single member-generated message as returned by the message source.
// Messages are read-only once ingested.
type Message struct {
	Text   string      `json:"text"`
	Author Attribution `json:"-"`
}
