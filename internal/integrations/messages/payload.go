package messages

import (
	"fmt"

	"github.com/tidwall/gjson"

	"memberqa-backend/internal/models"
)

// listKeys are the wrapper keys checked, in order, when the payload is an object.
var listKeys = []string{"messages", "items", "data", "results"}

var (
	textKeys   = []string{"text", "message"}
	authorKeys = []string{"member", "member_name", "user"}
)

// DecodePayload normalizes a message-source response body into messages.
// Accepted shapes, first match wins:
//   - a bare JSON array of records
//   - an object holding an array under one of listKeys
//   - an object whose first array-valued property (in document order) is a
//     non-empty array starting with an object
//
// Array entries that are not objects are skipped.
func DecodePayload(body []byte) ([]models.Message, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrUnexpectedPayload)
	}

	records, ok := findRecords(gjson.ParseBytes(body))
	if !ok {
		return nil, ErrUnexpectedPayload
	}

	messages := make([]models.Message, 0, len(records))
	for _, rec := range records {
		if !rec.IsObject() {
			continue
		}
		messages = append(messages, decodeRecord(rec))
	}
	return messages, nil
}

func findRecords(root gjson.Result) ([]gjson.Result, bool) {
	if root.IsArray() {
		return root.Array(), true
	}
	if !root.IsObject() {
		return nil, false
	}

	for _, key := range listKeys {
		if v := root.Get(key); v.IsArray() {
			return v.Array(), true
		}
	}

	var found []gjson.Result
	root.ForEach(func(_, v gjson.Result) bool {
		if !v.IsArray() {
			return true
		}
		if items := v.Array(); len(items) > 0 && items[0].IsObject() {
			found = items
			return false
		}
		return true
	})
	return found, found != nil
}

func decodeRecord(rec gjson.Result) models.Message {
	msg := models.Message{}
	if v, ok := firstPresent(rec, textKeys); ok {
		msg.Text = stringify(v)
	}
	if v, ok := firstPresent(rec, authorKeys); ok {
		msg.Author = decodeAttribution(v)
	}
	return msg
}

func decodeAttribution(v gjson.Result) models.Attribution {
	if !v.IsObject() {
		return models.ScalarAttribution(stringify(v))
	}
	var fields []models.AttributionField
	v.ForEach(func(k, val gjson.Result) bool {
		fields = append(fields, models.AttributionField{Key: k.String(), Value: stringify(val)})
		return true
	})
	return models.MappingAttribution(fields...)
}

// firstPresent returns the first of keys whose value is present and non-empty.
// null, false, 0, "" and empty arrays/objects all count as absent.
func firstPresent(rec gjson.Result, keys []string) (gjson.Result, bool) {
	for _, key := range keys {
		if v := rec.Get(gjson.Escape(key)); isSet(v) {
			return v, true
		}
	}
	return gjson.Result{}, false
}

func isSet(v gjson.Result) bool {
	switch v.Type {
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	case gjson.True:
		return true
	case gjson.JSON:
		if v.IsArray() {
			return len(v.Array()) > 0
		}
		return len(v.Map()) > 0
	default:
		return false
	}
}

// stringify renders a JSON value as text: strings unquoted, anything else as
// its raw JSON.
func stringify(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return v.Raw
}
