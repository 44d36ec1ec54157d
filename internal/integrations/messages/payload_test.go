package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberqa-backend/internal/models"
)

func TestDecodePayload_Shapes(t *testing.T) {
	want := []models.Message{
		{Text: "Flying to Paris", Author: models.ScalarAttribution("John")},
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "bare list", body: `[{"text": "Flying to Paris", "member": "John"}]`},
		{name: "messages key", body: `{"total": 1, "messages": [{"text": "Flying to Paris", "member": "John"}]}`},
		{name: "items key", body: `{"items": [{"text": "Flying to Paris", "member": "John"}]}`},
		{name: "data key", body: `{"data": [{"text": "Flying to Paris", "member": "John"}]}`},
		{name: "results key", body: `{"results": [{"text": "Flying to Paris", "member": "John"}]}`},
		{name: "first list of objects", body: `{"tags": ["a", "b"], "empty": [], "page": {"n": 1}, "entries": [{"text": "Flying to Paris", "member": "John"}], "more": [{"text": "ignored"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodePayload_KnownKeyOrder(t *testing.T) {
	body := `{"results": [{"text": "from results"}], "items": [{"text": "from items"}]}`
	got, err := DecodePayload([]byte(body))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "from items", got[0].Text)
}

func TestDecodePayload_EmptyKnownListIsNotAnError(t *testing.T) {
	got, err := DecodePayload([]byte(`{"messages": [], "other": [{"text": "x"}]}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodePayload_Unrecognized(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "scalar", body: `"hello"`},
		{name: "object without lists", body: `{"status": "ok"}`},
		{name: "only lists of scalars", body: `{"ids": [1, 2, 3]}`},
		{name: "only empty lists", body: `{"entries": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedPayload)
			assert.ErrorIs(t, err, ErrRetrieval)
		})
	}
}

func TestDecodePayload_FieldAliases(t *testing.T) {
	body := `[
		{"message": "uses message key", "member_name": "Maria Lopez"},
		{"text": "", "message": "empty text falls through", "member": null, "user": "ken"},
		{"text": "text wins", "message": "not this", "member": "Amira", "user": "not this"},
		{"text": 42, "member": {"first_name": "Omar", "last_name": "Haddad", "id": 7}},
		{"member": "nobody wrote text"},
		"not an object",
		{"text": "no author"}
	]`

	got, err := DecodePayload([]byte(body))
	require.NoError(t, err)
	require.Len(t, got, 6)

	assert.Equal(t, "uses message key", got[0].Text)
	assert.Equal(t, "Maria Lopez", got[0].Author.Text())

	assert.Equal(t, "empty text falls through", got[1].Text)
	assert.Equal(t, "ken", got[1].Author.Text())

	assert.Equal(t, "text wins", got[2].Text)
	assert.Equal(t, "Amira", got[2].Author.Text())

	assert.Equal(t, "42", got[3].Text)
	assert.True(t, got[3].Author.IsMapping())
	assert.Equal(t, "Omar Haddad 7", got[3].Author.Text())
	assert.Equal(t, []models.AttributionField{
		{Key: "first_name", Value: "Omar"},
		{Key: "last_name", Value: "Haddad"},
		{Key: "id", Value: "7"},
	}, got[3].Author.Fields())

	assert.Equal(t, "", got[4].Text)
	assert.Equal(t, "nobody wrote text", got[4].Author.Text())

	assert.Equal(t, "no author", got[5].Text)
	assert.Equal(t, "", got[5].Author.Text())
}
