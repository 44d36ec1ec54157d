package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"memberqa-backend/internal/models"
)

func TestFilterByMember(t *testing.T) {
	john := models.Message{Text: "hello", Author: models.ScalarAttribution("John")}
	maria := models.Message{Text: "hi", Author: models.ScalarAttribution("Maria Lopez")}
	mariaMapping := models.Message{
		Text: "dinner booked",
		Author: models.MappingAttribution(
			models.AttributionField{Key: "first_name", Value: "Maria"},
			models.AttributionField{Key: "last_name", Value: "Lopez"},
		),
	}
	mentionsMaria := models.Message{Text: "Dinner with maria tonight", Author: models.ScalarAttribution("Ken")}

	t.Run("falls back to all messages when nobody matches", func(t *testing.T) {
		all := []models.Message{john, maria, mentionsMaria}
		assert.Equal(t, all, FilterByMember(all, "Zeke"))
	})

	t.Run("matches scalar attribution case-insensitively", func(t *testing.T) {
		got := FilterByMember([]models.Message{john, maria}, "maria")
		assert.Equal(t, []models.Message{maria}, got)
	})

	t.Run("matches across flattened mapping values", func(t *testing.T) {
		got := FilterByMember([]models.Message{john, mariaMapping}, "Maria Lopez")
		assert.Equal(t, []models.Message{mariaMapping}, got)
	})

	t.Run("matches mentions in text and keeps order", func(t *testing.T) {
		got := FilterByMember([]models.Message{mentionsMaria, john, maria}, "Maria")
		assert.Equal(t, []models.Message{mentionsMaria, maria}, got)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, FilterByMember(nil, "Maria"))
	})
}
