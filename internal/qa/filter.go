package qa

import (
	"strings"

	"memberqa-backend/internal/models"
)

// FilterByMember keeps the messages written by or mentioning memberName
// (case-insensitive substring match on the attribution and the text).
// If nothing matches, the input is returned unchanged: the name is only a
// preference and must never leave the selector with nothing to choose from.
func FilterByMember(messages []models.Message, memberName string) []models.Message {
	name := strings.ToLower(memberName)

	var filtered []models.Message
	for _, msg := range messages {
		if strings.Contains(strings.ToLower(msg.Author.Text()), name) ||
			strings.Contains(strings.ToLower(msg.Text), name) {
			filtered = append(filtered, msg)
		}
	}

	if len(filtered) == 0 {
		return messages
	}
	return filtered
}
