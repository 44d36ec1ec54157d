package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		question string
		text     string
		want     int
	}{
		{name: "all content tokens present", question: "When is John going to Paris?", text: "John is going to Paris soon", want: 3},
		{name: "no overlap", question: "When is John going to Paris?", text: "Nothing relevant here", want: 0},
		{name: "stop words ignored", question: "What is the favorite trip?", text: "what is the favorite trip", want: 0},
		{name: "repeated question token counts twice", question: "Paris Paris trip", text: "paris", want: 2},
		{name: "repeated message token counts once", question: "Paris", text: "Paris paris PARIS", want: 1},
		{name: "empty question", question: "", text: "anything", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.question, tt.text))
		})
	}
}
