package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"node.js", "Node.Js"},
		{"power bi", "Power Bi"},
		{"c++", "C++"},
		{"c#", "C#"},
		{"scikit-learn", "Scikit-Learn"},
		{"machine learning", "Machine Learning"},
		{"ALL CAPS", "All Caps"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), "titleCase(%q)", tt.in)
	}
}

func TestVocabulariesAreLowerCase(t *testing.T) {
	for _, skill := range skillKeywords {
		assert.Equal(t, skill, normalizeBasic(skill))
	}
	for position, keywords := range jobKeywords {
		for _, keyword := range keywords {
			assert.Equal(t, keyword, normalizeBasic(keyword), "position %s", position)
		}
	}
}
