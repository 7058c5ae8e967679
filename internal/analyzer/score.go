package analyzer

import "strings"

// calculateScore sums four weighted rules: text length, skill diversity,
// experience depth, and vocabulary keyword density. Bands are checked top
// down, first match wins. The sum is clamped to [0,100], though by
// construction it already lands inside.
func (a *Analyzer) calculateScore(text string, skills, experiences []string) int {
	score := 0

	switch wordCount := len(strings.Fields(text)); {
	case wordCount >= 200 && wordCount <= 800:
		score += 30
	case wordCount > 100:
		score += 20
	default:
		score += 10
	}

	switch {
	case len(skills) >= 10:
		score += 25
	case len(skills) >= 5:
		score += 15
	default:
		score += 5
	}

	switch {
	case len(experiences) >= 5:
		score += 25
	case len(experiences) >= 2:
		score += 15
	default:
		score += 5
	}

	switch density := keywordDensity(text); {
	case density >= 15:
		score += 20
	case density >= 8:
		score += 10
	default:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// keywordDensity counts vocabulary terms present in the raw text,
// case-insensitively, by substring scan.
func keywordDensity(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, keyword := range skillKeywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}
