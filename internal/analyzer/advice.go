package analyzer

import (
	"fmt"
	"strings"
)

// fallbackRecommendations is returned whole when no targeted rule fires; the
// recommendation list is never empty and the fallback is all-or-nothing.
var fallbackRecommendations = []string{
	"Review your resume for typos and grammatical errors.",
	"Ensure consistent formatting throughout the document.",
	"Tailor your resume for each job application.",
}

// generateFeedback joins independently triggered sentences in fixed priority
// order. The score-band headline is always present; the rest depend on the
// text and the extraction results.
func (a *Analyzer) generateFeedback(text string, skills, experiences []string, score int) string {
	var parts []string

	switch {
	case score >= 80:
		parts = append(parts, "Excellent resume! Well-structured and comprehensive.")
	case score >= 60:
		parts = append(parts, "Good resume with some room for improvement.")
	case score >= 40:
		parts = append(parts, "Fair resume, but needs significant improvements.")
	default:
		parts = append(parts, "Needs substantial improvements to be competitive.")
	}

	wordCount := len(strings.Fields(text))
	if wordCount < 150 {
		parts = append(parts, "Consider adding more content to showcase your experience.")
	} else if wordCount > 1000 {
		parts = append(parts, "Consider shortening your resume to make it more concise.")
	}

	if len(skills) < 5 {
		parts = append(parts, "Try to highlight more technical skills relevant to your field.")
	}

	if len(experiences) < 3 {
		parts = append(parts, "Include more specific examples of your achievements with metrics.")
	}

	lower := strings.ToLower(text)
	if !strings.Contains(lower, "summary") && !strings.Contains(lower, "objective") {
		parts = append(parts, "Consider adding a professional summary or objective.")
	}

	if !strings.Contains(text, "@") && !strings.Contains(lower, "email") {
		parts = append(parts, "Make sure your contact information is clearly visible.")
	}

	return strings.Join(parts, " ")
}

// generateRecommendations builds improvement tips in fixed order. A known
// jobPosition adds a keyword-gap tip listing up to five missing profile
// keywords; unknown tags are silently ignored.
func (a *Analyzer) generateRecommendations(text string, skills, experiences []string, jobPosition string) []string {
	var recommendations []string

	if len(skills) < 8 {
		recommendations = append(recommendations,
			"Add more technical skills and certifications relevant to your field.")
	}

	if len(experiences) < 4 {
		recommendations = append(recommendations,
			"Include more quantifiable achievements with specific metrics (e.g., 'Increased sales by 25%').")
	}

	weakLines := countLinesContaining(experiences, weakActionVerbs)
	strongLines := countLinesContaining(experiences, strongActionVerbs)
	if weakLines > strongLines {
		recommendations = append(recommendations,
			"Use stronger action verbs to describe your accomplishments (e.g., 'Led' instead of 'Helped').")
	}

	if countLinesContaining(experiences, metricMarkers)*2 < len(experiences) {
		recommendations = append(recommendations,
			"Include more quantifiable results to demonstrate impact (e.g., 'Reduced processing time by 40%').")
	}

	if tip, ok := a.keywordGapTip(text, jobPosition); ok {
		recommendations = append(recommendations, tip)
	}

	lower := strings.ToLower(text)
	if !strings.Contains(lower, "objective") && !strings.Contains(lower, "summary") {
		recommendations = append(recommendations,
			"Add a professional summary or objective at the beginning of your resume.")
	}

	if len(recommendations) == 0 {
		return append([]string(nil), fallbackRecommendations...)
	}
	return recommendations
}

// keywordGapTip lists up to five profile keywords absent from the text for a
// recognized job position.
func (a *Analyzer) keywordGapTip(text, jobPosition string) (string, bool) {
	profile, ok := jobKeywords[jobPosition]
	if !ok {
		return "", false
	}

	lower := strings.ToLower(text)
	var missing []string
	for _, keyword := range profile {
		if !strings.Contains(lower, keyword) {
			missing = append(missing, titleCase(keyword))
		}
	}
	if len(missing) == 0 {
		return "", false
	}
	if len(missing) > 5 {
		missing = missing[:5]
	}

	position := titleCase(strings.ReplaceAll(jobPosition, "-", " "))
	return fmt.Sprintf("Consider adding these keywords relevant to %s: %s",
		position, strings.Join(missing, ", ")), true
}

// countLinesContaining counts experience lines that contain at least one of
// the terms, case-insensitively. A line with several terms counts once.
func countLinesContaining(experiences []string, terms []string) int {
	count := 0
	for _, exp := range experiences {
		if containsAny(strings.ToLower(exp), terms) {
			count++
		}
	}
	return count
}
