package analyzer

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// extractSkills scans the normalized text for vocabulary terms in definition
// order, then appends organization entities from the extraction collaborator
// when one is attached. The collaborator sees the original text, not the
// normalized copy. Entries are deduplicated by exact string preserving first
// occurrence and capped at maxSkills.
func (a *Analyzer) extractSkills(ctx context.Context, text string) []string {
	processed := strings.ToLower(a.preprocess(text))

	found := make([]string, 0, maxSkills)
	for _, skill := range skillKeywords {
		if strings.Contains(processed, skill) {
			found = append(found, titleCase(skill))
		}
	}

	if a.extractor != nil {
		entities, err := a.extractor.ExtractEntities(ctx, text)
		if err != nil {
			// Non-fatal: continue with vocabulary matches only.
			a.logger.Warn("entity extraction failed, keeping vocabulary matches only", zap.Error(err))
		} else {
			for _, e := range entities {
				if e.Label == LabelOrganization {
					found = append(found, e.Text)
				}
			}
		}
	}

	seen := make(map[string]struct{}, len(found))
	unique := make([]string, 0, len(found))
	for _, skill := range found {
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		unique = append(unique, skill)
	}

	if len(unique) > maxSkills {
		unique = unique[:maxSkills]
	}
	return unique
}

// extractExperiences keeps lines that read like achievement statements: after
// trimming, longer than minLineLength and containing an action verb. Emitted
// lines keep their original wording with the first letter capitalized, in
// source order, capped at maxExperiences.
func (a *Analyzer) extractExperiences(text string) []string {
	experiences := make([]string, 0, maxExperiences)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if len(lower) <= minLineLength || !containsAny(lower, actionVerbs) {
			continue
		}
		experiences = append(experiences, capitalizeFirst(trimmed))
		if len(experiences) == maxExperiences {
			break
		}
	}
	return experiences
}

// containsAny reports whether s contains at least one of the terms as a
// substring. s is expected to be lower-cased already.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
