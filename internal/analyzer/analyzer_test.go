package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPreprocessor struct {
	out string
	err error
}

func (s *stubPreprocessor) Process(text string) (string, error) {
	return s.out, s.err
}

type stubExtractor struct {
	entities []Entity
	err      error
	calls    int
	lastText string
}

func (s *stubExtractor) ExtractEntities(ctx context.Context, text string) ([]Entity, error) {
	s.calls++
	s.lastText = text
	return s.entities, s.err
}

const sampleResume = `John Doe
john@example.com

Professional Summary
Experienced engineer proficient in Python, Go and Docker.

Experience
Managed a team of 5 engineers and increased deployment frequency by 40%
Developed a data pipeline with Kafka and Spark`

func TestAnalyze(t *testing.T) {
	a := New(nil)

	result := a.Analyze(context.Background(), sampleResume, "")
	require.NotNil(t, result)

	assert.Equal(t, []string{"Python", "Go", "R", "Docker", "Spark", "Kafka"}, result.Skills)
	assert.Equal(t, []string{
		"Managed a team of 5 engineers and increased deployment frequency by 40%",
		"Developed a data pipeline with Kafka and Spark",
	}, result.Experiences)

	// 34 words (+10), 6 skills (+15), 2 experiences (+15), density 6 (+5)
	assert.Equal(t, 45, result.Score)

	assert.Equal(t, "Fair resume, but needs significant improvements. "+
		"Consider adding more content to showcase your experience. "+
		"Include more specific examples of your achievements with metrics.", result.Feedback)

	assert.Equal(t, []string{
		"Add more technical skills and certifications relevant to your field.",
		"Include more quantifiable achievements with specific metrics (e.g., 'Increased sales by 25%').",
	}, result.Recommendations)
}

func TestAnalyzeUnknownJobPosition(t *testing.T) {
	a := New(nil)

	result := a.Analyze(context.Background(), sampleResume, "astronaut")

	for _, rec := range result.Recommendations {
		assert.NotContains(t, rec, "keywords relevant to")
	}
}

func TestAnalyzeKnownJobPosition(t *testing.T) {
	a := New(nil)

	result := a.Analyze(context.Background(), sampleResume, "data-scientist")

	found := false
	for _, rec := range result.Recommendations {
		if strings.HasPrefix(rec, "Consider adding these keywords relevant to Data Scientist:") {
			found = true
		}
	}
	assert.True(t, found, "expected a keyword-gap recommendation, got %v", result.Recommendations)
}

func TestAnalyzeUsesPreprocessor(t *testing.T) {
	a := New(nil, WithPreprocessor(&stubPreprocessor{out: "docker kubernetes"}))

	skills := a.extractSkills(context.Background(), "irrelevant input")

	assert.Equal(t, []string{"R", "Docker", "Kubernetes"}, skills)
}

func TestAnalyzeFallsBackWhenPreprocessorFails(t *testing.T) {
	a := New(nil, WithPreprocessor(&stubPreprocessor{err: errors.New("model not loaded")}))

	skills := a.extractSkills(context.Background(), "  PYTHON  ")

	assert.Equal(t, []string{"Python"}, skills)
}

func TestAnalyzeMergesOrganizationEntities(t *testing.T) {
	extractor := &stubExtractor{entities: []Entity{
		{Text: "Acme Corp", Label: LabelOrganization},
		{Text: "John Doe", Label: LabelPerson},
		{Text: "Python", Label: LabelOrganization}, // duplicate of a vocabulary match
	}}
	a := New(nil, WithEntityExtractor(extractor))

	skills := a.extractSkills(context.Background(), "python")

	assert.Equal(t, []string{"Python", "Acme Corp"}, skills)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, "python", extractor.lastText, "extractor must see the original text")
}

func TestAnalyzeSurvivesExtractorFailure(t *testing.T) {
	a := New(nil, WithEntityExtractor(&stubExtractor{err: errors.New("rate limited")}))

	skills := a.extractSkills(context.Background(), "python")

	assert.Equal(t, []string{"Python"}, skills)
}

func TestNormalizeBasic(t *testing.T) {
	assert.Equal(t, "hello world", normalizeBasic("  Hello\n\tWorld  "))
	assert.Equal(t, "", normalizeBasic("   \n  "))

	once := normalizeBasic("Mixed   CASE\ttext")
	assert.Equal(t, once, normalizeBasic(once))
}
