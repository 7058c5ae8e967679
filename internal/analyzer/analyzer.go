package analyzer

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Preprocessor normalizes resume text linguistically (tokenization, stopword
// removal, lemmatization). It is optional; when absent or failing the
// analyzer falls back to basic normalization.
type Preprocessor interface {
	Process(text string) (string, error)
}

// Entity label values as produced by the extraction collaborator.
const (
	LabelOrganization = "ORG"
	LabelPerson       = "PER"
	LabelLocation     = "LOC"
	LabelMisc         = "MISC"
)

// Entity is a tagged span returned by the entity-extraction collaborator.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityExtractor performs named-entity recognition over raw resume text.
// It is optional and may fail per call; the analyzer degrades to
// vocabulary-only skill extraction.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

// Result is the fixed-shape outcome of a single analysis. It is built fresh
// per call and never mutated afterwards.
type Result struct {
	Skills          []string `json:"skills"`
	Experiences     []string `json:"experiences"`
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	Recommendations []string `json:"recommendations"`
}

// Analyzer extracts structured signal from free-text resumes. It holds only
// immutable vocabulary data and optional collaborators, so a single instance
// is safe for concurrent use.
type Analyzer struct {
	preprocessor Preprocessor
	extractor    EntityExtractor
	logger       *zap.Logger
}

// Option configures optional analyzer collaborators.
type Option func(*Analyzer)

// WithPreprocessor attaches a linguistic preprocessing collaborator.
func WithPreprocessor(p Preprocessor) Option {
	return func(a *Analyzer) { a.preprocessor = p }
}

// WithEntityExtractor attaches an entity-extraction collaborator.
func WithEntityExtractor(e EntityExtractor) Option {
	return func(a *Analyzer) { a.extractor = e }
}

func New(logger *zap.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analyzer{logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline over the resume text. jobPosition is an
// optional position tag; unrecognized tags simply produce no
// position-specific recommendations. The result is a pure function of the
// inputs, the static vocabularies, and the collaborator outputs.
func (a *Analyzer) Analyze(ctx context.Context, text, jobPosition string) *Result {
	skills := a.extractSkills(ctx, text)
	experiences := a.extractExperiences(text)
	score := a.calculateScore(text, skills, experiences)

	return &Result{
		Skills:          skills,
		Experiences:     experiences,
		Score:           score,
		Feedback:        a.generateFeedback(text, skills, experiences, score),
		Recommendations: a.generateRecommendations(text, skills, experiences, jobPosition),
	}
}

// preprocess normalizes text through the collaborator when one is attached,
// falling back to basic normalization on absence or failure. It never fails.
func (a *Analyzer) preprocess(text string) string {
	if a.preprocessor != nil {
		processed, err := a.preprocessor.Process(text)
		if err == nil {
			return processed
		}
		a.logger.Warn("text preprocessing failed, using basic normalization", zap.Error(err))
	}
	return normalizeBasic(text)
}

// normalizeBasic lower-cases the text and collapses whitespace runs to single
// spaces, trimming both ends. Applying it twice equals applying it once.
func normalizeBasic(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
