// Package nlp provides the optional linguistic-preprocessing collaborator:
// stopword removal, tokenization, and lemmatization over resume text. The
// analyzer works without it, just with coarser matching.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
	prose "github.com/jdkato/prose/v2"
)

type Preprocessor struct {
	lemmatizer *golem.Lemmatizer
}

// NewPreprocessor loads the English lemma dictionary. Failure here means the
// collaborator is unavailable; callers are expected to continue without it.
func NewPreprocessor() (*Preprocessor, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &Preprocessor{lemmatizer: lemmatizer}, nil
}

// Process normalizes text the way the analyzer's matchers want it: stopwords
// dropped, tokens lower-cased and lemmatized, non-alphabetic tokens removed,
// joined with single spaces.
func (p *Preprocessor) Process(text string) (string, error) {
	cleaned := stopwords.CleanString(text, "en", false)

	doc, err := prose.NewDocument(cleaned,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return "", fmt.Errorf("tokenize text: %w", err)
	}

	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isAlpha(tok.Text) {
			continue
		}
		words = append(words, p.lemmatizer.Lemma(strings.ToLower(tok.Text)))
	}
	return strings.Join(words, " "), nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
