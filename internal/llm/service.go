// Package llm implements the optional entity-extraction collaborator on top
// of hosted language models. The analyzer treats it as an opaque NER service
// that may be absent or fail per call.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"resume-analyzer/internal/analyzer"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
	ProviderGemini Provider = "gemini"
	ProviderNone   Provider = "none"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGeminiModel = "gemini-2.0-flash"
)

type Service struct {
	provider Provider
	apiKey   string
	model    string
	timeout  time.Duration
	gemini   *genai.Client
	logger   *zap.Logger
}

// NewService builds the NER collaborator for the configured provider. It
// fails when no provider is configured or the API key is missing; callers
// treat that as "collaborator absent" and analyze without entity extraction.
func NewService(ctx context.Context, provider, apiKey, model string, logger *zap.Logger) (*Service, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(provider)))
	if p == "" || p == ProviderNone {
		return nil, fmt.Errorf("llm provider not configured")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("missing API key for llm provider %q", p)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		provider: p,
		apiKey:   apiKey,
		model:    model,
		timeout:  60 * time.Second,
		logger:   logger,
	}

	switch p {
	case ProviderOpenAI:
		if s.model == "" {
			s.model = defaultOpenAIModel
		}
	case ProviderGroq:
		if s.model == "" {
			s.model = defaultGroqModel
		}
	case ProviderGemini:
		if s.model == "" {
			s.model = defaultGeminiModel
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		s.gemini = client
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", p)
	}

	return s, nil
}

// Model returns the configured model name.
func (s *Service) Model() string {
	return s.model
}

// ExtractEntities runs NER over the raw resume text and returns tagged spans
// in the order the model produced them.
func (s *Service) ExtractEntities(ctx context.Context, text string) ([]analyzer.Entity, error) {
	prompt := buildNERPrompt(text)

	var response string
	var err error
	switch s.provider {
	case ProviderOpenAI:
		response, err = s.callOpenAI(ctx, prompt)
	case ProviderGroq:
		response, err = s.callGroq(ctx, prompt)
	case ProviderGemini:
		response, err = s.callGemini(ctx, prompt)
	default:
		return nil, fmt.Errorf("unknown provider: %s", s.provider)
	}
	if err != nil {
		return nil, err
	}

	entities, err := parseEntities(response)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("entity extraction completed",
		zap.String("provider", string(s.provider)),
		zap.Int("entities", len(entities)))
	return entities, nil
}

func buildNERPrompt(text string) string {
	return fmt.Sprintf(`You are a named-entity recognition engine. Tag entities in this resume text.

Resume Text:
"""
%s
"""

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "entities": [
    {"text": "Entity surface form exactly as it appears", "label": "ORG"}
  ]
}

Rules:
- Allowed labels: ORG (companies, products, institutions), PER (people), LOC (places), MISC (everything else worth tagging)
- Keep the surface form verbatim, do not normalize
- Preserve order of first appearance
- Return an empty array if nothing is found`, text)
}

// parseEntities unmarshals the model output, tolerating markdown code fences
// and stray prose around the JSON object.
func parseEntities(response string) ([]analyzer.Entity, error) {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no JSON object in llm response")
	}

	var payload struct {
		Entities []analyzer.Entity `json:"entities"`
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse llm response: %w", err)
	}
	return payload.Entities, nil
}

func (s *Service) callOpenAI(ctx context.Context, prompt string) (string, error) {
	return s.callChatCompletions(ctx, "https://api.openai.com/v1/chat/completions", "OpenAI", prompt)
}

func (s *Service) callGroq(ctx context.Context, prompt string) (string, error) {
	return s.callChatCompletions(ctx, "https://api.groq.com/openai/v1/chat/completions", "Groq", prompt)
}

// callChatCompletions posts to an OpenAI-compatible chat endpoint and returns
// the first choice's content.
func (s *Service) callChatCompletions(ctx context.Context, url, name, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a named-entity recognition engine. Return only valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.1,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s API error: %d", name, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("%s error: %s", name, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", name)
	}
	return result.Choices[0].Message.Content, nil
}

func (s *Service) callGemini(ctx context.Context, prompt string) (string, error) {
	if s.gemini == nil {
		return "", fmt.Errorf("gemini client is not initialized")
	}

	resp, err := s.gemini.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return output, nil
}
