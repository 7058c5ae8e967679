package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resume-analyzer/internal/analyzer"
)

func TestNewServiceValidation(t *testing.T) {
	ctx := context.Background()

	_, err := NewService(ctx, "", "key", "", nil)
	assert.Error(t, err)

	_, err = NewService(ctx, "none", "key", "", nil)
	assert.Error(t, err)

	_, err = NewService(ctx, "openai", "", "", nil)
	assert.Error(t, err)

	_, err = NewService(ctx, "replicate", "key", "", nil)
	assert.Error(t, err)
}

func TestNewServiceDefaultModels(t *testing.T) {
	ctx := context.Background()

	s, err := NewService(ctx, "openai", "sk-test", "", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultOpenAIModel, s.Model())

	s, err = NewService(ctx, "groq", "gsk-test", "", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultGroqModel, s.Model())

	s, err = NewService(ctx, "OpenAI", "sk-test", "gpt-4o", nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", s.Model())
}

func TestParseEntities(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []analyzer.Entity
		wantErr  bool
	}{
		{
			name:     "plain json",
			response: `{"entities":[{"text":"Google","label":"ORG"},{"text":"Jane","label":"PER"}]}`,
			want: []analyzer.Entity{
				{Text: "Google", Label: "ORG"},
				{Text: "Jane", Label: "PER"},
			},
		},
		{
			name: "fenced json",
			response: "```json\n" +
				`{"entities":[{"text":"Amazon","label":"ORG"}]}` + "\n```",
			want: []analyzer.Entity{{Text: "Amazon", Label: "ORG"}},
		},
		{
			name:     "prose around object",
			response: `Here you go: {"entities":[{"text":"Berlin","label":"LOC"}]} hope that helps`,
			want:     []analyzer.Entity{{Text: "Berlin", Label: "LOC"}},
		},
		{
			name:     "empty entity list",
			response: `{"entities":[]}`,
			want:     []analyzer.Entity{},
		},
		{
			name:     "no json object",
			response: "I could not find any entities.",
			wantErr:  true,
		},
		{
			name:     "malformed json",
			response: `{"entities":[{"text":`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := parseEntities(tt.response)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, entities)
		})
	}
}

func TestBuildNERPrompt(t *testing.T) {
	prompt := buildNERPrompt("Worked at Initech since 2019")

	assert.Contains(t, prompt, "Worked at Initech since 2019")
	assert.Contains(t, prompt, `"entities"`)
	assert.Contains(t, prompt, "ORG")
}

func TestCallChatCompletions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"entities\":[]}"}}]}`))
	}))
	defer server.Close()

	s := &Service{
		provider: ProviderOpenAI,
		apiKey:   "test-key",
		model:    "test-model",
		timeout:  time.Second,
		logger:   zap.NewNop(),
	}

	content, err := s.callChatCompletions(context.Background(), server.URL, "OpenAI", "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"entities":[]}`, content)
}

func TestCallChatCompletionsErrors(t *testing.T) {
	s := &Service{
		provider: ProviderGroq,
		apiKey:   "test-key",
		model:    "test-model",
		timeout:  time.Second,
		logger:   zap.NewNop(),
	}

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := s.callChatCompletions(context.Background(), server.URL, "Groq", "prompt")
		assert.ErrorContains(t, err, "429")
	})

	t.Run("api error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer server.Close()

		_, err := s.callChatCompletions(context.Background(), server.URL, "Groq", "prompt")
		assert.ErrorContains(t, err, "invalid api key")
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		_, err := s.callChatCompletions(context.Background(), server.URL, "Groq", "prompt")
		assert.ErrorContains(t, err, "no response")
	})
}
