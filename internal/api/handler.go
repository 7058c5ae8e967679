package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"resume-analyzer/internal/analyzer"
	"resume-analyzer/internal/config"
	"resume-analyzer/internal/cv"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/nlp"
)

type API struct {
	analyzer *analyzer.Analyzer
	parser   *cv.Parser
	logger   *zap.Logger
}

// NewAPI wires the analyzer with whichever optional collaborators can be
// constructed. A collaborator that fails to initialize is logged and skipped;
// analysis still works with reduced signal.
func NewAPI(ctx context.Context, cfg *config.Config, logger *zap.Logger) *API {
	var opts []analyzer.Option

	if cfg.PreprocessorEnabled {
		preprocessor, err := nlp.NewPreprocessor()
		if err != nil {
			logger.Warn("linguistic preprocessor unavailable, using basic normalization", zap.Error(err))
		} else {
			opts = append(opts, analyzer.WithPreprocessor(preprocessor))
		}
	} else {
		logger.Info("linguistic preprocessor disabled by configuration")
	}

	extractor, err := llm.NewService(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, logger)
	if err != nil {
		logger.Warn("entity extraction unavailable, using vocabulary matching only", zap.Error(err))
	} else {
		opts = append(opts, analyzer.WithEntityExtractor(extractor))
		logger.Info("entity extraction enabled",
			zap.String("provider", cfg.LLMProvider),
			zap.String("model", extractor.Model()))
	}

	return &API{
		analyzer: analyzer.New(logger, opts...),
		parser:   cv.NewParser(),
		logger:   logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
