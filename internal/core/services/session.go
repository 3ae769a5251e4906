package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService runs one generation request end to end.
type SessionService struct {
	generator driving.GeneratorService
	renderers driven.RendererRegistry
	sink      driven.OutputSink
	history   driven.HistoryStore
	clock     driven.Clock
	newID     func() string
}

// NewSessionService creates a new session service.
// The sink and history parameters are optional (can be nil).
func NewSessionService(
	generator driving.GeneratorService,
	renderers driven.RendererRegistry,
	sink driven.OutputSink,
	history driven.HistoryStore,
	clock driven.Clock,
) *SessionService {
	return &SessionService{
		generator: generator,
		renderers: renderers,
		sink:      sink,
		history:   history,
		clock:     clock,
		newID:     uuid.NewString,
	}
}

// Run selects, renders and optionally writes the questions for req.
// A failure to record history is logged and does not fail the session.
func (s *SessionService) Run(ctx context.Context, req driving.SessionRequest) (*driving.SessionResult, error) {
	defer logger.Timer("session")()

	format := req.Format
	if format == "" {
		format = domain.FormatMarkdown
	}
	renderer, err := s.renderers.Get(format)
	if err != nil {
		return nil, err
	}
	if req.Output != "" && s.sink == nil {
		return nil, errors.New("output sink not configured")
	}

	questions, mode, criteria, err := s.selectQuestions(ctx, req)
	if err != nil {
		return nil, err
	}

	rendered := make([]string, len(questions))
	for i, q := range questions {
		out, err := renderer.Render(q)
		if err != nil {
			return nil, fmt.Errorf("failed to render question %d: %w", i+1, err)
		}
		rendered[i] = out
	}

	result := &driving.SessionResult{
		ID:        s.newID(),
		Questions: questions,
		Rendered:  rendered,
	}

	if req.Output != "" {
		content, err := renderer.RenderBatch(questions)
		if err != nil {
			return nil, fmt.Errorf("failed to render batch: %w", err)
		}
		path, err := s.sink.Write(ctx, req.Output, content)
		if err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		result.OutputPath = path
		logger.Info("Wrote %d questions to %s", len(questions), path)
	}

	s.record(ctx, req.Database, mode, criteria, format, result)
	return result, nil
}

// selectQuestions runs the generation and returns the criteria actually
// used, with progression defaults resolved.
func (s *SessionService) selectQuestions(
	ctx context.Context, req driving.SessionRequest,
) ([]domain.Question, domain.GenerationMode, domain.Criteria, error) {
	if !req.Progression {
		questions, err := s.generator.Generate(ctx, req.Database, req.Criteria)
		return questions, domain.ModeSingle, req.Criteria, err
	}

	// Zero options mean defaults; an explicit zero count is rejected downstream.
	opts := req.ProgressionOptions
	if opts == (domain.ProgressionOptions{}) {
		opts = domain.DefaultProgressionOptions()
	}
	if opts.StartDifficulty == "" {
		opts.StartDifficulty = domain.DefaultProgressionOptions().StartDifficulty
	}
	criteria := domain.Criteria{
		Difficulty: string(opts.StartDifficulty),
		Count:      opts.CountPerLevel,
	}

	progression, err := s.generator.GenerateProgression(ctx, req.Database, opts)
	if err != nil {
		return nil, domain.ModeProgression, criteria, err
	}
	questions := progression.Flatten()
	if questions == nil {
		questions = []domain.Question{}
	}
	return questions, domain.ModeProgression, criteria, nil
}

func (s *SessionService) record(
	ctx context.Context,
	database string,
	mode domain.GenerationMode,
	criteria domain.Criteria,
	format domain.OutputFormat,
	result *driving.SessionResult,
) {
	if s.history == nil {
		return
	}

	titles := make([]string, len(result.Questions))
	for i, q := range result.Questions {
		titles[i] = q.Title()
	}

	record := domain.GenerationRecord{
		ID:        result.ID,
		Database:  database,
		Mode:      mode,
		Criteria:  criteria,
		Format:    format,
		Output:    result.OutputPath,
		Titles:    titles,
		CreatedAt: s.clock.Now(),
	}
	if err := s.history.Record(ctx, record); err != nil {
		logger.Warn("Failed to record generation history: %v", err)
	}
}
