package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// ListDatabasesInput is the input schema for list_databases.
type ListDatabasesInput struct{}

// ListDatabasesOutput is the output schema for list_databases.
type ListDatabasesOutput struct {
	Databases []string `json:"databases"`
	Count     int      `json:"count"`
}

// DescribeDatabaseInput is the input schema for describe_database.
type DescribeDatabaseInput struct {
	Database string `json:"database" jsonschema:"the database name, as returned by list_databases"`
}

// GenerateQuestionsInput is the input schema for generate_questions.
type GenerateQuestionsInput struct {
	Database      string `json:"database" jsonschema:"the database name"`
	Difficulty    string `json:"difficulty,omitempty" jsonschema:"difficulty filter (beginner, easy, medium, hard)"`
	DataStructure string `json:"data_structure,omitempty" jsonschema:"data structure filter"`
	Pattern       string `json:"pattern,omitempty" jsonschema:"algorithm pattern filter"`
	Count         int    `json:"count,omitempty" jsonschema:"number of questions (default 1)"`
	Format        string `json:"format,omitempty" jsonschema:"render format: markdown or json (default markdown)"`
}

// GenerateQuestionsOutput is the output schema for generate_questions.
type GenerateQuestionsOutput struct {
	Questions []domain.Question `json:"questions"`
	Rendered  []string          `json:"rendered"`
	Count     int               `json:"count"`
}

// GenerateProgressionInput is the input schema for generate_progression.
type GenerateProgressionInput struct {
	Database        string `json:"database" jsonschema:"the database name"`
	StartDifficulty string `json:"start_difficulty,omitempty" jsonschema:"lowest level to include (default beginner)"`
	CountPerLevel   int    `json:"count_per_level,omitempty" jsonschema:"questions per level (default 2)"`
}

// GenerateProgressionOutput is the output schema for generate_progression.
type GenerateProgressionOutput struct {
	Levels []domain.ProgressionLevel `json:"levels"`
	Count  int                       `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_databases",
		Description: "List the loaded question databases",
	}, s.handleListDatabases)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "describe_database",
		Description: "Describe a question database: difficulties, data structures and size",
	}, s.handleDescribeDatabase)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_questions",
		Description: "Draw random practice questions from a database, optionally filtered",
	}, s.handleGenerateQuestions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_progression",
		Description: "Draw questions per difficulty level, from the start level upward",
	}, s.handleGenerateProgression)
}

func (s *Server) handleListDatabases(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDatabasesInput,
) (*mcp.CallToolResult, ListDatabasesOutput, error) {
	names, err := s.ports.Generator.ListDatabases(ctx)
	if err != nil {
		return nil, ListDatabasesOutput{}, err
	}
	if names == nil {
		names = []string{}
	}
	return nil, ListDatabasesOutput{Databases: names, Count: len(names)}, nil
}

func (s *Server) handleDescribeDatabase(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DescribeDatabaseInput,
) (*mcp.CallToolResult, domain.DatabaseInfo, error) {
	info, err := s.ports.Generator.Describe(ctx, input.Database)
	if err != nil {
		return nil, domain.DatabaseInfo{}, err
	}
	return nil, *info, nil
}

func (s *Server) handleGenerateQuestions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateQuestionsInput,
) (*mcp.CallToolResult, GenerateQuestionsOutput, error) {
	criteria := domain.Criteria{
		Difficulty:    input.Difficulty,
		DataStructure: input.DataStructure,
		Pattern:       input.Pattern,
		Count:         input.Count,
	}
	if criteria.Count <= 0 {
		criteria.Count = 1
	}

	output := GenerateQuestionsOutput{Rendered: []string{}}

	if s.ports.Session == nil {
		questions, err := s.ports.Generator.Generate(ctx, input.Database, criteria)
		if err != nil {
			return nil, GenerateQuestionsOutput{}, err
		}
		output.Questions = questions
		output.Count = len(questions)
		return nil, output, nil
	}

	format := domain.FormatMarkdown
	if input.Format != "" {
		parsed, err := domain.ParseOutputFormat(input.Format)
		if err != nil {
			return nil, GenerateQuestionsOutput{}, err
		}
		format = parsed
	}

	result, err := s.ports.Session.Run(ctx, driving.SessionRequest{
		Database: input.Database,
		Criteria: criteria,
		Format:   format,
	})
	if err != nil {
		return nil, GenerateQuestionsOutput{}, err
	}

	output.Questions = result.Questions
	output.Rendered = result.Rendered
	output.Count = len(result.Questions)
	return nil, output, nil
}

func (s *Server) handleGenerateProgression(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateProgressionInput,
) (*mcp.CallToolResult, GenerateProgressionOutput, error) {
	opts := domain.DefaultProgressionOptions()
	if input.StartDifficulty != "" {
		d, err := domain.ParseDifficulty(input.StartDifficulty)
		if err != nil {
			return nil, GenerateProgressionOutput{}, err
		}
		opts.StartDifficulty = d
	}
	if input.CountPerLevel > 0 {
		opts.CountPerLevel = input.CountPerLevel
	}

	progression, err := s.ports.Generator.GenerateProgression(ctx, input.Database, opts)
	if err != nil {
		return nil, GenerateProgressionOutput{}, err
	}

	output := GenerateProgressionOutput{Levels: progression.Levels}
	if output.Levels == nil {
		output.Levels = []domain.ProgressionLevel{}
	}
	for _, level := range output.Levels {
		output.Count += len(level.Questions)
	}
	return nil, output, nil
}
