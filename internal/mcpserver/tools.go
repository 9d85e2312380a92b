package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/guu8hc/ecuckit/internal/discovery"
	"github.com/guu8hc/ecuckit/internal/export"
	"github.com/guu8hc/ecuckit/internal/search"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_precise_time",
		mcp.WithDescription("Get the current local time with nanosecond precision."),
	), s.handlePreciseTime)

	s.mcp.AddTool(mcp.NewTool("get_generic_knowledge_from_keyword",
		mcp.WithDescription(
			"Get information such as parameter definition, definition path, "+
				"and multiplicity for a given keyword from parameter definition files. "+
				"Returns ranked matches as JSON."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("The search term or identifier to find definitions for."),
		),
	), s.handleKnowledge)

	s.mcp.AddTool(mcp.NewTool("get_precise_definition_path_using_fuzzy",
		mcp.WithDescription(
			"Get the definition path for a given keyword using subsequence "+
				"fuzzy matching. Returns the single closest match."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("The search term or identifier to find definitions for."),
		),
	), s.handleFuzzyPath)

	s.mcp.AddTool(mcp.NewTool("get_precise_definition_path_using_levenshtein",
		mcp.WithDescription(
			"Get the definition path for a given keyword using Levenshtein "+
				"similarity with a configurable cutoff. Returns the single "+
				"closest match."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("The search term or identifier to find definitions for."),
		),
	), s.handleLevenshteinPath)
}

func (s *Server) handlePreciseTime(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(time.Now().Format(time.RFC3339Nano)), nil
}

func (s *Server) handleKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	engine, err := search.NewEngine(s.cfg.Search.Engine, s.cfg.Search.Cutoff)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := s.documents()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovering definitions: %v", err)), nil
	}

	matches := search.NewSearcher(engine, s.cfg.Search.Limit).Search(files, keyword)
	s.log.Debug("keyword lookup",
		"keyword", keyword,
		"engine", engine.Name(),
		"files", len(files),
		"matches", len(matches),
	)
	return marshalMatches(matches)
}

func (s *Server) handleFuzzyPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.bestPath(request, search.FuzzyEngine{})
}

func (s *Server) handleLevenshteinPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.bestPath(request, search.LevenshteinEngine{Cutoff: s.cfg.Search.Cutoff})
}

func (s *Server) bestPath(request mcp.CallToolRequest, engine search.Engine) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := s.documents()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovering definitions: %v", err)), nil
	}

	best, ok := search.NewSearcher(engine, s.cfg.Search.Limit).Best(files, keyword)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no definition path close to %q", keyword)), nil
	}
	s.log.Debug("path lookup",
		"keyword", keyword,
		"engine", engine.Name(),
		"path", best.Path,
	)

	out, err := export.Marshal(best)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// documents lists every definition and document under the discovery
// root. Discovery runs per call so new files show up without a restart.
func (s *Server) documents() ([]string, error) {
	return discovery.New(s.cfg.Discovery.Root).All()
}

func marshalMatches(matches []search.Match) (*mcp.CallToolResult, error) {
	if matches == nil {
		matches = []search.Match{}
	}
	out, err := export.Marshal(matches)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
