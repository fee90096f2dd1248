package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// DefineInput is the input schema for the define tool.
type DefineInput struct {
	Word string `json:"word" jsonschema:"the word to look up, sent to the dictionary as given"`
}

// DefineOutput is the output schema for the define tool.
type DefineOutput struct {
	Word    string                  `json:"word"`
	Outcome string                  `json:"outcome" jsonschema:"one of validation_error, service_error, transport_error or success"`
	Error   string                  `json:"error,omitempty"`
	Entry   *domain.DictionaryEntry `json:"entry,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "define",
		Description: "Look up an English word and return its phonetics, meanings and definitions",
	}, s.handleDefine)
}

// handleDefine handles the define tool invocation.
// Lookup failures are reported in the output, not as tool errors.
func (s *Server) handleDefine(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DefineInput,
) (*mcp.CallToolResult, DefineOutput, error) {
	controller := s.ports.NewController()
	controller.SetQuery(input.Word)
	state := controller.Search(ctx)

	return nil, DefineOutput{
		Word:    input.Word,
		Outcome: state.Outcome().String(),
		Error:   state.Message(),
		Entry:   schemaEntry(state.Entry()),
	}, nil
}

// schemaEntry copies e with every nil list replaced by an empty one.
// The output schema types the lists as arrays, which rejects null.
func schemaEntry(e *domain.DictionaryEntry) *domain.DictionaryEntry {
	if e == nil {
		return nil
	}

	out := domain.DictionaryEntry{
		Word:      e.Word,
		Phonetics: append([]domain.Phonetic{}, e.Phonetics...),
		Meanings:  make([]domain.Meaning, 0, len(e.Meanings)),
	}
	for _, m := range e.Meanings {
		defs := make([]domain.Definition, 0, len(m.Definitions))
		for _, d := range m.Definitions {
			d.Synonyms = append([]string{}, d.Synonyms...)
			d.Antonyms = append([]string{}, d.Antonyms...)
			defs = append(defs, d)
		}
		out.Meanings = append(out.Meanings, domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  defs,
		})
	}
	return &out
}
