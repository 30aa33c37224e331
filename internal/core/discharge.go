package core

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"vet-discharge-notes/internal/llm"
)

// ErrEmptyNote is returned when the model answers successfully but with no
// text.  It is a failure, not an empty success.
var ErrEmptyNote = errors.New("generated discharge note is empty")

// DischargeService turns a consultation document into a discharge note.  It
// runs extraction, summarization and prompt assembly locally and makes a
// single call to the LLM.
type DischargeService struct {
	LLM llm.Client
	Log zerolog.Logger
}

// NewDischargeService constructs a DischargeService with the given client.
func NewDischargeService(client llm.Client, logger zerolog.Logger) *DischargeService {
	return &DischargeService{LLM: client, Log: logger}
}

// Generate builds the prompt for doc and returns the trimmed note.  Upstream
// errors are returned as-is; an empty completion yields ErrEmptyNote.
func (s *DischargeService) Generate(ctx context.Context, doc any) (string, error) {
	rec := Extract(doc)
	prompt := AssemblePrompt(rec)

	s.Log.Info().Str("patient", rec.Patient.Name).Msg("sending consultation summary to LLM")
	s.Log.Debug().Str("user_prompt", prompt.UserContent).Msg("user prompt")

	raw, err := s.LLM.Complete(ctx, prompt.SystemInstruction, prompt.UserContent)
	if err != nil {
		return "", err
	}
	s.Log.Debug().Str("raw_content", raw).Msg("raw completion")

	note := strings.TrimSpace(raw)
	if note == "" {
		return "", ErrEmptyNote
	}
	return note, nil
}
