package core

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-discharge-notes/internal/llm"
)

type stubLLM struct {
	reply  string
	err    error
	system string
	user   string
	calls  int
}

func (s *stubLLM) Complete(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.system, s.user = system, user
	return s.reply, s.err
}

func TestGenerate_TrimsNote(t *testing.T) {
	stub := &stubLLM{reply: "\n  Dear owner of Milo...  \n"}
	svc := NewDischargeService(stub, zerolog.Nop())

	note, err := svc.Generate(context.Background(), decode(t, miloRecord))
	require.NoError(t, err)
	assert.Equal(t, "Dear owner of Milo...", note)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, SystemPrompt, stub.system)
	assert.Contains(t, stub.user, "Diagnostics performed: X-ray.")
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	for _, reply := range []string{"", "   \n\t"} {
		svc := NewDischargeService(&stubLLM{reply: reply}, zerolog.Nop())
		note, err := svc.Generate(context.Background(), decode(t, miloRecord))
		require.ErrorIs(t, err, ErrEmptyNote)
		assert.Empty(t, note)
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	stub := &stubLLM{err: llm.ErrGenerationFailed}
	svc := NewDischargeService(stub, zerolog.Nop())

	_, err := svc.Generate(context.Background(), decode(t, miloRecord))
	require.ErrorIs(t, err, llm.ErrGenerationFailed)
	assert.Equal(t, 1, stub.calls)
}
