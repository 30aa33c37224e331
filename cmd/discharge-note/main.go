package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vet-discharge-notes/internal/config"
	"vet-discharge-notes/internal/core"
	"vet-discharge-notes/internal/llm"
	"vet-discharge-notes/internal/logging"
	"vet-discharge-notes/internal/record"
	"vet-discharge-notes/pkg"
)

// app holds the collaborators the command needs.  Tests swap the config
// loader and the LLM client.
type app struct {
	loadConfig func() (*config.Config, error)
	newClient  func(*config.Config, zerolog.Logger) llm.Client
	stdout     io.Writer
	stderr     io.Writer
}

func main() {
	a := &app{
		loadConfig: config.Load,
		newClient: func(cfg *config.Config, logger zerolog.Logger) llm.Client {
			return llm.NewOpenAIClient(cfg, logger)
		},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "discharge-note <consultation.json>",
		Short:         "Generate an owner-facing discharge note from a veterinary consultation record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0])
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd
}

// run executes one invocation.  Nothing is written to stdout unless a note
// was generated.
func (a *app) run(ctx context.Context, path string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		boot := logging.New(a.stderr, "info", "console")
		boot.Error().Err(err).Msg("configuration error")
		return err
	}
	logger := logging.New(a.stderr, cfg.LogLevel, cfg.LogFormat)
	logger.Info().Str("api_key", cfg.MaskedAPIKey()).Msg("OpenAI API key loaded")

	logger.Info().Str("path", path).Msg("loading consultation record")
	doc, err := record.Load(path)
	if err != nil {
		switch {
		case errors.Is(err, record.ErrNotFound):
			logger.Error().Err(err).Msg("input file not found")
		case errors.Is(err, record.ErrInvalidJSON):
			logger.Error().Err(err).Msg("input file is not valid JSON")
		default:
			logger.Error().Err(err).Msg("could not read input file")
		}
		return err
	}
	logger.Debug().Interface("record", doc).Msg("loaded consultation record")

	svc := core.NewDischargeService(a.newClient(cfg, logger), logger)
	note, err := svc.Generate(ctx, doc)
	if err != nil {
		if errors.Is(err, core.ErrEmptyNote) {
			logger.Warn().Msg("generated note is empty")
		} else {
			logger.Error().Err(err).Msg("failed to generate discharge note")
		}
		return err
	}
	logger.Info().Msg("discharge note generated successfully")
	logger.Debug().Str("note", note).Msg("generated discharge note")

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pkg.DischargeNoteResponse{DischargeNote: note}); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := out.WriteTo(a.stdout); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info().Msg("finished")
	return nil
}
