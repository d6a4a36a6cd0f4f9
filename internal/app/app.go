package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/robbie-wasabi/youtext/internal/artifact"
	"github.com/robbie-wasabi/youtext/internal/config"
	"github.com/robbie-wasabi/youtext/internal/logger"
	"github.com/robbie-wasabi/youtext/internal/summarizer"
	"github.com/robbie-wasabi/youtext/internal/tokenizer"
	"github.com/robbie-wasabi/youtext/internal/transcript"
	"github.com/robbie-wasabi/youtext/internal/videoid"
)

// Result carries everything a completed run produced.
type Result struct {
	VideoID          string
	Transcript       string
	TranscriptTokens int
	Summary          string
	Outline          string
	TranscriptFile   string
	SummaryFile      string
	OutlineFile      string
}

// App orchestrates the fetch → derive → write pipeline for one run.
// Every operation is sequential and synchronous; each run is independent.
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	fetcher    transcript.Fetcher
	codec      tokenizer.Codec
	writer     artifact.Writer
	summarizer summarizer.Summarizer
}

// Option customizes App creation.
type Option func(*App)

// WithSummarizer attaches the completion-backed summarizer. Commands that
// never talk to the completion service (script) can skip it.
func WithSummarizer(s summarizer.Summarizer) Option {
	return func(a *App) {
		a.summarizer = s
	}
}

// New creates an App from its collaborators.
func New(cfg *config.Config, log logger.Logger, fetcher transcript.Fetcher, codec tokenizer.Codec, writer artifact.Writer, opts ...Option) *App {
	a := &App{
		cfg:     cfg,
		logger:  log,
		fetcher: fetcher,
		codec:   codec,
		writer:  writer,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var errNoSummarizer = errors.New("completion service not configured")

// Summarize fetches the transcript for input (URL or bare ID), reduces it
// to a summary, and writes both transcript and summary artifacts.
func (a *App) Summarize(ctx context.Context, input string) (*Result, error) {
	if a.summarizer == nil {
		return nil, errNoSummarizer
	}

	id := videoid.Extract(input)
	a.logger.Info(ctx, "Processing video: %s", id)

	text, err := a.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}

	tokens := a.codec.Count(text)
	a.logger.Info(ctx, "Fetched transcript with %d tokens", tokens)

	summary, err := a.summarizer.Summarize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	transcriptFile, err := a.writer.Write(id, artifact.SuffixTranscript, text)
	if err != nil {
		return nil, fmt.Errorf("save transcript: %w", err)
	}
	a.logger.Info(ctx, "Transcript saved to: %s", transcriptFile)

	summaryFile, err := a.writer.Write(id, artifact.SuffixSummary, summary)
	if err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}
	a.logger.Info(ctx, "Summary saved to: %s", summaryFile)

	return &Result{
		VideoID:          id,
		Transcript:       text,
		TranscriptTokens: tokens,
		Summary:          summary,
		TranscriptFile:   transcriptFile,
		SummaryFile:      summaryFile,
	}, nil
}

// Script fetches the transcript and writes it as the only artifact.
func (a *App) Script(ctx context.Context, input string) (*Result, error) {
	id := videoid.Extract(input)
	a.logger.Info(ctx, "Processing video: %s", id)

	text, err := a.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}

	transcriptFile, err := a.writer.Write(id, artifact.SuffixTranscript, text)
	if err != nil {
		return nil, fmt.Errorf("save transcript: %w", err)
	}
	a.logger.Info(ctx, "Transcript saved to: %s", transcriptFile)

	return &Result{
		VideoID:          id,
		Transcript:       text,
		TranscriptTokens: a.codec.Count(text),
		TranscriptFile:   transcriptFile,
	}, nil
}

// Outline fetches the transcript, generates a structured outline in one
// completion call, and writes the outline artifact.
func (a *App) Outline(ctx context.Context, input string) (*Result, error) {
	if a.summarizer == nil {
		return nil, errNoSummarizer
	}

	id := videoid.Extract(input)
	a.logger.Info(ctx, "Processing video: %s", id)

	text, err := a.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}

	outline, err := a.summarizer.Outline(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}

	outlineFile, err := a.writer.Write(id, artifact.SuffixOutline, outline)
	if err != nil {
		return nil, fmt.Errorf("save outline: %w", err)
	}
	a.logger.Info(ctx, "Outline saved to: %s", outlineFile)

	return &Result{
		VideoID:          id,
		Transcript:       text,
		TranscriptTokens: a.codec.Count(text),
		Outline:          outline,
		OutlineFile:      outlineFile,
	}, nil
}
