package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robbie-wasabi/youtext/internal/app"
	"github.com/robbie-wasabi/youtext/internal/artifact"
	"github.com/robbie-wasabi/youtext/internal/chunker"
	"github.com/robbie-wasabi/youtext/internal/completion"
	"github.com/robbie-wasabi/youtext/internal/config"
	"github.com/robbie-wasabi/youtext/internal/logger"
	"github.com/robbie-wasabi/youtext/internal/summarizer"
	"github.com/robbie-wasabi/youtext/internal/tokenizer"
	"github.com/robbie-wasabi/youtext/internal/transcript"
	"github.com/robbie-wasabi/youtext/internal/watcher"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]

	a, err := buildApp(cfg, log, command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "summ":
		res, err := a.Summarize(ctx, inputArg(command))
		if err != nil {
			fail(err)
		}
		fmt.Printf("Summary:\n%s\n", res.Summary)
		fmt.Printf("Summary saved to: %s\n", res.SummaryFile)

	case "script":
		res, err := a.Script(ctx, inputArg(command))
		if err != nil {
			fail(err)
		}
		fmt.Printf("Transcript:\n%s\n", res.Transcript)
		fmt.Printf("Transcript saved to: %s\n", res.TranscriptFile)

	case "outline":
		res, err := a.Outline(ctx, inputArg(command))
		if err != nil {
			fail(err)
		}
		fmt.Printf("Outline:\n%s\n", res.Outline)
		fmt.Printf("Outline saved to: %s\n", res.OutlineFile)

	case "watch":
		if err := runWatch(ctx, cfg, log, a); err != nil {
			fail(err)
		}

	default:
		printUsage()
		os.Exit(1)
	}
}

// buildApp wires the pipeline. The completion client is only constructed
// for commands that talk to the completion service, so fetching a bare
// transcript needs no API credential.
func buildApp(cfg *config.Config, log logger.Logger, command string) (*app.App, error) {
	model := cfg.OpenAI.Model
	if cfg.Provider == "gemini" {
		model = cfg.Gemini.Model
	}

	codec, err := tokenizer.ForModel(model)
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}

	fetcher := transcript.New(nil, cfg.Transcript.Languages, log)
	writer := artifact.New(cfg.Paths.Output)

	var opts []app.Option
	switch command {
	case "summ", "outline", "watch":
		completer, err := completion.New(cfg, log)
		if err != nil {
			return nil, err
		}
		summ := summarizer.New(completer, chunker.New(codec, cfg.Summary.MaxTokens), codec, log)
		opts = append(opts, app.WithSummarizer(summ))
	}

	return app.New(cfg, log, fetcher, codec, writer, opts...), nil
}

// runWatch monitors the input folder for request files until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger, a *app.App) error {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived directory: %w", err)
	}

	w, err := watcher.New(cfg.Paths.Input, a.ProcessRequestFile, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for request files. Press Ctrl+C to stop", cfg.Paths.Input)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}
}

func inputArg(command string) string {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Error: %s requires a YouTube video URL or ID\n", command)
		os.Exit(1)
	}
	return os.Args[2]
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("YouTube video transcript and summary tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  youtext summ <url-or-id>     Summarize a YouTube video")
	fmt.Println("  youtext script <url-or-id>   Fetch the transcript of a YouTube video")
	fmt.Println("  youtext outline <url-or-id>  Generate an outline of the video content")
	fmt.Println("  youtext watch                Process request files dropped into the input folder")
	fmt.Println()
	fmt.Println("Configuration is read from config.yaml and environment variables")
	fmt.Println("(OPENAI_API_KEY, GEMINI_API_KEYS, YOUTEXT_PROVIDER, YOUTEXT_OUTPUT).")
}
