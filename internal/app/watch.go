package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProcessRequestFile handles one request file dropped into the watch
// folder: each non-empty, non-comment line is a video URL or ID and gets
// the full summarize treatment. The file moves to the archived folder
// afterwards so it is not picked up again.
func (a *App) ProcessRequestFile(ctx context.Context, path string) error {
	a.logger.Info(ctx, "Processing request file: %s", path)

	inputs, err := readRequestFile(path)
	if err != nil {
		return fmt.Errorf("read request file: %w", err)
	}
	if len(inputs) == 0 {
		a.logger.Warn(ctx, "Request file %s contains no video references", path)
	}

	var failed int
	for _, input := range inputs {
		res, err := a.Summarize(ctx, input)
		if err != nil {
			a.logger.Error(ctx, "Failed to summarize %s: %v", input, err)
			failed++
			continue
		}
		a.logger.Info(ctx, "Summarized %s -> %s", res.VideoID, res.SummaryFile)
	}

	if err := a.archiveRequestFile(ctx, path); err != nil {
		a.logger.Warn(ctx, "Failed to archive request file %s: %v", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d request(s) failed", failed, len(inputs))
	}
	return nil
}

func readRequestFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}

func (a *App) archiveRequestFile(ctx context.Context, path string) error {
	if err := os.MkdirAll(a.cfg.Paths.Archived, 0755); err != nil {
		return err
	}
	dest := filepath.Join(a.cfg.Paths.Archived, filepath.Base(path))
	return os.Rename(path, dest)
}
