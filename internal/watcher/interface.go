package watcher

import "context"

// Watcher monitors a drop folder for new request files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one request file.
type EventHandler func(ctx context.Context, filePath string) error
