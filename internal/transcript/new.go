package transcript

import (
	"net/http"
	"time"

	"github.com/robbie-wasabi/youtext/internal/logger"
)

type implFetcher struct {
	client    *http.Client
	languages []string
	logger    logger.Logger
}

// New creates a Fetcher using the Innertube captions API. languages is
// the caption-track preference order; a nil client gets a 30s-timeout
// default.
func New(client *http.Client, languages []string, log logger.Logger) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &implFetcher{
		client:    client,
		languages: languages,
		logger:    log,
	}
}
