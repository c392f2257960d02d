package hapleg

import (
	"log"

	"cloud.google.com/go/storage"
)

// DefaultProgressInterval is how many haplotype lines are processed between
// progress reports.
const DefaultProgressInterval = 1000

type options struct {
	client           *storage.Client
	logger           *log.Logger
	progressInterval int
}

// Option configures the readers and the filter.
type Option func(*options)

// WithStorageClient permits gs:// paths to be read with the given client.
// Without it, only local paths can be opened.
func WithStorageClient(client *storage.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithLogger sends diagnostics and progress to logger instead of the standard
// logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithProgressInterval sets how often progress is reported. Values below 1
// disable progress reporting.
func WithProgressInterval(n int) Option {
	return func(o *options) {
		o.progressInterval = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:           log.Default(),
		progressInterval: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	return o
}
