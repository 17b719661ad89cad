package blockgraph

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/blockgraph/blockgraph.go/pkg/constants"
	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/store/detail"
)

const (
	EnvEndpoint    = "BLOCKGRAPH_ENDPOINT"
	EnvTimeout     = "BLOCKGRAPH_TIMEOUT"
	EnvLogLevel    = "BLOCKGRAPH_LOG_LEVEL"
	EnvLogFile     = "BLOCKGRAPH_LOG_FILE"
	EnvDefaultName = "BLOCKGRAPH_DEFAULT_NAME"
	EnvDeletedName = "BLOCKGRAPH_DELETED_NAME"

	DefaultEndpoint = "ws://127.0.0.1:31007"
)

// Config holds what a Session is built from.
type Config struct {
	URL     *url.URL
	Timeout time.Duration
	Logger  logger.Logger

	// DefaultName and DeletedName are the placeholder names the detail
	// store resolves for unnamed and deleted objects.
	DefaultName string
	DeletedName string

	// closer releases the log sink opened by ConfigFromEnv, if any.
	closer io.Closer
}

func NewConfig(u *url.URL) *Config {
	return &Config{
		URL:         u,
		Timeout:     constants.DefaultTimeout,
		Logger:      logger.Discard(),
		DefaultName: detail.DefaultName,
		DeletedName: detail.DeletedName,
	}
}

// ConfigFromEnv reads the BLOCKGRAPH_* variables. Logs go to the file named
// by BLOCKGRAPH_LOG_FILE through zerolog, or as JSON to stderr through slog.
func ConfigFromEnv() (*Config, error) {
	u, err := url.ParseRequestURI(GetEnvOrDefault(EnvEndpoint, DefaultEndpoint))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvEndpoint, err)
	}

	conf := NewConfig(u)

	timeout, err := time.ParseDuration(GetEnvOrDefault(EnvTimeout, constants.DefaultTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvTimeout, err)
	}
	conf.Timeout = timeout

	conf.DefaultName = GetEnvOrDefault(EnvDefaultName, detail.DefaultName)
	conf.DeletedName = GetEnvOrDefault(EnvDeletedName, detail.DeletedName)

	level := GetEnvOrDefault(EnvLogLevel, "info")
	if path := os.Getenv(EnvLogFile); path != "" {
		logData, err := logger.Build().FromPath(path).Level(level).Make()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogFile, err)
		}
		conf.Logger = logData
		conf.closer = logData
	} else {
		conf.Logger = logger.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logger.ParseLevel(level),
		}))
	}

	return conf, nil
}

func (c *Config) detailOptions() []detail.Option {
	return []detail.Option{
		detail.WithDefaultName(c.DefaultName),
		detail.WithDeletedName(c.DeletedName),
		detail.WithLogger(c.Logger),
	}
}

// Close releases the log file opened by ConfigFromEnv, if any.
func (c *Config) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
