package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/meetwonka/authinfo/internal/auth"
	appdb "github.com/meetwonka/authinfo/internal/db"
	"github.com/meetwonka/authinfo/internal/domain"
)

const (
	OutputJSON   = "json"
	OutputHeader = "header"
)

type Config struct {
	DSN          string
	EventsTable  string
	Output       string
	RecordAction string
	LogLevel     slog.Level
}

func LoadConfig() Config {
	cfg := Config{
		DSN:          os.Getenv("DB_CONN"),
		EventsTable:  os.Getenv("ANALYTICS_TABLE"),
		Output:       strings.ToLower(os.Getenv("AUTHINFO_OUTPUT")),
		RecordAction: os.Getenv("AUTHINFO_RECORD_ACTION"),
	}

	if cfg.EventsTable == "" {
		cfg.EventsTable = appdb.DefaultEventsTable
	}
	if cfg.Output == "" {
		cfg.Output = OutputJSON
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			cfg.LogLevel = slog.LevelInfo
		}
	}
	return cfg
}

func NewLogger(cfg Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// Run writes the example auth info to out and, when a database and action
// are configured, records one analytics event for it.
func Run(ctx context.Context, cfg Config, logger *slog.Logger, out io.Writer) error {
	if logger == nil {
		logger = slog.Default()
	}

	example := auth.ExampleAuthInfo()
	if err := writeExample(out, cfg.Output, example); err != nil {
		return err
	}

	if cfg.DSN == "" || cfg.RecordAction == "" {
		return nil
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := appdb.NewEventRepository(pool, cfg.EventsTable)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	events := domain.NewLoggingEventService(logger, domain.NewEventService(repo))
	_, err = events.Record(ctx, domain.RecordEventInput{
		Action:   cfg.RecordAction,
		AuthInfo: &example.AuthInfo,
	})
	return err
}

func writeExample(out io.Writer, format string, example auth.AuthContext) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(example); err != nil {
			return fmt.Errorf("write example auth info: %w", err)
		}
		return nil
	case OutputHeader:
		header, err := auth.EncodeHeader(*example.AuthInfo.ClientPrincipal)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", auth.HeaderName, header); err != nil {
			return fmt.Errorf("write example header: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
