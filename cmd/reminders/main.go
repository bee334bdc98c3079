// reminders is a one-shot bridge to a reminders store. It reads one JSON
// request {"operation": ..., "params": {...}} on stdin and writes one JSON
// object on stdout. Logs go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"nanoclaw-bridges/config"
	"nanoclaw-bridges/internal/reminder"
	"nanoclaw-bridges/internal/reminder/delivery/stdio"
	"nanoclaw-bridges/internal/reminder/repository"
	fileRepo "nanoclaw-bridges/internal/reminder/repository/file"
	gtasksRepo "nanoclaw-bridges/internal/reminder/repository/gtasks"
	redisRepo "nanoclaw-bridges/internal/reminder/repository/redis"
	"nanoclaw-bridges/internal/reminder/usecase"
	"nanoclaw-bridges/pkg/gtasks"
	"nanoclaw-bridges/pkg/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run handles one invocation. Every failure after help is written to stdout
// as the single {"error": ...} line.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var configPath, backend string

	flagSet := pflag.NewFlagSet("reminders", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)
	flagSet.StringVar(&configPath, "config", "", "path to config.yaml (default: search ./config, ., /etc/nanoclaw/)")
	flagSet.StringVar(&backend, "backend", "", "reminders store: file, redis or gtasks (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return stdio.WriteError(stdout, err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	// 1. Configuration
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return stdio.WriteError(stdout, fmt.Errorf("load config: %w", err))
	}
	if backend != "" {
		cfg.Reminders.Backend = strings.ToLower(backend)
	}
	if err := cfg.ValidateReminders(); err != nil {
		return stdio.WriteError(stdout, fmt.Errorf("load config: %w", err))
	}

	// 2. Logger (stderr only; stdout carries the response)
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Store
	store, closeStore, err := newStore(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to open reminders store: %v", err)
		return stdio.WriteError(stdout, reminder.ErrAccessDenied)
	}
	defer closeStore()
	logger.Debugf(ctx, "Reminders backend: %s", cfg.Reminders.Backend)

	// 4. Use case + stdio delivery
	uc := usecase.New(logger, store, reminder.Config{
		DefaultList:   cfg.Reminders.DefaultList,
		AccessTimeout: cfg.Reminders.AccessTimeout,
		FetchTimeout:  cfg.Reminders.FetchTimeout,
	})
	return stdio.New(logger, uc).Serve(ctx, stdin, stdout)
}

func newStore(ctx context.Context, logger log.Logger, cfg *config.Config) (repository.Store, func(), error) {
	noop := func() {}
	rc := cfg.Reminders

	switch rc.Backend {
	case config.BackendFile:
		return fileRepo.New(logger, fileRepo.Options{
			Path:        rc.File.Path,
			DefaultList: rc.DefaultList,
		}), noop, nil

	case config.BackendRedis:
		if rc.Redis.Addr == "" {
			return nil, noop, fmt.Errorf("reminders.redis.addr is required for the redis backend")
		}
		client := redisRepo.NewClient(rc.Redis.Addr, rc.Redis.Password, rc.Redis.DB)
		store := redisRepo.New(logger, client, redisRepo.Options{
			Prefix:      rc.Redis.Prefix,
			DefaultList: rc.DefaultList,
		})
		return store, func() { client.Close() }, nil

	case config.BackendGTasks:
		if rc.GoogleTasks.CredentialsPath == "" {
			return nil, noop, fmt.Errorf("reminders.google_tasks.credentials_path is required for the gtasks backend")
		}
		client, err := gtasks.NewClientFromCredentialsFile(ctx, rc.GoogleTasks.CredentialsPath, rc.GoogleTasks.TokenPath)
		if err != nil {
			logger.Warn(ctx, "→ Run `go run scripts/gtasks-auth/main.go` to generate token.json")
			return nil, noop, fmt.Errorf("google tasks: %w", err)
		}
		store, err := gtasksRepo.New(logger, client)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}
	return nil, noop, config.ErrInvalidBackend
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: reminders [flags] < request.json

Reads {"operation": "<name>", "params": {...}} from stdin and prints one JSON
object to stdout. Exit status is 0 on success and 1 on any error.

Operations: list_lists, list_reminders, create_reminder, complete_reminder,
update_reminder, snapshot

Flags:
%s`, flagSet.FlagUsages())
}
