package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/heartmarshall/bookflow-backend/internal/app"
	"github.com/heartmarshall/bookflow-backend/internal/config"
)

type globalOptions struct {
	dsn string
}

// resolveDSN prefers the --dsn flag, then DATABASE_DSN from the
// environment or a .env file.
func (o *globalOptions) resolveDSN() (string, error) {
	if o.dsn != "" {
		return o.dsn, nil
	}
	_ = godotenv.Load()
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn, nil
	}
	return "", errors.New("database DSN not set: pass --dsn or set DATABASE_DSN")
}

func (o *globalOptions) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn, err := o.resolveDSN()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func cliLogger(cmd *cobra.Command) *slog.Logger {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return app.NewCLILogger(cmd.ErrOrStderr(), config.LogConfig{Level: level, Format: "text"})
}

// readSecret reads a password without echo from a terminal, or one line
// from any other input.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
