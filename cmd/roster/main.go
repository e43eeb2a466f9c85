package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/codex-employee-roster/internal/adapters/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env は任意。ROSTER_CONFIG などを上書きできる
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, cli.Options{})
	if err == nil {
		return
	}
	if !errors.Is(err, cli.ErrOperationFailed) {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(1)
}
