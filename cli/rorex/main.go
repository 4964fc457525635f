package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"

	"github.com/arshkumarsingh/rorex/cli/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "rorex",
		Level: hclog.Info,
	})

	if err := cmd.Execute(&cmd.Config{Ctx: ctx, Logger: logger}); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
