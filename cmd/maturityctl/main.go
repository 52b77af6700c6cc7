package main

import (
	"fmt"
	"os"

	"maturity-tracker-backend/internal/cli"
	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel)

	if err := cli.NewRootCmd(cli.NewEnv(cfg)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
