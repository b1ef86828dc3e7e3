package main

import (
	"context"
	"os"

	"github.com/ahmethakanbesel/crypto-price-api/cmd/cryptoprice/commands"
	"github.com/ahmethakanbesel/crypto-price-api/internal/config"
	"github.com/ahmethakanbesel/crypto-price-api/internal/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	commands.ExecuteContext(context.Background(), cfg)
}
