package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/innovatehub/collab/internal/client/cli"
	"github.com/innovatehub/collab/internal/client/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
