package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/meetwonka/authinfo/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.LoadConfig()

	if err := app.Run(ctx, cfg, app.NewLogger(cfg), os.Stdout); err != nil {
		log.Fatalf("authinfo: %v", err)
	}
}
