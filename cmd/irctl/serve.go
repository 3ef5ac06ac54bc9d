package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/irctl/internal/service"
	"github.com/rs/zerolog/log"
)

func runServe(args []string, e env) error {
	var common commonFlags
	fs := newFlagSet("serve", e, &common)
	addr := fs.StringP("addr", "a", "", "listen address (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := loadConfig(common)
	if err != nil {
		return err
	}
	if fs.Changed("addr") {
		cfg.Server.Addr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := service.New(cfg)
	if err := srv.Serve(ctx); err != nil {
		return err
	}
	log.Info().Str("id", srv.ID).Msg("codec service stopped")
	return nil
}
