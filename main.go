// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
PixivGW is a typed JSON gateway over the pixiv mobile app API.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivgw/pixivgw/config"
	"codeberg.org/pixivgw/pixivgw/core"
	"codeberg.org/pixivgw/pixivgw/core/cache"
	"codeberg.org/pixivgw/pixivgw/core/tokenprovider"
	"codeberg.org/pixivgw/pixivgw/server/router"
	"codeberg.org/pixivgw/pixivgw/server/routes"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 45 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	configFilePath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	if err := config.Setup(*configFilePath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	config.Global.SetupLogger()

	var memo core.Memoizer

	if config.Global.Cache.Enabled {
		store, err := cache.New(config.Global.Cache.Size)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}

		memo = store

		log.Info().Int("size", config.Global.Cache.Size).Msg("Response cache enabled")
	}

	tokens := tokenprovider.New(config.Global.Basic.RefreshToken)
	routes.Setup(core.NewGateway(tokens, memo))

	router := router.NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	// Channel to listen for server errors
	serverErrors := make(chan error, 1)

	go func() {
		listener, err := chooseListener()
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)

			return
		}

		serverErrors <- server.Serve(listener)
	}()

	// Block until a shutdown signal or a server error is received
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case s := <-quit:
		log.Info().Str("signal", s.String()).Msg("Shutdown signal received")
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)

		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	log.Info().Msg("Server exited gracefully")

	return nil
}

func chooseListener() (net.Listener, error) {
	addr := config.Global.Addr()

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	log.Info().
		Str("address", addr).
		Str("url", fmt.Sprintf("http://localhost:%v/api/pixiv/rank", port)).
		Msg("Listening on address")

	return tcpListener, nil
}
