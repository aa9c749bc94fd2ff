package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rift-server/internal/engine"
	"rift-server/internal/infrastructure/storage"
	"rift-server/internal/network"
	redisclient "rift-server/internal/redis"
	"rift-server/internal/repositories/results"
	"rift-server/internal/server"
	"rift-server/internal/version"
	"rift-server/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	servePort       string
	serveRedisAddr  string
	serveArchiveDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the spectator HTTP/WebSocket server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", envOr("RIFT_PORT", "8080"), "HTTP port")
	serveCmd.Flags().StringVar(&serveRedisAddr, "redis", os.Getenv("RIFT_REDIS_ADDR"), "Redis address for match results (empty: in-memory)")
	serveCmd.Flags().StringVar(&serveArchiveDir, "archive-dir", "", "Directory for .rfma archives of finished matches")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("Starting rift-server...")
	logger.Log.Info(version.String())

	repo, err := buildResults(ctx)
	if err != nil {
		return err
	}

	cfg := engine.ServiceConfig{
		Match:   engine.NewConfig(),
		Hub:     network.NewBroadcaster(),
		Results: repo,
	}
	if serveArchiveDir != "" {
		archive, err := storage.NewArchiveService(serveArchiveDir)
		if err != nil {
			return err
		}
		cfg.Archive = archive
	}

	gameService := engine.NewService(cfg)
	defer gameService.Shutdown()

	srv := server.New(gameService, servePort)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Log.Info("Done.")
	return nil
}

func buildResults(ctx context.Context) (results.Repository, error) {
	if serveRedisAddr == "" {
		logger.Log.Warn("RIFT_REDIS_ADDR is not set, match results are kept in memory")
		return results.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(serveRedisAddr, &redisclient.Options{PoolSize: 10})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis %s is unreachable: %w", serveRedisAddr, err)
	}
	logger.Log.WithField("addr", serveRedisAddr).Info("Match results stored in Redis")

	return results.NewRedis(&results.RedisConfig{Client: client})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
