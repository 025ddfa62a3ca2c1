// Package main runs the UTXO set indexer: the block and mempool
// reconciliation loops plus the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/chain"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/metrics"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/transport"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/repository/postgres"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/service/reconciler"
)

type config struct {
	PostgresDSN         string        `long:"postgres-dsn" env:"INDEXER_POSTGRES_DSN" description:"Postgres DSN"`
	Network             model.Network `long:"network" env:"INDEXER_NETWORK" description:"network name" required:"true"`
	RPCURL              string        `long:"rpc-url" env:"INDEXER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser             string        `long:"rpc-user" env:"INDEXER_RPC_USER" description:"node RPC username"`
	RPCPassword         string        `long:"rpc-password" env:"INDEXER_RPC_PASSWORD" description:"node RPC password"`
	HTTPTimeout         time.Duration `long:"http-timeout" env:"INDEXER_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RetryDelay          time.Duration `long:"retry-delay" env:"INDEXER_RETRY_DELAY" description:"delay between RPC retries" default:"5s"`
	RateLimit           int           `long:"rate-limit" env:"INDEXER_RATE_LIMIT" description:"max RPC requests per second, 0 is unlimited" default:"0"`
	StartHeight         uint64        `long:"start-height" env:"INDEXER_START_HEIGHT" description:"first height to index when no checkpoint exists" default:"1"`
	BatchSize           uint64        `long:"batch-size" env:"INDEXER_BATCH_SIZE" description:"block heights per batch" default:"10"`
	BlockPollInterval   time.Duration `long:"block-poll-interval" env:"INDEXER_BLOCK_POLL_INTERVAL" description:"sleep between block cycles at the tip" default:"10s"`
	MempoolPollInterval time.Duration `long:"mempool-poll-interval" env:"INDEXER_MEMPOOL_POLL_INTERVAL" description:"sleep between mempool cycles" default:"5s"`
	HTTPAddr            string        `long:"http-addr" env:"INDEXER_HTTP_ADDR" description:"address for the HTTP API" default:":8000"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("close repository", zap.Error(closeErr))
		}
	}()

	rpc, err := chain.NewClient(chain.Config{
		URL:         cfg.RPCURL,
		User:        cfg.RPCUser,
		Password:    cfg.RPCPassword,
		HTTPTimeout: cfg.HTTPTimeout,
		RetryDelay:  cfg.RetryDelay,
		RateLimit:   cfg.RateLimit,
	}, metrics.NewRPCClient(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	converter := bitcoin.NewUTXOConverter(decoder)

	blockSvc, err := reconciler.NewBlockReconcilerService(
		repo,
		bitcoin.NewBlockSource(converter, rpc),
		metrics.NewBlockReconciler(cfg.Network),
		reconciler.BlockReconcilerConfig{
			StartHeight:  cfg.StartHeight,
			BatchSize:    cfg.BatchSize,
			PollInterval: cfg.BlockPollInterval,
		},
		logger,
	)
	if err != nil {
		return fmt.Errorf("init block reconciler: %w", err)
	}

	mempoolSvc, err := reconciler.NewMempoolReconcilerService(
		repo,
		bitcoin.NewMempoolSource(converter, rpc),
		metrics.NewMempoolReconciler(cfg.Network),
		reconciler.MempoolReconcilerConfig{
			PollInterval: cfg.MempoolPollInterval,
		},
		logger,
	)
	if err != nil {
		return fmt.Errorf("init mempool reconciler: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if runErr := blockSvc.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("block reconciler stopped", zap.Error(runErr))
		}
	}()
	go func() {
		defer wg.Done()
		if runErr := mempoolSvc.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("mempool reconciler stopped", zap.Error(runErr))
		}
	}()

	err = serveHTTP(ctx, cfg.HTTPAddr, repo, rpc, logger)

	// The repository closes via defer, so both loops must fully stop first.
	wg.Wait()
	return err
}

func serveHTTP(ctx context.Context, addr string, repo *postgres.Repository, rpc *chain.Client, logger *zap.Logger) error {
	mux := http.NewServeMux()
	transport.NewQueryHandler(repo, rpc, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
