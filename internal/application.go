package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/cli"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the command line with the given arguments.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	startingSymbol, err := entity.ParseSymbol(conf.StartingSymbol)
	if err != nil {
		return fmt.Errorf("invalid starting symbol in config: %w", err)
	}

	deps := &cli.Dependencies{
		Logger:         logger,
		In:             os.Stdin,
		Out:            os.Stdout,
		StartingSymbol: startingSymbol,
	}

	if conf.History.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		deps.Matches = repository.NewMatchRepository(redisStorage, conf.History.TTL, conf.History.Limit)
	}

	rootCmd := cli.NewRootCmd(deps)
	rootCmd.SetArgs(args)

	if err = rootCmd.ExecuteContext(ctx); err != nil {
		return err //nolint:wrapcheck // command errors are already wrapped
	}

	return nil
}
