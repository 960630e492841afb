package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"passkeeper/internal/app/server/api"
	"passkeeper/internal/app/server/config"
	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/record"
	"passkeeper/internal/domain/session"
	"passkeeper/internal/domain/transfer"
	"passkeeper/internal/infrastructure/storage"
	"passkeeper/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

var configFile string

var rootCmd = &cobra.Command{
	Use:           "passkeeper-server",
	Short:         "Локальный HTTP API хранилища паролей",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func main() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Путь к файлу конфигурации")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.New("").Error("fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	conf, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log := logger.New(conf.Env)

	st := storage.Open(conf.Storage, log)
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("error closing storage", "error", err)
		}
	}()

	var scheme access.Scheme = access.Plain{}
	if conf.Gate.HashPassphrase {
		scheme = access.Bcrypt{Cost: bcrypt.DefaultCost}
	}

	records := record.NewService(st.Records(), log)
	gate := access.NewService(st.Settings(), scheme, log)
	mux := api.New(api.Deps{
		Records:      records,
		Gate:         gate,
		Transfer:     transfer.NewService(records, gate, log),
		Sessions:     session.NewService(session.NewRepo(log), conf.SessionTTL, log),
		StorageState: func() string { return st.State().String() },
	}, log)

	srv := &http.Server{
		Addr:              conf.RunAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server starting", "addr", conf.RunAddress, "driver", conf.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", "error", err)
	}
	log.Info("shutdown complete")
	return nil
}
