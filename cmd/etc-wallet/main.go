// @title        ETC Wallet API
// @version      1.0
// @description  Wallet API over a Mantis (Ethereum Classic) node
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/etc-wallet/etc"
	"github.com/AlexZinkM/etc-wallet/internal/api"
	"github.com/AlexZinkM/etc-wallet/internal/client"
	"github.com/AlexZinkM/etc-wallet/internal/config"
	"github.com/AlexZinkM/etc-wallet/internal/handler"
	"github.com/AlexZinkM/etc-wallet/internal/logger"

	_ "github.com/AlexZinkM/etc-wallet/docs"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}

	log, err := logger.New(config.GetLogLevel(), config.GetLogDevelopment())
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rpcURL := client.RPCURL(config.GetEtcRPCHost(), config.GetEtcRPCPort())
	mantis, err := client.DialMantis(ctx, rpcURL)
	if err != nil {
		return err
	}
	defer mantis.Close()

	etcHandler := handler.NewEtcHandler(
		etc.NewAPI(mantis, log),
		client.NewCoinGeckoClient(),
		config.GetRPCTimeout(),
		log,
	)

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           api.SetupRouter(etcHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", srv.Addr), zap.String("node", rpcURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
