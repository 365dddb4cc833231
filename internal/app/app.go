package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoteldesk/reservation/internal/booking"
	"github.com/hoteldesk/reservation/internal/config"
	"github.com/hoteldesk/reservation/internal/idgen/simple"
	"github.com/hoteldesk/reservation/internal/logger"
	"github.com/hoteldesk/reservation/internal/migration"
	"github.com/hoteldesk/reservation/internal/storage/memory"
	"github.com/hoteldesk/reservation/internal/transport/web"
)

func Run(l *logger.Logger, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	storage := memory.New(memory.Config{L: l})
	if err := migration.Up(ctx, l, storage); err != nil {
		return fmt.Errorf("up room catalog migration: %w", err)
	}

	l.LogInfo("Room catalog migration has been applied")

	idGen := simple.New()
	bookManager := booking.New(l, storage, idGen)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      l.Std(),
		Host:              cfg.Host,
		Port:              cfg.Port,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		LivenessEndpoint:  cfg.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, bookManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
