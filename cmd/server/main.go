package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"edubase/internal/establishment/handler"
	"edubase/internal/establishment/service"
	"edubase/internal/establishment/store"
	"edubase/internal/platform/config"
	"edubase/internal/platform/httpserver"
	"edubase/internal/platform/logger"
	"edubase/internal/platform/metrics"
	httptransport "edubase/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the context packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	m := metrics.New()
	establishments := store.NewInMemory()
	svc := service.New(establishments, log, m)

	if cfg.SeedFile != "" {
		seedEstablishments(context.Background(), log, svc, cfg.SeedFile)
	}

	router := httptransport.NewRouter(handler.New(svc, log, m))
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting edubase", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// seedEstablishments pre-populates the register from the seed file. Records
// go through the normal registration path so invalid rows are rejected with
// the same rules as API callers; one bad row never blocks startup.
func seedEstablishments(ctx context.Context, log *slog.Logger, svc *service.Service, path string) {
	records, err := config.LoadSeed(path)
	if err != nil {
		log.Error("loading seed file failed", "path", path, "error", err)
		return
	}

	seeded := 0
	for _, rec := range records {
		_, err := svc.Register(ctx, service.RegisterInput{
			URN:             rec.URN,
			Name:            rec.Name,
			WebsiteURL:      rec.WebsiteURL,
			TelephoneNumber: rec.TelephoneNumber,
		})
		if err != nil {
			log.Warn("skipping seed record", "urn", rec.URN, "error", err)
			continue
		}
		seeded++
	}
	log.Info("seeded establishments", "path", path, "count", seeded)
}
