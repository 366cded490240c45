package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/storefront/cart"
	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/config"
	"github.com/ray-remotestate/storefront/database"
	"github.com/ray-remotestate/storefront/server"
	"github.com/ray-remotestate/storefront/session"
)

const (
	shutdownTimeout     = 10 * time.Second
	catalogFetchTimeout = 5 * time.Second
)

func main() {
	config.Init()

	if err := database.ConnectAndMigrate(); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	cat := catalog.New()
	upstream := catalog.NewSimulatedUpstream(catalog.SeedSnapshot())
	fetcher := catalog.NewFetcher(upstream, cat)

	ctx, cancel := context.WithTimeout(context.Background(), catalogFetchTimeout)
	if err := fetcher.Refresh(ctx, config.CatalogPath()); err != nil {
		cancel()
		logrus.Panicf("failed to load catalog, error: %v", err)
	}
	cancel()
	logrus.Printf("catalog loaded with %d branches", len(cat.Branches()))

	svr := server.SetupRoutes(server.Deps{
		Catalog:  cat,
		Fetcher:  fetcher,
		Cart:     cart.NewMemoryStore(),
		Sessions: session.NewStore(),
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Printf("storefront listening on %s", config.Port())
		if err := svr.Run(config.Port()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection")
	}

	logrus.Info("system is shut ..zzz")
}
