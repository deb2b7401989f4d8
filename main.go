package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"shorty/internal/cache"
	"shorty/internal/config"
	"shorty/internal/handler"
	"shorty/internal/metrics"
	custommiddleware "shorty/internal/middleware"
	"shorty/internal/repository"
	"shorty/internal/service"
	"shorty/internal/shortener"
	"shorty/internal/validation"
)

const (
	shutdownTimeout = 10 * time.Second
	infraInterval   = 10 * time.Second
)

type linkStore interface {
	service.Repository
	repository.Purger
	Ping(ctx context.Context) error
	Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, pg, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("link store ready", slog.String("driver", cfg.Store.Driver))

	slugs, err := shortener.New(shortener.DefaultLength)
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	var (
		linkCache  service.Cache
		cacheStats metrics.CacheStats
	)
	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer c.Close()
		linkCache, cacheStats = c, c
	}

	links := service.NewLinkService(store, slugs, linkCache, cfg.Store.LinkTTL)
	validator := validation.NewLinkValidator(validation.NewURLValidator(cfg.Validation.AllowPrivateIPs))
	h := handler.New(links, validator, store, logger, cfg.Server.PublicOrigin)

	g, ctx := errgroup.WithContext(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))

	if cfg.Metrics.Enabled && pg != nil {
		recorder := metrics.NewRecorder(pg.Pool(), &cfg.Metrics, logger)
		recorder.Start(ctx)
		defer recorder.Close()

		e.Use(custommiddleware.Metrics(recorder))

		collector := metrics.NewCollector(recorder, func() metrics.PoolStats {
			return pg.Pool().Stat()
		}, cacheStats, infraInterval)
		g.Go(func() error { return collector.Run(ctx) })
	}

	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	var tlsListener net.Listener
	if cfg.TLS.Enabled {
		tlsListener, err = listenTLS(cfg)
		if err != nil {
			httpListener.Close()
			return err
		}
	}

	sweeper := repository.NewSweeper(store, cfg.Store.SweepInterval, logger)
	g.Go(func() error { return sweeper.Run(ctx) })

	servers := make([]*http.Server, 0, 2)

	httpServer := newServer(e)
	servers = append(servers, httpServer)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))
	g.Go(func() error { return serve(httpServer, httpListener) })

	if tlsListener != nil {
		httpsServer := newServer(e)
		servers = append(servers, httpsServer)
		logger.Info("starting HTTPS server", slog.String("addr", tlsListener.Addr().String()))
		g.Go(func() error { return serve(httpsServer, tlsListener) })
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (linkStore, *repository.LinkRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return repository.NewMemoryRepository(), nil, nil
	default:
		pg, err := repository.NewLinkRepository(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create repository: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return pg, pg, nil
	}
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

func listenTLS(cfg *config.Config) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
	l, err := listen(addr, cfg.Server.MaxConnections)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}

	return tls.NewListener(l, &tls.Config{
		MinVersion:       tls.VersionTLS13,
		Certificates:     []tls.Certificate{cert},
		CurvePreferences: []tls.CurveID{tls.X25519},
	}), nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener) error {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
