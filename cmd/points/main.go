package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thenninge/aware/internal/config"
	"github.com/thenninge/aware/internal/point"
	"github.com/thenninge/aware/internal/server"

	"github.com/gofiber/fiber/v2"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() (config.Config, error)
	openStore  func(config.Config) (point.Store, error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, point.Store, <-chan os.Signal, ListenFunc) error
	fatalf     func(format string, args ...any)
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		openStore:  point.OpenStore,
		notify:     signal.Notify,
		run:        Run,
		fatalf:     log.Fatalf,
	}
}

func realMain(deps mainDeps) {
	cfg, err := deps.loadConfig()
	if err != nil {
		deps.fatalf("load config: %v", err)
		return
	}

	st, err := deps.openStore(cfg)
	if err != nil {
		deps.fatalf("open point store: %v", err)
		return
	}

	if err := st.InitSchema(context.Background()); err != nil {
		deps.fatalf("init points schema: %v", err)
		return
	}

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, st, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the points HTTP service and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, st point.Store, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, func(api fiber.Router) {
		point.RegisterRoutes(api, st)
	})

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownFn(srv.App, shutdownCtx); err != nil {
		return err
	}
	return st.Close()
}
