package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/strokedash/internal/assets"
	"github.com/mtlprog/strokedash/internal/config"
	"github.com/mtlprog/strokedash/internal/dashboard"
	"github.com/mtlprog/strokedash/internal/handler"
	"github.com/mtlprog/strokedash/internal/logger"
)

func main() {
	if err := run(newApp(), os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// run loads .env from the working directory before the app parses flags,
// so its values reach flags through their EnvVars.
func run(app *cli.App, args []string) error {
	if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
		return err
	}
	return app.Run(args)
}

// portFlag is declared on both the app and serve, since serve is also the
// default action.
func portFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Value:   config.DefaultPort,
		Usage:   "HTTP server port",
		EnvVars: []string{"PORT"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "strokedash",
		Usage: "Stroke prediction results dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "assets-dir",
				Aliases: []string{"a"},
				Value:   config.DefaultAssetsDir,
				Usage:   "Directory holding the page images",
				EnvVars: []string{"ASSETS_DIR"},
			},
			portFlag(),
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags:  []cli.Flag{portFlag()},
				Action: runServe,
			},
			{
				Name:  "export",
				Usage: "Render the page to a self-contained HTML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Value:   "-",
						Usage:   "Output file, - for stdout",
					},
				},
				Action: runExport,
			},
			{
				Name:   "check",
				Usage:  "Verify every page image exists and decodes",
				Action: runCheck,
			},
		},
		Action: runServe,
	}
}

func newRenderer(loader *assets.Loader) *dashboard.Renderer {
	return dashboard.NewRenderer(loader, dashboard.StrokeContent())
}

func servePort(c *cli.Context) string {
	if port := c.String("port"); port != "" {
		return port
	}
	return config.DefaultPort
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	port := servePort(c)

	dir := c.String("assets-dir")
	loader := assets.NewDirLoader(dir)
	renderer := newRenderer(loader)
	html, err := dashboard.NewHTMLWriter()
	if err != nil {
		return err
	}

	// A bad asset directory is reported at startup but does not stop the
	// server; each page view fails on its own until the files are fixed.
	if err := loader.Check(ctx, renderer.Content().Assets()...); err != nil {
		slog.Warn("asset check failed", "assets_dir", dir, "error", err)
	}

	h := handler.New(renderer, html)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port, "assets_dir", dir)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runExport(c *cli.Context) error {
	page, err := newRenderer(assets.NewDirLoader(c.String("assets-dir"))).Render(c.Context)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	html, err := dashboard.NewHTMLWriter()
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "-" {
		return html.Write(c.App.Writer, page, dashboard.ImagesInline)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := html.Write(f, page, dashboard.ImagesInline); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	slog.Info("page exported", "out", out, "blocks", len(page.Blocks))
	return nil
}

func runCheck(c *cli.Context) error {
	dir := c.String("assets-dir")
	loader := assets.NewDirLoader(dir)

	for _, path := range dashboard.StrokeContent().Assets() {
		asset, err := loader.Load(c.Context, path)
		if err != nil {
			return fmt.Errorf("check assets in %s: %w", dir, err)
		}
		fmt.Fprintf(c.App.Writer, "ok  %s  %s %dx%d\n", path, asset.Format, asset.Width, asset.Height)
	}
	return nil
}
