package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jralvarenga/r1go.dev/internal/server"
	"github.com/jralvarenga/r1go.dev/internal/site"
)

const debounceDuration = 500 * time.Millisecond

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and watches for changes",
	Long: `The serve command performs an initial build of your site, then starts a local
web server for the output directory. It watches the content, layouts and static
directories and rebuilds the site after changes. Post summaries of the last
successful build are available as JSON under /api/posts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	builder := site.New(appConfig, logger)
	srv := server.New(appConfig.OutputDir, logger)

	logger.Info("performing initial build")
	data, err := builder.Build()
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	srv.SetSite(data)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range []string{appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir} {
		watchTree(watcher, root)
	}

	var mu sync.Mutex
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		logger.Info("rebuilding site due to changes")
		data, err := builder.Build()
		if err != nil {
			logger.Error("rebuild failed", "err", err)
			return
		}
		srv.SetSite(data)
		logger.Info("site rebuilt")
	}
	go watch(ctx, watcher, rebuild)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", serverPort),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("serving site", "dir", appConfig.OutputDir, "url", fmt.Sprintf("http://localhost:%d", serverPort))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// watch debounces watcher events into calls to rebuild until ctx is done.
func watch(ctx context.Context, watcher *fsnotify.Watcher, rebuild func()) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			// New sub-directories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				watchTree(watcher, event.Name)
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDuration, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

// watchTree adds root and all of its sub-directories to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) {
	if root == "" {
		return
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		logger.Debug("directory not found, not watching", "dir", root)
		return
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn("error walking directory", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				logger.Warn("failed to watch directory", "path", path, "err", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("error setting up watches", "dir", root, "err", err)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
