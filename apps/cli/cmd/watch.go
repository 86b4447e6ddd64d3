package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const (
	// WatchDebounceDelay is the minimum delay between re-runs in watch mode
	WatchDebounceDelay = 300 * time.Millisecond
)

// watch runs the session once, then again whenever a suite or data file
// changes, until interrupted.
func (s *session) watch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	addDir := func(dir string) {
		if watched[dir] {
			return
		}
		watched[dir] = true
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to watch %s: %v\n", dir, err)
		}
	}
	for _, file := range s.files {
		addDir(filepath.Dir(file))
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					addDir(path)
				}
				return nil
			})
		}
	}

	rerun := func() {
		if err := s.refresh(args); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		if _, err := s.run(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
	}

	rerun()

	// Bursts of events from one save collapse into at most one pending run,
	// and the limiter spaces consecutive runs.
	pending := make(chan string, 1)
	limiter := rate.NewLimiter(rate.Every(WatchDebounceDelay), 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case name := <-pending:
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running suites...\n\n", name)
				rerun()
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			<-done
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					addDir(event.Name)
					continue
				}
			}
			if !isYAMLFile(event.Name) && filepath.Ext(event.Name) != ".json" {
				continue
			}
			select {
			case pending <- event.Name:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher error: %v\n", err)
		}
	}
}

// refresh re-discovers suite files so suites created while watching are
// picked up. The previous list is kept when discovery fails.
func (s *session) refresh(args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no suite files found")
	}
	s.files = files
	return nil
}
