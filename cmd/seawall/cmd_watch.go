// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/seawall-ai/seawall/services/gate"
	"github.com/seawall-ai/seawall/services/gate/pipeline"
)

var (
	watchExtensions string
	watchRate       float64
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Quick-scan files as they change",
	Long: `Watch a directory and run the quick scan on every written source
file, printing an allow/block line per change. Scans are rate-limited so a
burst of editor writes does not flood the output.

Runs until interrupted; always exits 0 on interrupt.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatchCommand,
}

func init() {
	watchCmd.Flags().StringVar(&watchExtensions, "ext", ".js,.jsx,.ts,.tsx,.mjs,.cjs",
		"Comma-separated file extensions to scan")
	watchCmd.Flags().Float64Var(&watchRate, "rate", 4,
		"Maximum scans per second")

	rootCmd.AddCommand(watchCmd)
}

func runWatchCommand(cmd *cobra.Command, args []string) {
	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		outputError("Not a watchable directory", fmt.Errorf("%s", dir), false)
		os.Exit(ExitError)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		outputError("Failed to create watcher", err, false)
		os.Exit(ExitError)
	}
	defer watcher.Close()

	// Watch the directory and its immediate subdirectories.
	if err := watcher.Add(dir); err != nil {
		outputError("Failed to watch directory", err, false)
		os.Exit(ExitError)
	}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			watcher.Add(filepath.Join(dir, e.Name()))
		}
	}

	exts := make(map[string]bool)
	for _, ext := range strings.Split(watchExtensions, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			exts[ext] = true
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer := pipeline.New(loadCatalog(""))
	limiter := rate.NewLimiter(rate.Limit(watchRate), 1)
	tty := stdoutIsTTY()

	logger.Info("watching", "dir", dir, "extensions", watchExtensions)

	for {
		select {
		case <-ctx.Done():
			os.Exit(ExitSafe)
		case err := <-watcher.Errors:
			logger.Warn("watch error", "error", err.Error())
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !exts[filepath.Ext(event.Name)] {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				os.Exit(ExitSafe)
			}
			scanChangedFile(ctx, analyzer, event.Name, tty)
		}
	}
}

// scanChangedFile quick-scans one changed file and prints a verdict line.
func scanChangedFile(ctx context.Context, analyzer *pipeline.Analyzer, path string, tty bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return
	}

	res, err := analyzer.QuickScan(ctx, gate.SourceUnit{
		Text:     string(data),
		FileName: filepath.Base(path),
	})
	if err != nil {
		return
	}

	verdict := "ok"
	if res.ShouldBlock {
		verdict = "BLOCK"
	} else if len(res.QuickRisks) > 0 {
		verdict = "review"
	}
	fmt.Printf("%s %s %s\n", renderLevel(res.RiskLevel, tty), verdict, path)
	for _, r := range res.QuickRisks {
		fmt.Printf("    - %s\n", r)
	}
}
