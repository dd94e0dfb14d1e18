// Package main provides the CLI entry point for filedrop.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filedrop/internal/config"
	"filedrop/internal/deposit"
	"filedrop/internal/fsys"
	"filedrop/internal/output"
	"filedrop/internal/watcher"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: filedrop <config-file> <command> [args]

Commands:
  folder <alias> <dir>          register a folder alias (creates the directory)
  put <alias> <source> [name]   deposit a file, replacing any existing file
  add <alias> <source> [name]   deposit a file, renaming to avoid collisions
  watch                         deposit files appearing in the drop directory`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	configPath := os.Args[1]
	command := os.Args[2]
	args := os.Args[3:]

	out := output.New(output.DefaultConfig())

	var err error
	switch command {
	case "folder":
		err = runFolder(configPath, args, out)
	case "put", "add":
		err = runDeposit(configPath, command, args, out)
	case "watch":
		err = runWatch(configPath, out)
	default:
		usage()
	}

	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
}

// runFolder registers a folder alias in the config file and creates the
// directory.
func runFolder(configPath string, args []string, out *output.Output) error {
	if len(args) != 2 {
		usage()
	}
	alias, dir := args[0], args[1]

	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return err
	}

	svc, err := deposit.New(fsys.OS{}, deposit.Options{SafeNames: cfg.SafeNames})
	if err != nil {
		return err
	}
	if err := svc.AddFolder(alias, dir); err != nil {
		return err
	}

	cfg.SetFolder(alias, dir)
	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	out.Info("Registered folder %q -> %s", alias, dir)
	return nil
}

// runDeposit performs a single put or add.
func runDeposit(configPath, command string, args []string, out *output.Output) error {
	if len(args) < 2 || len(args) > 3 {
		usage()
	}
	alias, source := args[0], args[1]
	destName := ""
	if len(args) == 3 {
		destName = args[2]
	}

	svc, err := newService(configPath)
	if err != nil {
		return err
	}

	var result *deposit.Result
	if command == "put" {
		result, err = svc.Put(alias, source, destName)
	} else {
		result, err = svc.Add(alias, source, destName)
	}
	if err != nil {
		return err
	}

	out.Info("%s -> %s", source, result.Path)
	return nil
}

// runWatch runs watch mode until interrupted, then prints the session
// summary.
func runWatch(configPath string, out *output.Output) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Watch == nil {
		return fmt.Errorf("no watch block in %s", configPath)
	}

	svc, err := deposit.New(fsys.OS{}, deposit.Options{
		Folders:   cfg.Folders,
		SafeNames: cfg.SafeNames,
	})
	if err != nil {
		return err
	}

	w := watcher.New(&watcher.Config{
		DebounceSeconds:   cfg.Watch.DebounceSeconds,
		StableThresholdMs: cfg.Watch.StableThresholdMs,
		IgnorePatterns:    cfg.Watch.IgnorePatterns,
	}, func(path string) error {
		result, err := svc.Add(cfg.Watch.Folder, path, "")
		if err != nil {
			out.Error("Error depositing %s: %v", path, err)
			return err
		}
		out.Verbose("%s -> %s", path, result.Path)
		return nil
	})

	if err := w.Start(cfg.Watch.DropDirectory); err != nil {
		return err
	}
	out.Info("Watching %s (Ctrl-C to stop)", cfg.Watch.DropDirectory)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	summary := w.Stop()
	out.Info("Deposited %d files, skipped %d, failed %d in %s",
		summary.FilesDeposited, summary.FilesSkipped, summary.FilesFailed,
		summary.Duration.Round(time.Second))
	return nil
}

// newService builds a deposit service from the config file.
func newService(configPath string) (*deposit.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return deposit.New(fsys.OS{}, deposit.Options{
		Folders:   cfg.Folders,
		SafeNames: cfg.SafeNames,
	})
}
