// Package main is the entry point for the tagcheck application.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nurokhq/tagcheck/model"
	"github.com/nurokhq/tagcheck/service/config"
	"github.com/nurokhq/tagcheck/service/docs"
	"github.com/nurokhq/tagcheck/service/flag"
	"github.com/nurokhq/tagcheck/service/manifest"
	"github.com/nurokhq/tagcheck/service/modulefile"
	"github.com/nurokhq/tagcheck/service/output"
	"github.com/nurokhq/tagcheck/service/scan"
	"github.com/nurokhq/tagcheck/service/storage"
	"github.com/nurokhq/tagcheck/service/verify"
	"github.com/nurokhq/tagcheck/utils/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errUsage marks a bad invocation; the usage text has already been printed.
var errUsage = errors.New("usage")

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	outputService := output.NewService(flags.Output)

	if flags.Version {
		verifyService := verify.NewService(nil, nil, nil, nil, outputService, nil, versionInfo)
		return verifyService.Verify(flags)
	}

	if len(flags.Args) != 1 {
		printUsage()
		return errUsage
	}

	configService := config.NewService(flags.ConfigPath)
	flags, err = configService.Apply(flags)
	if err != nil {
		return err
	}

	if !outputService.Quiet() && !flags.NoBanner {
		banner.DrawBannerTitle()
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	verifyService := verify.NewService(
		manifest.NewService(flags.Manifest),
		modulefile.NewService(flags.ModuleFile),
		docs.NewService(flags.Docs),
		scan.NewService(flags.ScanDir),
		outputService,
		storageService,
		versionInfo,
	)

	return verifyService.Verify(flags)
}

func printUsage() {
	fmt.Println("Usage: tagcheck <tag_name>")
	fmt.Println("Example: tagcheck v0.1.0")
}
