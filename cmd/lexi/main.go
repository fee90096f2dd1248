// Package main is the entry point for the lexi CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driven/dictionary/freedict"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/core/services"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)
	os.Exit(cli.Execute())
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	var (
		store   driven.ConfigStore
		watcher driven.ConfigWatcher
	)
	fileStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		logger.Warn("Config directory unavailable, settings will not persist: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
		watcher = fileStore
	}

	settingsService := services.NewSettingsService(store).WithUserAgent("lexi/" + opts.Version)

	dictionarySettings := func() (domain.DictionarySettings, error) {
		settings, err := settingsService.Get()
		if err != nil {
			return domain.DictionarySettings{}, err
		}
		dict := settings.Dictionary
		if opts.BaseURL != "" {
			dict.BaseURL = opts.BaseURL
		}
		return dict, nil
	}

	dict, err := dictionarySettings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	client, err := freedict.NewClient(dict)
	if err != nil {
		return &cli.Services{
			Settings:  settingsService,
			Actions:   services.NewEntryActionService(),
			LookupErr: fmt.Errorf("creating dictionary client: %w", err),
		}, nil
	}
	lookupService := services.NewLookupService(client)

	return &cli.Services{
		NewController: func() driving.LookupController {
			return services.NewController(lookupService)
		},
		Settings: settingsService,
		Actions:  services.NewEntryActionService(),
		Watcher:  watcher,
		Reload: func() error {
			dict, err := dictionarySettings()
			if err != nil {
				return err
			}
			return client.Configure(dict)
		},
	}, nil
}
