// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/shopkeeper-cli/shopkeeper/lib/config"
	"github.com/shopkeeper-cli/shopkeeper/lib/shop"
)

// StoreConfig is an embeddable params struct carrying the flags that
// locate the shop's data files. Resolution order: the explicit file
// flags win, then --config, then the SHOPKEEPER_CONFIG environment
// variable, then the built-in working-directory defaults.
//
// Commands embed it alongside their own flags:
//
//	type addParams struct {
//	    cli.StoreConfig
//	    ID string `flag:"id" desc:"product id"`
//	}
type StoreConfig struct {
	ConfigFile    string `flag:"config" desc:"path to shopkeeper config file (overrides SHOPKEEPER_CONFIG)"`
	InventoryFile string `flag:"inventory-file" desc:"inventory file path (overrides config)"`
	SalesFile     string `flag:"sales-file" desc:"sales ledger file path (overrides config)"`
}

// resolve loads configuration and applies the per-file flag overrides.
func (s *StoreConfig) resolve() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if s.ConfigFile != "" {
		cfg, err = config.LoadFile(s.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if s.InventoryFile != "" {
		cfg.Paths.InventoryFile = s.InventoryFile
	}
	if s.SalesFile != "" {
		cfg.Paths.SalesFile = s.SalesFile
	}
	return cfg, nil
}

// OpenInventory loads (or initializes) the configured inventory file.
func (s *StoreConfig) OpenInventory() (*shop.Inventory, error) {
	cfg, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return shop.Open(cfg.Paths.InventoryFile)
}

// OpenLedger returns the configured sales ledger. The backing file is
// created lazily on the first recorded sale.
func (s *StoreConfig) OpenLedger() (*shop.Ledger, error) {
	cfg, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return shop.NewLedger(cfg.Paths.SalesFile), nil
}

// OpenStores resolves configuration once and opens both stores.
func (s *StoreConfig) OpenStores() (*shop.Inventory, *shop.Ledger, error) {
	cfg, err := s.resolve()
	if err != nil {
		return nil, nil, err
	}
	inventory, err := shop.Open(cfg.Paths.InventoryFile)
	if err != nil {
		return nil, nil, err
	}
	return inventory, shop.NewLedger(cfg.Paths.SalesFile), nil
}
