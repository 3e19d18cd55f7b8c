// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for Shopkeeper.
//
// Configuration is loaded from a single file specified by either the
// SHOPKEEPER_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no ~/.config discovery and no
// automatic file search. Unlike a daemon, the tool must also work with
// zero setup: when neither source names a file, [Load] returns
// [Default], which points both data files at the working directory.
//
// Key exports:
//
//   - [Config] -- paths to the two data files
//   - [Default] -- working-directory defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other Shopkeeper packages.
package config
