// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the shopkeeper binary:
// the [Command] tree with help rendering and typo suggestions, struct-tag
// flag binding over pflag ([FlagsFromParams]), categorized command errors
// ([ToolError]), JSON output support ([JSONOutput]), structured logging
// ([NewCommandLogger]), and the shared flags that locate the shop's data
// files ([StoreConfig]).
package cli
