// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package shop implements the "shopkeeper shop" command: the
// interactive menu that drives the whole tool from a terminal. The
// menu loop reads numbered choices and dispatches to the inventory
// and ledger operations in lib/shop.
//
// The [Menu] is constructed over an injected reader, writer, and store
// handles so tests can script entire operator sessions.
package shop
