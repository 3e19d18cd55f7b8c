// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual properties of the interactive menu. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility; on a dumb terminal lipgloss degrades to plain text.
type Theme struct {
	// Title styles the menu banner.
	Title lipgloss.Style

	// Header styles table header rows.
	Header lipgloss.Style

	// Notice styles operator-facing warnings (unknown product,
	// insufficient stock, invalid choice).
	Notice lipgloss.Style

	// Success styles confirmations (product added, sale recorded).
	Success lipgloss.Style
}

// DefaultTheme returns the standard menu theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}
