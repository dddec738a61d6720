// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the HBNB console.
package ux

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console color palette.
var (
	ColorPrimary = lipgloss.Color("#20B9B4") // teal - prompt, headers
	ColorSuccess = lipgloss.Color("#2CD7C7") // bright teal - created ids
	ColorWarning = lipgloss.Color("#F4D03F") // amber - warnings
	ColorError   = lipgloss.Color("#E74C3C") // red - errors
	ColorMuted   = lipgloss.Color("#2C4A54") // slate - secondary text
)

// Styles provides pre-configured lipgloss styles for the console.
var Styles = struct {
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}{
	Prompt:  lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Bold:    lipgloss.NewStyle().Bold(true),
}

// Printer writes styled or plain output depending on whether the
// destination is a terminal. Plain mode keeps piped output clean.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a Printer over w. Set styled to false when w is not
// a terminal.
func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

// Printf writes unstyled output.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Successf writes success-styled output.
func (p *Printer) Successf(format string, args ...any) {
	p.writeStyled(Styles.Success, format, args...)
}

// Errorf writes error-styled output.
func (p *Printer) Errorf(format string, args ...any) {
	p.writeStyled(Styles.Error, format, args...)
}

// Mutedf writes muted output for secondary information.
func (p *Printer) Mutedf(format string, args ...any) {
	p.writeStyled(Styles.Muted, format, args...)
}

func (p *Printer) writeStyled(style lipgloss.Style, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if p.styled {
		s = style.Render(s)
	}
	fmt.Fprint(p.w, s)
}
