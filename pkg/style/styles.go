package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// Code and path styles
	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Field location styles
var (
	CellsStyle = lipgloss.NewStyle().
			Foreground(CellsColor)

	BoundaryFacesStyle = lipgloss.NewStyle().
				Foreground(BoundaryFacesColor)

	InteriorFacesStyle = lipgloss.NewStyle().
				Foreground(InteriorFacesColor)

	VerticesStyle = lipgloss.NewStyle().
			Foreground(VerticesColor)

	// RoleStyle is used for role names in tables
	RoleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// LocationStyle returns the style for a field location, or MutedStyle for
// an unknown one.
func LocationStyle(location string) lipgloss.Style {
	switch location {
	case "cells":
		return CellsStyle
	case "boundary_faces":
		return BoundaryFacesStyle
	case "interior_faces":
		return InteriorFacesStyle
	case "vertices":
		return VerticesStyle
	default:
		return MutedStyle
	}
}
