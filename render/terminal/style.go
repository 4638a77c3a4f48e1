package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Kind colors: emerald for reflections, amber for quotes.
	colorReflection = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorMotivation = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorLink   = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
)

var (
	styleReflectionBadge = lipgloss.NewStyle().Foreground(colorReflection).Bold(true)
	styleMotivationBadge = lipgloss.NewStyle().Foreground(colorMotivation).Bold(true)

	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	styleExcerpt = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleLink    = lipgloss.NewStyle().Foreground(colorLink)
	styleQuote   = lipgloss.NewStyle().Foreground(colorMotivation).Italic(true)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
