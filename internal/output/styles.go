package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Severity styles
	Fine    lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Fatal   lipgloss.Style
	Unknown lipgloss.Style

	// Component styles
	Timestamp lipgloss.Style
	Session   lipgloss.Style
	AttrKey   lipgloss.Style
	Message   lipgloss.Style

	// Notices
	Label  lipgloss.Style
	Value  lipgloss.Style
	Notice lipgloss.Style
	Danger lipgloss.Style
}{
	Fine:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),                            // Gray
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),                             // Cyan
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),                 // Orange
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),                 // Red bold
	Fatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true).Underline(true), // Magenta bold underline
	Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

	Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Session:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	AttrKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("142")),
	Message:   lipgloss.NewStyle(),

	Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:  lipgloss.NewStyle().Bold(true),
	Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// SeverityStyle returns the style for a record severity
func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityFinest, domain.SeverityFiner, domain.SeverityFine:
		return Styles.Fine
	case domain.SeverityInfo:
		return Styles.Info
	case domain.SeverityWarning:
		return Styles.Warning
	case domain.SeverityError:
		return Styles.Error
	case domain.SeverityFatal:
		return Styles.Fatal
	default:
		return Styles.Unknown
	}
}

// Painter applies styles only when output goes to a terminal.
type Painter struct {
	Enabled bool
}

// Paint renders s with style when painting is enabled.
func (p Painter) Paint(style lipgloss.Style, s string) string {
	if !p.Enabled || s == "" {
		return s
	}
	return style.Render(s)
}
