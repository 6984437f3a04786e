package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used for terminal error output.
var (
	styleError      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleCode       = lipgloss.NewStyle().Bold(true)
	styleHint       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleMuted      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleDocURL     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	styleComponent  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	plainRendering  = false
)

// DisableColors switches formatting to plain text.
func DisableColors() {
	plainRendering = true
}

func render(s lipgloss.Style, text string) string {
	if plainRendering {
		return text
	}
	return s.Render(text)
}

// Format returns a formatted multi-line error message for terminal display.
func (e *ForgeError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(render(styleError, "ERROR "))
		b.WriteString(render(styleCode, e.Code+": "))
		b.WriteString(e.Message)
	} else {
		b.WriteString(render(styleError, "ERROR: "))
		b.WriteString(e.Message)
	}
	b.WriteString("\n\n")

	if e.Component != "" {
		b.WriteString("  ")
		b.WriteString(render(styleComponent, e.Component))
		if e.Field != "" {
			b.WriteString(render(styleMuted, " › "+e.Field))
		}
		b.WriteString("\n\n")
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(render(styleHint, "Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	if e.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(render(styleMuted, "Learn more: "))
		b.WriteString(render(styleDocURL, e.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *ForgeError) FormatCompact() string {
	var b strings.Builder

	if e.Component != "" {
		b.WriteString(e.Component)
		if e.Field != "" {
			b.WriteString("/")
			b.WriteString(e.Field)
		}
		b.WriteString(": ")
	}

	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}

	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}

	return b.String()
}

// MarshalJSON emits the structured form used by machine-readable output.
func (e *ForgeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code       string   `json:"code,omitempty"`
		Category   Category `json:"category"`
		Message    string   `json:"message"`
		Detail     string   `json:"detail,omitempty"`
		Component  string   `json:"component,omitempty"`
		Field      string   `json:"field,omitempty"`
		Suggestion string   `json:"suggestion,omitempty"`
		DocURL     string   `json:"docUrl,omitempty"`
	}{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Component:  e.Component,
		Field:      e.Field,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	})
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	var current strings.Builder

	for _, word := range words {
		if current.Len()+len(word)+1 > width {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// PrintError prints a formatted error to stderr.
func PrintError(err error) {
	if fe, ok := err.(*ForgeError); ok {
		fmt.Fprint(os.Stderr, fe.Format())
	} else {
		fmt.Fprintf(os.Stderr, "\n%s %s\n\n", render(styleError, "ERROR:"), err.Error())
	}
}
