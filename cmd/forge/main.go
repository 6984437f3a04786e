package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┬─┐┌─┐┌─┐
  ├┤ │ │├┬┘│ ┬├┤
  └  └─┘┴└─└─┘└─┘
`

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// jsonOutput switches error reporting to machine-readable JSON.
var jsonOutput bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Build and publish UI component registries",
		Long: `Forge turns a directory of UI component definitions into a
static component registry: validated descriptors compiled into a
single registry.json, generated HTML documentation, and machine
readable index and dependency manifests, ready to publish to any
static host.

  • One directory per component, described by component.json
  • Validation with the complete error list in one pass
  • Static docs site with an overview and per-component pages
  • Live-reloading local preview under watch mode
  • Publish to S3 or a git branch`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Report errors as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		initCmd(),
		addCmd(),
		removeCmd(),
		listCmd(),
		searchCmd(),
		validateCmd(),
		updateCmd(),
		buildCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	cobra.OnInitialize(func() {
		if noColor {
			errors.DisableColors()
			plain := lipgloss.NewStyle()
			styleSuccess, styleInfo, styleWarn, styleErr = plain, plain, plain, plain
		}
	})

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

var noColor bool

// reportError prints a top-level error in the selected format.
func reportError(err error) {
	if jsonOutput {
		printJSONError(err)
		return
	}
	if fe, ok := err.(*errors.ForgeError); ok {
		fmt.Fprintln(os.Stderr, fe.Format())
		return
	}
	fmt.Fprintln(os.Stderr, styleErr.Render("Error:")+" "+err.Error())
}

func printJSONError(err error) {
	type envelope struct {
		Error any `json:"error"`
	}
	var payload envelope
	if fe, ok := err.(*errors.ForgeError); ok {
		payload.Error = fe
	} else {
		payload.Error = map[string]string{"message": err.Error()}
	}
	data, mErr := json.MarshalIndent(payload, "", "  ")
	if mErr != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	fmt.Fprintln(os.Stderr, string(data))
}

// reportErrors prints an accumulated validation error list.
func reportErrors(errs []*errors.ForgeError) {
	if jsonOutput {
		type envelope struct {
			Errors []*errors.ForgeError `json:"errors"`
		}
		data, err := json.MarshalIndent(envelope{Errors: errs}, "", "  ")
		if err == nil {
			fmt.Fprintln(os.Stderr, string(data))
		}
		return
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, "  "+e.FormatCompact())
	}
}

// printBanner prints the forge ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", styleInfo.Render(fmt.Sprintf(format, args...)))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", styleWarn.Render("⚠"), fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleErr.Render("✗"), fmt.Sprintf(format, args...))
}
