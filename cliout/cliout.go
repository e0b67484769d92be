// Package cliout provides structured output formatting for CLI commands.
// It supports multiple output formats including human-readable text and JSON,
// with consistent styling using ANSI colors and Unicode symbols.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	// Bright foreground colors
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

// Global output format setting
var globalFormat Format = FormatDefault

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	// Check Windows version and console
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, and modern PowerShell support Unicode
		term := os.Getenv("TERM_PROGRAM")
		wtSession := os.Getenv("WT_SESSION")

		// Check for Windows Terminal
		if wtSession != "" {
			return true
		}

		// Check for VS Code
		if term == "vscode" {
			return true
		}

		// Check for ConEmu
		if os.Getenv("ConEmuPID") != "" {
			return true
		}

		// PowerShell (any version) generally supports Unicode symbols
		if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return true
		}

		// Check TERM environment variable
		if os.Getenv("TERM") != "" {
			return true
		}

		// Default to ASCII for old Windows Console/CMD
		return false
	}

	// Unix-like systems generally support Unicode
	return true
}

// getSymbol returns the appropriate symbol based on Unicode support
func getSymbol(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return globalFormat == FormatJSON
}

// PrintJSON prints data as JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintDefault prints data in default format using a custom formatter function.
func PrintDefault(formatter func()) {
	if globalFormat == FormatDefault {
		formatter()
	}
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data interface{}, formatter func()) error {
	if globalFormat == FormatJSON {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Modern CLI output functions with consistent styling

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s%s%s\n", Bold, text, Reset)
	fmt.Println(strings.Repeat("=", len(text)))
}

// CommandHeader prints a minimal command header.
// Shows just the command name with a short divider.
// Skipped in JSON mode so machine output stays clean.
func CommandHeader(command string) {
	if globalFormat == FormatJSON {
		return
	}
	fmt.Println()
	fmt.Printf("%surltool %s%s\n", Bold, command, Reset)
	fmt.Println(strings.Repeat("─", 30))
	fmt.Println()
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getSymbol(SymbolCheck, ASCIICheck)
	fmt.Printf("%s%s%s %s\n", BrightGreen, check, Reset, msg)
}

// Error prints an error message with red X
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getSymbol(SymbolCross, ASCIICross)
	fmt.Printf("%s%s%s %s\n", BrightRed, cross, Reset, msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getSymbol(SymbolWarning, ASCIIWarning)
	fmt.Printf("%s%s%s  %s\n", BrightYellow, warning, Reset, msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	info := getSymbol(SymbolInfo, ASCIIInfo)
	fmt.Printf("%s%s%s  %s\n", BrightBlue, info, Reset, msg)
}

// Item prints an indented item
func Item(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", msg)
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	bullet := getSymbol(SymbolDot, ASCIIDot)
	fmt.Printf("  %s %s\n", bullet, msg)
}

// ItemSuccess prints an indented success item
func ItemSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getSymbol(SymbolCheck, ASCIICheck)
	fmt.Printf("   %s%s%s %s\n", Green, check, Reset, msg)
}

// ItemError prints an indented error item
func ItemError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getSymbol(SymbolCross, ASCIICross)
	fmt.Printf("   %s%s%s %s\n", Red, cross, Reset, msg)
}

// ItemWarning prints an indented warning item
func ItemWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getSymbol(SymbolWarning, ASCIIWarning)
	fmt.Printf("   %s%s%s  %s\n", Yellow, warning, Reset, msg)
}

// Divider prints a horizontal divider
func Divider() {
	fmt.Printf("\n%s%s%s\n", Dim, strings.Repeat("─", 50), Reset)
}

// Newline prints a blank line
func Newline() {
	fmt.Println()
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Printf("   %s%-12s%s %s\n", Dim, label+":", Reset, value)
}

// LabelColored prints a label and colored value pair
func LabelColored(label, value, color string) {
	fmt.Printf("   %s%-12s%s %s%s%s\n", Dim, label+":", Reset, color, value, Reset)
}

// Highlight returns highlighted text
func Highlight(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return Bold + Cyan + msg + Reset
}

// Emphasize returns emphasized text
func Emphasize(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return Bold + msg + Reset
}

// Muted returns muted/dim text
func Muted(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return Dim + msg + Reset
}

// URL returns a URL in bright blue
func URL(url string) string {
	return BrightBlue + url + Reset
}

// Status returns a status badge with appropriate color
func Status(status string) string {
	switch strings.ToLower(status) {
	case "valid", "ok", "success":
		return BrightGreen + status + Reset
	case "warning", "violations":
		return BrightYellow + status + Reset
	case "invalid", "error", "failed":
		return BrightRed + status + Reset
	case "info", "unknown":
		return BrightBlue + status + Reset
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	// Print header
	fmt.Print("   ")
	for _, header := range headers {
		fmt.Printf("%s%-*s%s  ", Bold, widths[header], header, Reset)
	}
	fmt.Println()

	// Print separator
	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("─", widths[header]) + "  ")
	}
	fmt.Println()

	// Print rows
	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}
