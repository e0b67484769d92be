// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable and JSON)
//   - ANSI color support with consistent color scheme
//   - Unicode detection with ASCII fallbacks for legacy terminals
//   - Tables with automatic column width calculation
//
// # Basic Usage
//
//	import "github.com/jongio/urlkit/cliout"
//
//	// Print success message
//	cliout.Success("Parsed %d URLs", count)
//
//	// Print error message
//	cliout.Error("Parse failed: %s", err)
//
//	// Print warning
//	cliout.Warning("Input contained %d syntax violations", n)
//
//	// Print info message
//	cliout.Info("Resolving against %s", base)
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// Check the current format:
//
//	if cliout.IsJSON() {
//	    // Skip decorative output
//	}
//
// # Unicode Detection
//
// The package automatically detects terminal Unicode support and falls back to
// ASCII symbols on legacy terminals. Detection includes:
//   - Windows Terminal (via WT_SESSION environment variable)
//   - VS Code integrated terminal (via TERM_PROGRAM environment variable)
//   - PowerShell (via PSModulePath or POWERSHELL_DISTRIBUTION_CHANNEL)
//   - ConEmu (via ConEmuPID environment variable)
//   - Unix-like systems (assumed to support Unicode)
//
// Old Windows Command Prompt (cmd.exe) without these environment variables will
// use ASCII fallback symbols.
//
// # Hybrid Output
//
// The Print function supports hybrid output where you provide both JSON data and
// a formatter function:
//
//	data := map[string]interface{}{"href": u.String(), "scheme": u.Scheme()}
//	err := cliout.Print(data, func() {
//	    cliout.Label("Scheme", u.Scheme())
//	})
//
// In JSON mode, the data is marshaled to JSON. In default mode, the formatter is called.
//
// # Tables
//
// Create simple tables with automatic column width calculation:
//
//	headers := []string{"Input", "Result", "Status"}
//	rows := []cliout.TableRow{
//	    {"Input": "./a", "Result": "http://h/a", "Status": "valid"},
//	    {"Input": "http://[", "Result": "", "Status": "invalid"},
//	}
//	cliout.Table(headers, rows)
//
// # Color Constants
//
// The package exports ANSI color constants for custom formatting:
//   - Reset, Bold, Dim
//   - Foreground colors: Black, Red, Green, Yellow, Blue, Magenta, Cyan, White, Gray
//   - Bright colors: BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan
//
// # Unicode Symbols
//
// Unicode symbols with ASCII fallbacks:
//   - SymbolCheck (✓) / ASCIICheck ([+])
//   - SymbolCross (✗) / ASCIICross ([-])
//   - SymbolWarning (⚠) / ASCIIWarning ([!])
//   - SymbolInfo (ℹ) / ASCIIInfo ([i])
//   - SymbolArrow (→) / ASCIIArrow (->)
//   - SymbolDot (•) / ASCIIDot (*)
//
// # Design Principles
//
//   - No global state except the format setting
//   - All output goes to stdout (use stderr wrapper if needed)
//   - Graceful degradation on legacy terminals
//   - JSON mode for automation and scripting scenarios
package cliout
