// Package testutil provides common testing utilities for urlkit packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing test files under a directory (WriteFile)
//   - Loading YAML fixtures (LoadYAML)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "testing"
//	    "github.com/jongio/urlkit/testutil"
//	)
//
//	func TestCommand(t *testing.T) {
//	    // Capture stdout from a command
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand()
//	    })
//
//	    // Check output contains expected text
//	    if !testutil.Contains(output, "http://example.com/") {
//	        t.Error("expected canonical URL")
//	    }
//	}
//
//	func TestWithFixtures(t *testing.T) {
//	    // Create temporary directory for test inputs
//	    tmpDir := testutil.TempDir(t)
//	    path := testutil.WriteFile(t, tmpDir, "urls.yaml", "urls:\n  - http://a/\n")
//
//	    var fixture struct {
//	        URLs []string `yaml:"urls"`
//	    }
//	    testutil.LoadYAML(t, path, &fixture)
//	    // tmpDir is automatically cleaned up after test
//	}
package testutil
