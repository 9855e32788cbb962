package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Use TrueColor so color codes appear in rendered output
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestRegressionStatus(t *testing.T) {
	fail := RegressionStatus(15.0, 10.0)
	if !strings.Contains(fail, "FAIL") || !strings.Contains(fail, "196") {
		t.Errorf("Expected red FAIL, got %q", fail)
	}

	impr := RegressionStatus(-15.0, 10.0)
	if !strings.Contains(impr, "IMPR") {
		t.Errorf("Expected IMPR, got %q", impr)
	}

	pass := RegressionStatus(5.0, 10.0)
	if !strings.Contains(pass, "PASS") || !strings.Contains(pass, "46") {
		t.Errorf("Expected green PASS, got %q", pass)
	}
}

func TestHeader_BrandColor(t *testing.T) {
	text := Header("benchduel")
	if !strings.Contains(text, "63") {
		t.Errorf("Expected header to contain color 63, got %q", text)
	}
	if !strings.Contains(text, "benchduel") {
		t.Errorf("Expected header to contain the text, got %q", text)
	}
}
