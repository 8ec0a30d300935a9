package recommend

import (
	"strings"
	"testing"

	"github.com/autodinar/autodinar/internal/catalog"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(
		[]string{"Heavy Duty Car Battery 12V 70Ah"},
		"Renault Clio 2018",
		[]string{"Premium Ceramic Brake Pads (Front) (product, 5200.00 DZD)"},
	)

	for _, want := range []string{
		"Renault Clio 2018",
		"Heavy Duty Car Battery 12V 70Ah",
		"Premium Ceramic Brake Pads (Front)",
		"JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptNoHistory(t *testing.T) {
	prompt := BuildPrompt(nil, "", nil)
	if !strings.Contains(prompt, "no past orders") {
		t.Error("expected cold-start wording for empty history")
	}
	if strings.Contains(prompt, "Buyer vehicle") {
		t.Error("expected no vehicle line when unset")
	}
}

func TestCatalogLines(t *testing.T) {
	lines := CatalogLines(catalog.Default())
	if len(lines) != 12 {
		t.Fatalf("expected 12 catalog lines, got %d", len(lines))
	}
	found := false
	for _, l := range lines {
		if strings.Contains(l, "Timing Belt Replacement") && strings.Contains(l, "service") {
			found = true
		}
	}
	if !found {
		t.Error("expected timing belt service line")
	}

	if CatalogLines(nil) != nil {
		t.Error("expected nil lines for nil catalog")
	}
}

func TestParseNames(t *testing.T) {
	names, err := ParseNames(`["Brake Pads", "Engine Oil"]`)
	if err != nil {
		t.Fatalf("ParseNames() error: %v", err)
	}
	if len(names) != 2 || names[0] != "Brake Pads" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestParseNamesCodeFence(t *testing.T) {
	names, err := ParseNames("```json\n[\"Brake Pads\"]\n```")
	if err != nil {
		t.Fatalf("ParseNames() error: %v", err)
	}
	if len(names) != 1 || names[0] != "Brake Pads" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestParseNamesCapsAtFive(t *testing.T) {
	names, err := ParseNames(`["a","b","c","d","e","f","g"]`)
	if err != nil {
		t.Fatalf("ParseNames() error: %v", err)
	}
	if len(names) != 5 {
		t.Errorf("expected 5 names, got %d", len(names))
	}
}

func TestParseNamesDropsBlanks(t *testing.T) {
	names, err := ParseNames(`["Brake Pads", "  ", ""]`)
	if err != nil {
		t.Fatalf("ParseNames() error: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected blanks dropped, got %v", names)
	}
}

func TestParseNamesRejectsGarbage(t *testing.T) {
	if _, err := ParseNames("I recommend brake pads."); err == nil {
		t.Error("expected error for non-JSON response")
	}
}
