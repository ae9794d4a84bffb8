package model_test

import (
	"testing"

	"tradelens/internal/model"
)

func TestFiscalYearValid(t *testing.T) {
	t.Parallel()

	valid := []string{"2081/082", "2074/075"}
	for _, s := range valid {
		if !model.FiscalYear(s).Valid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []string{"", "2081-082", "2081/0822", "81/082", "2081/82"}
	for _, s := range invalid {
		if model.FiscalYear(s).Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestFiscalYearFileBase(t *testing.T) {
	t.Parallel()

	if got := model.FiscalYear("2081/082").FileBase(); got != "2081-082" {
		t.Fatalf("FileBase=%q, want 2081-082", got)
	}
}

func TestFiscalYearADLabel(t *testing.T) {
	t.Parallel()

	if got := model.FiscalYear("2081/082").ADLabel(); got != "2024/25" {
		t.Fatalf("ADLabel=%q, want 2024/25", got)
	}
	// Unknown years fall through unchanged.
	if got := model.FiscalYear("2099/100").ADLabel(); got != "2099/100" {
		t.Fatalf("ADLabel=%q, want the BS label back", got)
	}
}
