package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestLoadErrorMessage(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := NewLoadError("qa.xlsx", underlying)

	if !strings.Contains(err.Error(), "qa.xlsx") {
		t.Errorf("Error message should name the path: %s", err.Error())
	}
	if !stderrors.Is(err, underlying) {
		t.Error("LoadError should unwrap to the underlying error")
	}
}

func TestLoadErrorWithSheet(t *testing.T) {
	err := NewLoadError("qa.xlsx", fmt.Errorf("boom")).WithSheet("FAQ")

	if !strings.Contains(err.Error(), `sheet "FAQ"`) {
		t.Errorf("Error message should name the sheet: %s", err.Error())
	}
}

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("qa.csv", "answer")

	if err.Type != ErrorTypeMissingColumn {
		t.Errorf("Expected type %s, got %s", ErrorTypeMissingColumn, err.Type)
	}
	if !strings.Contains(err.Error(), `"answer"`) {
		t.Errorf("Error message should name the column: %s", err.Error())
	}
}

func TestLoadErrorAs(t *testing.T) {
	var err error = NewLoadError("qa.csv", fmt.Errorf("boom")).WithType(ErrorTypeFormat)

	var le *LoadError
	if !stderrors.As(err, &le) {
		t.Fatal("errors.As should find the LoadError")
	}
	if le.Type != ErrorTypeFormat {
		t.Errorf("Expected type %s, got %s", ErrorTypeFormat, le.Type)
	}
}

func TestConfigError(t *testing.T) {
	underlying := fmt.Errorf("out of range")
	err := NewConfigError("match.fuzzy_threshold", "101", underlying)

	if !strings.Contains(err.Error(), "match.fuzzy_threshold") {
		t.Errorf("Error message should name the field: %s", err.Error())
	}
	if !stderrors.Is(err, underlying) {
		t.Error("ConfigError should unwrap to the underlying error")
	}
}

func TestMultiError(t *testing.T) {
	e1 := fmt.Errorf("first")
	e2 := fmt.Errorf("second")

	multi := NewMultiError([]error{e1, nil, e2})
	if len(multi.Errors) != 2 {
		t.Fatalf("Expected nil errors filtered, got %d entries", len(multi.Errors))
	}
	if !stderrors.Is(multi, e1) || !stderrors.Is(multi, e2) {
		t.Error("MultiError should unwrap to every contained error")
	}

	single := NewMultiError([]error{e1})
	if single.Error() != "first" {
		t.Errorf("Single-error message should pass through, got %q", single.Error())
	}
}
