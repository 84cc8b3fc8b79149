// conformance_test.go: end-to-end fixtures driven from testdata/conformance.yaml.
//
// Each case runs a whole program through a fresh session and checks the
// captured print output and the number (and optionally content) of reported
// diagnostics. Fixtures live in YAML so new language-level cases can be added
// without touching Go code.
package lox

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type conformanceCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`

	// Errors is the expected number of reported diagnostics (0 if absent).
	Errors int `yaml:"errors"`
	// ErrorContains, when set, must appear in the joined diagnostics.
	ErrorContains string `yaml:"error_contains"`
	// Runtime marks the expected failure kind for exit-code policy checks.
	Runtime bool `yaml:"runtime"`
}

type conformanceFile struct {
	Cases []conformanceCase `yaml:"cases"`
}

func Test_Conformance(t *testing.T) {
	raw, err := os.ReadFile("testdata/conformance.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var file conformanceFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(file.Cases) == 0 {
		t.Fatal("no fixture cases")
	}

	for _, tc := range file.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			var out, diag strings.Builder
			sess := NewSession(&out, NewReporter(&diag))
			had := sess.Run(tc.Source)

			if got := out.String(); got != tc.Output {
				t.Fatalf("output:\nwant %q\ngot  %q", tc.Output, got)
			}

			nDiags := 0
			if diag.Len() > 0 {
				nDiags = strings.Count(diag.String(), "\n")
			}
			if nDiags != tc.Errors {
				t.Fatalf("want %d diagnostics, got %d:\n%s", tc.Errors, nDiags, diag.String())
			}
			if had != (tc.Errors > 0) {
				t.Fatalf("Run returned %v with %d expected errors", had, tc.Errors)
			}
			if tc.ErrorContains != "" && !strings.Contains(diag.String(), tc.ErrorContains) {
				t.Fatalf("diagnostics missing %q:\n%s", tc.ErrorContains, diag.String())
			}
			if tc.Runtime != sess.HadRuntimeError() {
				t.Fatalf("runtime flag: want %v, got %v", tc.Runtime, sess.HadRuntimeError())
			}
		})
	}
}
