package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		LogLevel:    "info",
		Environment: "test",
		Method:      "cwt",
		MinWidth:    2,
		MaxWidth:    10,
		MinSNR:      10,
	}
}

func writeTrace(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("# single gaussian\n")
	for i := 0; i < 200; i++ {
		d := (float64(i) - 50) / 2
		fmt.Fprintf(&b, "%d;%g\n", i, 10*math.Exp(-0.5*d*d))
	}
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write trace: %v", err)
	}
	return path
}

func TestRunDemoCSV(t *testing.T) {
	var out bytes.Buffer
	if err := run(testConfig(), []string{"-demo", "-format", "csv"}, nil, &out, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("expected header and peaks, got %v", records)
	}
	if records[0][0] != "top" {
		t.Fatalf("header = %v", records[0])
	}

	found := false
	for _, rec := range records[1:] {
		top, err := strconv.Atoi(rec[0])
		if err != nil {
			t.Fatalf("top %q: %v", rec[0], err)
		}
		if top >= 118 && top <= 122 {
			found = true
		}
	}
	if !found {
		t.Fatalf("no peak near 120 in %v", records)
	}
}

func TestRunDemoZScore(t *testing.T) {
	var out bytes.Buffer
	if err := run(testConfig(), []string{"-demo", "-method", "zscore", "-format", "csv"}, nil, &out, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines < 2 {
		t.Fatalf("expected peaks, got %q", out.String())
	}
}

func TestRunFileColumn(t *testing.T) {
	path := writeTrace(t)

	var out bytes.Buffer
	if err := run(testConfig(), []string{"-column", "1", path}, nil, &out, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, rule and one peak, got %q", out.String())
	}
	if fields := strings.Fields(lines[2]); fields[0] != "50" || fields[3] != "5" {
		t.Fatalf("peak row = %q, want top 50 width 5", lines[2])
	}
}

func TestRunFileBinned(t *testing.T) {
	path := writeTrace(t)

	var out bytes.Buffer
	if err := run(testConfig(), []string{"-column", "1", "-fill", "-bin", "100", path}, nil, &out, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and two bins, got %q", out.String())
	}
	if top := strings.Fields(lines[2])[0]; top != "50" {
		t.Fatalf("first bin top = %s, want 50", top)
	}
	if top := strings.Fields(lines[3])[0]; top != "100" {
		t.Fatalf("empty bin top = %s, want 100", top)
	}
}

func TestRunStdin(t *testing.T) {
	in := strings.NewReader("0\n0\n0\n")
	var out bytes.Buffer
	if err := run(testConfig(), nil, in, &out, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Top") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	path := writeTrace(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown method", []string{"-method", "fft", path}},
		{"unknown format", []string{"-format", "xml", path}},
		{"unknown height", []string{"-height", "top", path}},
		{"two files", []string{path, path}},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.csv")}},
		{"bad column", []string{"-column", "5", path}},
		{"bad widths", []string{"-min-width", "8", "-max-width", "4", path}},
		{"bad flag", []string{"-nope"}},
		{"bad bins", []string{"-bin", "10", "-per-bin", "0", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(testConfig(), tt.args, nil, &out, zap.NewNop()); err == nil {
				t.Fatalf("expected error, got output %q", out.String())
			}
		})
	}
}
