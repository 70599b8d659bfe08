package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"DEBUG", DEBUG, false},
		{"info", INFO, false},
		{"Warning", WARN, false},
		{"ERROR", ERROR, false},
		{"verbose", INFO, true},
	}

	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
		}
		if got != c.want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter("WARN", &buf)

	lg.Debug("hidden debug")
	lg.Info("hidden info")
	lg.Warn("shown warn %d", 1)
	lg.Errorf("shown error %s", "x")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("filtered levels leaked into output: %q", out)
	}
	if !strings.Contains(out, "[WARN] ") || !strings.Contains(out, "shown warn 1") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] ") || !strings.Contains(out, "shown error x") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestNamedSharesSink(t *testing.T) {
	var buf bytes.Buffer
	root := NewWithWriter("INFO", &buf)
	child := root.Named("mapreduce").Named("engine")

	child.Info("run started")

	if !strings.Contains(buf.String(), "mapreduce.engine: run started") {
		t.Fatalf("component prefix missing: %q", buf.String())
	}
	if child.Level() != INFO {
		t.Fatalf("child level = %s, want INFO", child.Level())
	}
}

func TestFields(t *testing.T) {
	got := Fields(map[string]interface{}{"run": "abc", "keys": 3, "inputs": 2})
	want := "inputs=2 keys=3 run=abc"
	if got != want {
		t.Fatalf("Fields = %q, want %q", got, want)
	}
}
