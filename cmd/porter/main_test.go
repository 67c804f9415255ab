package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func runCLI(t *testing.T, o options, args []string, stdin string) (string, string) {
	t.Helper()
	if o.engine == "" {
		o.engine = "porter"
	}
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), o, args, strings.NewReader(stdin), &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	return stdout.String(), stderr.String()
}

func TestRunArguments(t *testing.T) {
	long := strings.Repeat("q", 32)
	out, _ := runCLI(t, options{}, []string{"caresses", "hopping", long}, "")

	want := "caresses -> CARESS\nhopping -> HOP\n" + long + " -> " + long + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunLowerCase(t *testing.T) {
	out, _ := runCLI(t, options{lower: true}, []string{"ponies"}, "")
	if out != "ponies -> poni\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunStdin(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		out, _ := runCLI(t, options{parallel: parallel}, nil, "relational\r\nmeetings\n\nsky")
		if out != "RELAT\nMEET\n\nSKY\n" {
			t.Errorf("parallel=%v: output = %q", parallel, out)
		}
	}
}

func TestRunDumpAndTrace(t *testing.T) {
	out, trace := runCLI(t, options{dump: true, trace: true}, []string{"hop"}, "")

	wantDump := "[ 0] 'H', measure = 0\n" +
		"[ 1] 'HO', measure = 0, hasVowel\n" +
		"[ 2] 'HOP', measure = 1, hasVowel, endsCVC\n" +
		"hop -> HOP\n"
	if out != wantDump {
		t.Errorf("output = %q, want %q", out, wantDump)
	}
	if !strings.HasPrefix(trace, "step1a() <- 'HOP'\n") || !strings.HasSuffix(trace, "stem -> 'HOP'\n") {
		t.Errorf("trace = %q", trace)
	}
}

func TestRunUnknownEngine(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), options{engine: "lancaster"}, []string{"cats"}, strings.NewReader(""), &stdout, &stderr)
	if err == nil {
		t.Fatal("run accepted an unknown engine")
	}
}
