package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestHostsCommandListsKnownHosts(t *testing.T) {
	prevJSON := outputJSON
	defer func() { outputJSON = prevJSON }()
	outputJSON = false

	cmd := newHostsCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hosts command returned error: %v", err)
	}

	got := stdout.String()
	for _, host := range []string{"youtube.com", "twitch.tv", "vimeo.com"} {
		if !strings.Contains(got, host) {
			t.Fatalf("expected %q in output, got %q", host, got)
		}
	}
}

func TestHostsCommandJSONOutput(t *testing.T) {
	prevJSON := outputJSON
	defer func() { outputJSON = prevJSON }()
	outputJSON = true

	cmd := newHostsCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hosts command returned error: %v", err)
	}

	var hosts []string
	if err := json.Unmarshal(stdout.Bytes(), &hosts); err != nil {
		t.Fatalf("expected valid JSON, got %q: %v", stdout.String(), err)
	}
	if len(hosts) == 0 {
		t.Fatal("expected host entries")
	}
}

func TestHostsCheckUnsupported(t *testing.T) {
	prevJSON := outputJSON
	defer func() { outputJSON = prevJSON }()
	outputJSON = false

	cmd := newHostsCmd()
	cmd.SetArgs([]string{"check", "https://example.org/page"})
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unsupported host")
	}
}

func TestHostsCheckSupported(t *testing.T) {
	prevJSON := outputJSON
	defer func() { outputJSON = prevJSON }()
	outputJSON = false

	cmd := newHostsCmd()
	cmd.SetArgs([]string{"check", "https://www.youtube.com/watch?v=abc"})
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}
