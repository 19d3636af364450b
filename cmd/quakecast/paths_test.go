package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ringnet/quakecast/internal/command"
	"github.com/ringnet/quakecast/internal/model"
)

const stumpArtifact = `{"kind":"decision_tree","n_features":12,"tree":{"children_left":[1,-1,-1],"children_right":[2,-1,-1],"feature":[0,-2,-2],"threshold":[0,-2,-2],"value":[0,4,6]}}`

// writeArtifacts stores a valid linear artifact under every name; non-artifact
// extensions get the same bytes and must be ignored.
func writeArtifacts(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		body := linearArtifact
		if model.EncodingFor(name) == model.EncodingYAML {
			body = "kind: linear\ncoefficients: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]\n"
		}
		writeRaw(t, dir, name, body)
	}
}

func writeRaw(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write file %s: %v", name, err)
	}
}

func withTTY(t *testing.T, tty bool) {
	t.Helper()
	prev := stdinIsTTY
	stdinIsTTY = func() bool { return tty }
	t.Cleanup(func() { stdinIsTTY = prev })
}

func TestDiscoverModelsSorted(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, "b.pkl", "a.json", "c.YAML", "d.yml", "ignore.txt")
	if err := os.Mkdir(filepath.Join(dir, "nested.pkl"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := discoverModels(dir)
	if err != nil {
		t.Fatalf("discoverModels returned error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.pkl"),
		filepath.Join(dir, "c.YAML"),
		filepath.Join(dir, "d.yml"),
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected model count: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Path != want[i] {
			t.Fatalf("unexpected ordering at %d: got %q want %q", i, got[i].Path, want[i])
		}
		if got[i].Err != nil || got[i].Info.Kind != "linear" {
			t.Fatalf("artifact %s: kind=%q err=%v", got[i].Path, got[i].Info.Kind, got[i].Err)
		}
	}
}

func TestDiscoverModelsReportsUndecodable(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "broken.pkl", "not json")
	writeArtifacts(t, dir, "good.pkl")

	got, err := discoverModels(dir)
	if err != nil {
		t.Fatalf("discoverModels returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected model count: got %d", len(got))
	}
	if got[0].Err == nil {
		t.Fatalf("expected decode error for broken.pkl")
	}
	if got[1].Err != nil {
		t.Fatalf("good.pkl: %v", got[1].Err)
	}
}

func TestDiscoverModelsRejectsFile(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, "model.pkl")

	if _, err := discoverModels(filepath.Join(dir, "model.pkl")); err == nil {
		t.Fatalf("expected error for a file path")
	}
	if _, err := discoverModels(" "); err == nil {
		t.Fatalf("expected error for an empty path")
	}
}

func TestResolveModelPath(t *testing.T) {
	t.Run("model flag bypasses env", func(t *testing.T) {
		t.Setenv(envModelsDir, t.TempDir())
		got, err := resolveModelPath("/tmp/model.pkl", "", bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if got != filepath.Clean("/tmp/model.pkl") {
			t.Fatalf("unexpected model path: got %q", got)
		}
	})

	t.Run("falls back to working directory default", func(t *testing.T) {
		t.Setenv(envModelsDir, "")
		got, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if got != command.DefaultModelPath {
			t.Fatalf("unexpected model path: got %q want %q", got, command.DefaultModelPath)
		}
	})

	t.Run("models path flag wins over env", func(t *testing.T) {
		flagDir := t.TempDir()
		envDir := t.TempDir()
		writeArtifacts(t, flagDir, "flag.pkl")
		writeArtifacts(t, envDir, "env.pkl")
		t.Setenv(envModelsDir, envDir)

		got, err := resolveModelPath("", flagDir, bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if want := filepath.Join(flagDir, "flag.pkl"); got != want {
			t.Fatalf("unexpected model path: got %q want %q", got, want)
		}
	})

	t.Run("single model selects automatically", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir, "only.pkl")
		t.Setenv(envModelsDir, dir)
		withTTY(t, false)

		got, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "only.pkl"); got != want {
			t.Fatalf("unexpected model path: got %q want %q", got, want)
		}
	})

	t.Run("undecodable artifacts are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeRaw(t, dir, "a.pkl", "garbage")
		writeArtifacts(t, dir, "b.pkl")
		t.Setenv(envModelsDir, dir)
		withTTY(t, false)

		got, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "b.pkl"); got != want {
			t.Fatalf("unexpected model path: got %q want %q", got, want)
		}
	})

	t.Run("only undecodable artifacts is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeRaw(t, dir, "a.pkl", "garbage")
		t.Setenv(envModelsDir, dir)

		_, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard)
		if err == nil || !strings.Contains(err.Error(), "no loadable model") {
			t.Fatalf("expected no loadable model error, got %v", err)
		}
	})

	t.Run("empty directory is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir, "notes.txt")
		t.Setenv(envModelsDir, dir)

		if _, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard); err == nil {
			t.Fatalf("expected error when no artifacts are present")
		}
	})

	t.Run("multiple models requires tty", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir, "a.pkl", "b.pkl")
		t.Setenv(envModelsDir, dir)
		withTTY(t, false)

		if _, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard); err == nil {
			t.Fatalf("expected error when multiple models and stdin is not a tty")
		}
	})

	t.Run("interactive selection chooses sorted index", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir, "b.pkl")
		writeRaw(t, dir, "a.pkl", stumpArtifact)
		t.Setenv(envModelsDir, dir)
		withTTY(t, true)

		var prompts bytes.Buffer
		got, err := resolveModelPath("", "", bytes.NewBufferString("2\n"), &prompts)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "b.pkl"); got != want {
			t.Fatalf("unexpected model selection: got %q want %q", got, want)
		}
		for _, want := range []string{"1. a.pkl (decision_tree, 12 features)", "2. b.pkl (linear, 12 features)"} {
			if !strings.Contains(prompts.String(), want) {
				t.Fatalf("picker missing %q:\n%s", want, prompts.String())
			}
		}
	})

	t.Run("interactive selection retries invalid input", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir, "a.pkl", "b.pkl")
		t.Setenv(envModelsDir, dir)
		withTTY(t, true)

		var prompts bytes.Buffer
		got, err := resolveModelPath("", "", bytes.NewBufferString("9\nx\n1\n"), &prompts)
		if err != nil {
			t.Fatalf("resolveModelPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "a.pkl"); got != want {
			t.Fatalf("unexpected model selection: got %q want %q", got, want)
		}
		if !bytes.Contains(prompts.Bytes(), []byte(`invalid selection "9"`)) {
			t.Fatalf("expected invalid selection prompt, got %q", prompts.String())
		}
	})

	t.Run("interactive selection without input fails", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir, "a.pkl", "b.pkl")
		t.Setenv(envModelsDir, dir)
		withTTY(t, true)

		if _, err := resolveModelPath("", "", bytes.NewBuffer(nil), io.Discard); err == nil {
			t.Fatalf("expected error on empty stdin")
		}
	})
}
