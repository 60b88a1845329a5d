package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/shadow-worker/soundgen/internal/config"
	"github.com/shadow-worker/soundgen/pkg/audio/decode"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "soundgen.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestGenerateWritesBuiltins(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "workers = 2\n")
	out := filepath.Join(dir, "resources")

	stdout, err := execute(t, "generate",
		"--config", cfgPath,
		"--log-file", filepath.Join(dir, "soundgen.log"),
		"--out", out,
	)
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, stdout)
	}

	for _, name := range []string{"footstep", "ambient", "interact"} {
		path := filepath.Join(out, "sounds", name+".wav")
		_, info, err := decode.WAVFile(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Format.SampleRate != 44100 {
			t.Errorf("%s: expected 44100 Hz, got %d", name, info.Format.SampleRate)
		}
		if !strings.Contains(stdout, name) {
			t.Errorf("summary does not mention %s:\n%s", name, stdout)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "soundgen.log")); err != nil {
		t.Errorf("expected log file: %v", err)
	}
}

func TestGenerateNamedRecipe(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "")
	out := filepath.Join(dir, "out")

	_, err := execute(t, "generate", "footstep",
		"--config", cfgPath,
		"--log-file", filepath.Join(dir, "soundgen.log"),
		"--out", out,
		"--sample-rate", "8000",
	)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	buf, _, err := decode.WAVFile(filepath.Join(out, "sounds", "footstep.wav"))
	if err != nil {
		t.Fatalf("decode footstep: %v", err)
	}
	if buf.Len() != 1200 {
		t.Errorf("expected 1200 samples at 8 kHz, got %d", buf.Len())
	}
	if _, err := os.Stat(filepath.Join(out, "sounds", "ambient.wav")); !os.IsNotExist(err) {
		t.Errorf("ambient should not be generated, stat err = %v", err)
	}
}

func TestGenerateReportsFailedExternal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `
[[external]]
name = "sprites"
command = "sh"
args = ["-c", "echo missing palette >&2; exit 3"]
`)
	out := filepath.Join(dir, "out")

	stdout, err := execute(t, "generate",
		"--config", cfgPath,
		"--log-file", filepath.Join(dir, "soundgen.log"),
		"--out", out,
	)
	if err == nil {
		t.Fatal("expected an error for the failing external step")
	}
	if !strings.Contains(err.Error(), "1 of 4 steps failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "sprites") || !strings.Contains(err.Error(), "missing palette") {
		t.Errorf("error should name the step and its stderr: %v", err)
	}
	if !strings.Contains(stdout, "FAILED") {
		t.Errorf("summary should mark the failure:\n%s", stdout)
	}

	// Independent steps still ran
	if _, err := os.Stat(filepath.Join(out, "sounds", "ambient.wav")); err != nil {
		t.Errorf("ambient should exist after a failed sibling: %v", err)
	}
}

func TestGenerateUnknownRecipe(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "")

	_, err := execute(t, "generate", "explosion",
		"--config", cfgPath,
		"--out", filepath.Join(dir, "out"),
	)
	if err == nil || !strings.Contains(err.Error(), `unknown recipe "explosion"`) {
		t.Fatalf("expected unknown recipe error, got %v", err)
	}
}

func TestGenerateRejectsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "")

	_, err := execute(t, "generate",
		"--config", cfgPath,
		"--out", filepath.Join(dir, "out"),
		"--sample-rate=-1",
	)
	if err == nil || !strings.Contains(err.Error(), "sample_rate") {
		t.Fatalf("expected sample_rate validation error, got %v", err)
	}
}

func TestBuildSteps(t *testing.T) {
	cfg, err := config.Parse([]byte(config.SampleConfig()))
	if err != nil {
		t.Fatalf("parse sample config: %v", err)
	}

	tests := []struct {
		name         string
		names        []string
		skipExternal bool
		want         []string
	}{
		{"full batch", nil, false, []string{"footstep", "ambient", "interact", "pickup", "sprites"}},
		{"skip external", nil, true, []string{"footstep", "ambient", "interact", "pickup"}},
		{"named only", []string{"pickup", "footstep"}, false, []string{"pickup", "footstep"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := buildSteps(cfg, tt.names, tt.skipExternal)
			if err != nil {
				t.Fatalf("buildSteps() failed: %v", err)
			}
			var got []string
			for _, s := range steps {
				got = append(got, s.Name())
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestListShowsRecipes(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, config.SampleConfig())

	stdout, err := execute(t, "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"footstep", "ambient", "interact", "pickup", "100Hz@0.5 + 400Hz@0.2", "normalize(0.7)", "sounds/pickup.wav"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output missing %q:\n%s", want, stdout)
		}
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "")
	out := filepath.Join(dir, "out")
	if _, err := execute(t, "generate", "ambient",
		"--config", cfgPath,
		"--log-file", filepath.Join(dir, "soundgen.log"),
		"--out", out,
	); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	stdout, err := execute(t, "inspect", filepath.Join(out, "sounds", "ambient.wav"))
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{"44100 Hz / 1 ch / 16 bit", "220500", "5s", "0.7000", "-3.1"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("inspect output missing %q:\n%s", want, stdout)
		}
	}

	if _, err := execute(t, "inspect", filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestConfigSample(t *testing.T) {
	stdout, err := execute(t, "config", "sample")
	if err != nil {
		t.Fatalf("config sample failed: %v", err)
	}
	if stdout != config.SampleConfig() {
		t.Error("config sample should print the embedded sample verbatim")
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "soundgen ") {
		t.Errorf("unexpected version output %q", stdout)
	}
}

func TestFormatDBFS(t *testing.T) {
	tests := []struct {
		peak float64
		want string
	}{
		{1.0, "0.0"},
		{0.5, "-6.0"},
		{0, "-inf"},
	}
	for _, tt := range tests {
		if got := formatDBFS(tt.peak); got != tt.want {
			t.Errorf("formatDBFS(%v) = %q, want %q", tt.peak, got, tt.want)
		}
	}
}
