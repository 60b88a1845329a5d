// ABOUTME: Batch step implementations
// ABOUTME: Sound recipe steps and external generator command steps
package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shadow-worker/soundgen/pkg/audio"
	"github.com/shadow-worker/soundgen/pkg/sounds"
)

// Step is one unit of batch work. Run returns a short description of what
// it produced, usually a file path.
type Step interface {
	Name() string
	Run(ctx context.Context) (string, error)
}

// SoundStep renders one recipe into the output root
type SoundStep struct {
	Recipe     sounds.Recipe
	Root       string
	SampleRate int
}

// SoundSteps creates one step per recipe
func SoundSteps(root string, sampleRate int, recipes []sounds.Recipe) []Step {
	steps := make([]Step, 0, len(recipes))
	for _, r := range recipes {
		steps = append(steps, &SoundStep{Recipe: r, Root: root, SampleRate: sampleRate})
	}
	return steps
}

func (s *SoundStep) Name() string { return s.Recipe.Name }

func (s *SoundStep) Run(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Dir(s.Recipe.OutputPath(s.Root))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", audio.ErrIO, dir, err)
	}

	return sounds.Write(s.Root, s.Recipe, s.SampleRate)
}

// CommandStep runs a sibling generator program, such as the sprite or
// font exporters, and fails when it exits non-zero
type CommandStep struct {
	StepName string
	Command  string
	Args     []string
	Dir      string
}

func (s *CommandStep) Name() string { return s.StepName }

func (s *CommandStep) Run(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Dir = s.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	commandLine := strings.TrimSpace(s.Command + " " + strings.Join(s.Args, " "))
	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", commandLine, err, msg)
		}
		return "", fmt.Errorf("%s: %w", commandLine, err)
	}

	if msg := lastLine(stdout.String()); msg != "" {
		return msg, nil
	}
	return commandLine, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
