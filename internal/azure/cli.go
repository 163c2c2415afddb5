package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an Azure CLI command and returns its standard output.
// Implementations report a non-zero subprocess exit as an error carrying
// whatever diagnostic text the CLI wrote to standard error.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CLIRunner invokes the az binary as a subprocess.
type CLIRunner struct {
	binary string
}

// NewCLIRunner creates a runner for the az binary found on PATH.
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{binary: "az"}
}

// Run implements Runner
func (r *CLIRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("az %s: %s", strings.Join(args, " "), detail)
	}

	return bytes.TrimSpace(stdout.Bytes()), nil
}

// runJSON executes an az command with JSON output and decodes the result into v.
func runJSON(ctx context.Context, r Runner, v interface{}, args ...string) error {
	out, err := r.Run(ctx, append(args, "--output", "json")...)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return fmt.Errorf("az %s: empty response", strings.Join(args, " "))
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("az %s: decoding response: %w", strings.Join(args, " "), err)
	}
	return nil
}

// runTSV executes an az command with TSV output and returns the trimmed result.
func runTSV(ctx context.Context, r Runner, args ...string) (string, error) {
	out, err := r.Run(ctx, append(args, "--output", "tsv")...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
