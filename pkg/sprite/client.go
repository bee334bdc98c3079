package sprite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Client runs commands inside a sandbox via "sprite exec".
type Client struct {
	cfg    Config
	runner Runner
}

// New creates a sprite client. A nil runner uses os/exec.
func New(cfg Config, runner Runner) *Client {
	if cfg.ExecTimeout <= 0 {
		cfg.ExecTimeout = DefaultExecTimeout
	}
	if cfg.CatTimeout <= 0 {
		cfg.CatTimeout = DefaultCatTimeout
	}
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Client{cfg: cfg, runner: runner}
}

func (c *Client) baseArgs() []string {
	return []string{"-o", c.cfg.Org, "-s", c.cfg.Sandbox, "exec"}
}

// Exec runs cmd under "bash -c" in the sandbox. Output that parses as JSON is
// returned even when the process exits non-zero.
func (c *Client) Exec(ctx context.Context, cmd string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ExecTimeout)
	defer cancel()

	args := append(c.baseArgs(), "bash", "-c", cmd)
	res, err := c.runner.Run(ctx, c.cfg.Bin, args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("sprite exec timed out after %s", c.cfg.ExecTimeout)
		}
		return "", fmt.Errorf("sprite exec: %w", err)
	}

	out := strings.TrimSpace(res.Stdout)
	if out != "" && json.Valid([]byte(out)) {
		return out, nil
	}
	if res.ExitCode != 0 {
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			return "", errors.New(msg)
		}
		if out != "" {
			return "", errors.New(out)
		}
		return "", errors.New("sprite exec failed")
	}
	return out, nil
}

// Cat returns the raw contents of a file inside the sandbox.
func (c *Client) Cat(ctx context.Context, remotePath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CatTimeout)
	defer cancel()

	args := append(c.baseArgs(), "cat", remotePath)
	res, err := c.runner.Run(ctx, c.cfg.Bin, args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("failed to read %s: timed out after %s", remotePath, c.cfg.CatTimeout)
		}
		return "", fmt.Errorf("failed to read %s: %w", remotePath, err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("failed to read %s: %s", remotePath, res.Stderr)
	}
	return res.Stdout, nil
}
