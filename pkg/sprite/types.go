package sprite

import "time"

// Config describes how to reach one sandbox through the sprite CLI.
type Config struct {
	Bin         string        // path to the sprite binary
	Org         string        // organization, passed as -o
	Sandbox     string        // sandbox name, passed as -s
	ExecTimeout time.Duration // default 120s
	CatTimeout  time.Duration // default 30s
}

// Result is the captured outcome of one process run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

const (
	DefaultExecTimeout = 120 * time.Second
	DefaultCatTimeout  = 30 * time.Second
)
