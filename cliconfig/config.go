// Package cliconfig parses the fixed set of flags this process accepts
// and separates them from the forwarded plugin argument list that the
// binder walks. No generic flag-parsing library models a
// monitoring-plugin-style trailing-vararg CLI (every flag from any
// position may precede the forwarded list, and forwarded tokens may
// themselves look like flags), so the split is hand-written.
package cliconfig

import (
	"errors"
	"strconv"
)

// Config holds the process's own flags and their defaults.
type Config struct {
	Host     string
	Port     uint64
	Command  string
	Insecure bool
	Timeout  uint64
}

// Default returns a Config with its documented default flag values.
func Default() Config {
	return Config{
		Host:    "localhost",
		Port:    5668,
		Timeout: 60,
	}
}

// ErrMissingCommand is returned when -c/--command was not given.
var ErrMissingCommand = errors.New("cliconfig: -c/--command is required")

// Parse scans args for the five declared flags, consuming one following
// token as the value of every flag but --insecure (a bare switch).
// Every other token, in original relative order, becomes the forwarded
// argument list: everything after --, or everything that isn't one of
// the recognised flags or their values. The literal token "--"
// explicitly starts the forwarded list regardless of what precedes it.
func Parse(args []string) (Config, []string, error) {
	cfg := Default()
	var forwarded []string

	takeValue := func(i int) (string, int, error) {
		if i+1 >= len(args) {
			return "", i, errors.New("cliconfig: flag " + args[i] + " requires a value")
		}
		return args[i+1], i + 1, nil
	}

argLoop:
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--":
			forwarded = append(forwarded, args[i+1:]...)
			break argLoop
		case "--host":
			v, next, err := takeValue(i)
			if err != nil {
				return cfg, nil, err
			}
			cfg.Host = v
			i = next
		case "-p", "--port":
			v, next, err := takeValue(i)
			if err != nil {
				return cfg, nil, err
			}
			p, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return cfg, nil, errors.New("cliconfig: invalid --port value " + v)
			}
			cfg.Port = p
			i = next
		case "-c", "--command":
			v, next, err := takeValue(i)
			if err != nil {
				return cfg, nil, err
			}
			cfg.Command = v
			i = next
		case "--insecure":
			cfg.Insecure = true
		case "--timeout":
			v, next, err := takeValue(i)
			if err != nil {
				return cfg, nil, err
			}
			t, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return cfg, nil, errors.New("cliconfig: invalid --timeout value " + v)
			}
			cfg.Timeout = t
			i = next
		default:
			forwarded = append(forwarded, args[i])
		}
	}

	if cfg.Command == "" {
		return cfg, nil, ErrMissingCommand
	}
	return cfg, forwarded, nil
}
