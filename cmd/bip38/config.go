package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config holds settings read from the environment. Flags override them.
type Config struct {
	Network        string `envconfig:"NETWORK" default:"mainnet"`
	PassphraseFile string `envconfig:"PASSPHRASE_FILE"`
}

// loadConfig reads BIP38_* environment variables.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("bip38", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// readPassphrase returns the passphrase from the configured file, from the
// terminal without echo, or from the first line of stdin.
func readPassphrase(cfg *Config, stdin *os.File) ([]byte, error) {
	if cfg.PassphraseFile != "" {
		data, err := os.ReadFile(cfg.PassphraseFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase file: %w", err)
		}
		return trimNewline(data), nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Enter passphrase: ")
		defer fmt.Fprintln(os.Stderr)
		raw, err := term.ReadPassword(int(stdin.Fd()))
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		return raw, nil
	}
	return readLine(stdin)
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return trimNewline(line), nil
}

func trimNewline(b []byte) []byte {
	s := strings.TrimRight(string(b), "\r\n")
	return b[:len(s)]
}
