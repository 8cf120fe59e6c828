package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/hierdoc/go-hierdoc/docmodel"
	"github.com/hierdoc/go-hierdoc/internal/logger"
)

// readInput reads a document from a file path, or from stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// loadModel loads path into a fresh model, sniffing the format when format
// is empty.
func loadModel(path, format string) (*docmodel.Model, error) {
	text, err := readInput(path)
	if err != nil {
		return nil, err
	}
	m := docmodel.New(docmodel.DefaultRegistry())
	if err := m.Load(text, format); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// writeOutput writes text back to the file, or to out for "-".
func writeOutput(out io.Writer, path, text string) error {
	if path == "-" {
		_, err := io.WriteString(out, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// newLogger builds the command logger; verbose enables debug lines.
func newLogger(verbose bool) *logger.Logger {
	if verbose {
		return logger.NewWithLevel(os.Stderr, log.DebugLevel)
	}
	return logger.NewWithLevel(os.Stderr, log.WarnLevel)
}
