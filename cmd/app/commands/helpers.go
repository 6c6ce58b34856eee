// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/allisson/sisyphus/internal/app"
	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// IOTuple holds reader and writers for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
	// ErrWriter receives interactive prompts so they never mix with command output.
	ErrWriter io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin, os.Stdout and os.Stderr.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// withDerivationTimeout bounds ctx by timeout; zero or less returns ctx unchanged.
// Callers start it once the passphrase has been read so prompting never eats into it.
func withDerivationTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ParseCounter converts a counter argument into a site counter.
// An empty value falls back to defaultCounter.
func ParseCounter(value string, defaultCounter int) (uint32, error) {
	if strings.TrimSpace(value) == "" {
		if defaultCounter < 0 || int64(defaultCounter) > int64(^uint32(0)) {
			return 0, fmt.Errorf("invalid default counter: %d", defaultCounter)
		}
		return uint32(defaultCounter), nil
	}

	counter, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid counter %q: must be an integer between 0 and %d", value, ^uint32(0))
	}
	return uint32(counter), nil
}

// ParsePasswordType converts a password type argument into a PasswordType.
// An empty value falls back to defaultType.
func ParsePasswordType(value, defaultType string) (cryptoDomain.PasswordType, error) {
	if strings.TrimSpace(value) == "" {
		value = defaultType
	}
	return cryptoDomain.ParsePasswordType(value)
}

// readPassphrase reads the master passphrase. A terminal is read without echo;
// anything else supplies the passphrase as its first line.
func readPassphrase(streams IOTuple, reader *bufio.Reader) (string, error) {
	if f, ok := terminal(streams.Reader); ok {
		if streams.ErrWriter != nil {
			_, _ = fmt.Fprint(streams.ErrWriter, "Master passphrase: ")
		}
		raw, err := term.ReadPassword(int(f.Fd()))
		if streams.ErrWriter != nil {
			_, _ = fmt.Fprintln(streams.ErrWriter)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
		passphrase := string(raw)
		cryptoDomain.Zero(raw)
		return passphrase, nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// terminal returns r as a file when it is an interactive terminal.
func terminal(r io.Reader) (*os.File, bool) {
	f, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}

// writeJSON writes value as indented JSON followed by a newline.
func writeJSON(writer io.Writer, value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(writer, string(jsonBytes))
	return err
}
