package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/sisyphus/internal/crypto/usecase"
)

// RunGenerate derives the password for one site. The master passphrase is read from
// the input stream and the password is written in either text or JSON format. The timeout
// starts once the passphrase has been read; zero disables it.
func RunGenerate(
	ctx context.Context,
	sitePasswordUseCase cryptoUseCase.SitePasswordUseCase,
	logger *slog.Logger,
	identity string,
	siteName string,
	counter uint32,
	passwordType cryptoDomain.PasswordType,
	format string,
	showKeyID bool,
	timeout time.Duration,
	streams IOTuple,
) error {
	passphrase, err := readPassphrase(streams, bufio.NewReader(streams.Reader))
	if err != nil {
		return err
	}

	ctx, cancel := withDerivationTimeout(ctx, timeout)
	defer cancel()

	logger.Debug("deriving site password",
		slog.String("site_name", siteName),
		slog.Uint64("counter", uint64(counter)),
		slog.String("password_type", passwordType.String()),
	)

	output, err := sitePasswordUseCase.Generate(ctx, &cryptoDomain.GenerateInput{
		Identity:     identity,
		Passphrase:   passphrase,
		SiteName:     siteName,
		Counter:      &counter,
		PasswordType: passwordType,
	})
	if err != nil {
		return fmt.Errorf("failed to generate site password: %w", err)
	}

	if format == "json" {
		return writeJSON(streams.Writer, output)
	}
	outputPasswordText(output, showKeyID, streams.Writer)
	return nil
}

// outputPasswordText outputs the password alone on a line, followed by the key ID if asked.
func outputPasswordText(output *cryptoDomain.GenerateOutput, showKeyID bool, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, output.Password)
	if showKeyID {
		_, _ = fmt.Fprintf(writer, "Key ID: %s\n", output.KeyID)
	}
}
