package commands

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/sisyphus/internal/crypto/usecase"
)

// RunBatch derives passwords for many sites under one identity. After the master
// passphrase, the input stream holds one request per line as site[,counter[,type]].
// Missing counters and types fall back to the given defaults. Results are written as
// tab separated lines or a JSON array, in request order. Error line numbers count every
// line of the input stream, including the passphrase when it was read from the stream.
// The timeout starts once all requests have been read; zero disables it.
func RunBatch(
	ctx context.Context,
	sitePasswordUseCase cryptoUseCase.SitePasswordUseCase,
	logger *slog.Logger,
	identity string,
	defaultCounter int,
	defaultType string,
	format string,
	timeout time.Duration,
	streams IOTuple,
) error {
	reader := bufio.NewReader(streams.Reader)

	passphrase, err := readPassphrase(streams, reader)
	if err != nil {
		return err
	}

	firstLine := 2
	if _, ok := terminal(streams.Reader); ok {
		firstLine = 1
	}

	inputs, err := parseBatchRequests(reader, firstLine, identity, passphrase, defaultCounter, defaultType)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no site requests provided")
	}

	logger.Debug("deriving site passwords", slog.Int("requests", len(inputs)))

	ctx, cancel := withDerivationTimeout(ctx, timeout)
	defer cancel()

	outputs, err := sitePasswordUseCase.GenerateBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to generate site passwords: %w", err)
	}

	if format == "json" {
		return writeJSON(streams.Writer, outputs)
	}
	for _, output := range outputs {
		_, _ = fmt.Fprintf(streams.Writer, "%s\t%d\t%s\t%s\n",
			output.SiteName, output.Counter, output.PasswordType, output.Password)
	}
	return nil
}

// parseBatchRequests reads comma separated requests. Blank lines and lines starting
// with '#' are skipped; site names containing commas may be double quoted. firstLine is
// the input line number the reader starts at.
func parseBatchRequests(
	reader io.Reader,
	firstLine int,
	identity, passphrase string,
	defaultCounter int,
	defaultType string,
) ([]*cryptoDomain.GenerateInput, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true
	csvReader.LazyQuotes = true

	var inputs []*cryptoDomain.GenerateInput
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read site requests: %w", err)
		}

		line, _ := csvReader.FieldPos(0)
		line += firstLine - 1
		if len(record) > 3 {
			return nil, fmt.Errorf("line %d: expected site[,counter[,type]], got %d fields", line, len(record))
		}

		var counterValue, typeValue string
		if len(record) > 1 {
			counterValue = record[1]
		}
		if len(record) > 2 {
			typeValue = record[2]
		}

		counter, err := ParseCounter(counterValue, defaultCounter)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		passwordType, err := ParsePasswordType(typeValue, defaultType)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		inputs = append(inputs, &cryptoDomain.GenerateInput{
			Identity:     identity,
			Passphrase:   passphrase,
			SiteName:     strings.TrimSpace(record[0]),
			Counter:      &counter,
			PasswordType: passwordType,
		})
	}

	return inputs, nil
}
