package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	noOpMetrics.RecordOperation(context.Background(), "derivation", "generate", "success")
	noOpMetrics.RecordDuration(context.Background(), "derivation", "generate", time.Second, "error")
	noOpMetrics.RecordMasterKeysDerived(context.Background(), "generate_batch", 3)
}

func TestBusinessMetrics_Textfile(t *testing.T) {
	provider, err := NewProvider("textfile_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "textfile_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "derivation", "generate", "success")
	bm.RecordOperation(ctx, "derivation", "generate", "success")
	bm.RecordOperation(ctx, "derivation", "generate", "error")
	bm.RecordOperation(ctx, "derivation", "generate_batch", "success")

	bm.RecordDuration(ctx, "derivation", "generate", 900*time.Millisecond, "success")
	bm.RecordDuration(ctx, "derivation", "generate", 1100*time.Millisecond, "success")
	bm.RecordDuration(ctx, "derivation", "generate_batch", 3*time.Second, "success")

	bm.RecordMasterKeysDerived(ctx, "generate", 1)
	bm.RecordMasterKeysDerived(ctx, "generate", 1)
	bm.RecordMasterKeysDerived(ctx, "generate_batch", 3)
	bm.RecordMasterKeysDerived(ctx, "generate_batch", 0)

	path := filepath.Join(t.TempDir(), "sisyphus.prom")
	require.NoError(t, provider.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	output := string(raw)

	assert.Contains(t, output, `service_name="textfile_test"`)

	assertBizMetricLine(
		t,
		output,
		`textfile_test_operations_total`,
		`domain="derivation".*operation="generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`textfile_test_operations_total`,
		`domain="derivation".*operation="generate".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`textfile_test_operations_total`,
		`domain="derivation".*operation="generate_batch".*status="success"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`textfile_test_operation_duration_seconds_count`,
		`domain="derivation".*operation="generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`textfile_test_operation_duration_seconds_sum`,
		`domain="derivation".*operation="generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`textfile_test_master_keys_derived_total`,
		`operation="generate"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`textfile_test_master_keys_derived_total`,
		`operation="generate_batch"`,
		`3`,
	)
}
