package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunListTypes(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, RunListTypes(&out, "text"))

		lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
		require.Len(t, lines, 7)
		require.Contains(t, string(lines[0]), "TEMPLATES")
		require.Contains(t, out.String(), "anoxxxxxxxxxxxxxxxxx")
		require.Contains(t, out.String(), "nnnn")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, RunListTypes(&out, "json"))

		var decoded []passwordTypeInfo
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 6)
		require.Equal(t, "maximum", decoded[0].Name)
		require.Equal(t, "long", decoded[1].Name)
		require.Len(t, decoded[1].Templates, 21)
		require.Equal(t, []string{"nnnn"}, decoded[5].Templates)
	})
}
