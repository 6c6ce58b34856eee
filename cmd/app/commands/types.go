package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

type passwordTypeInfo struct {
	Name      string   `json:"name"`
	Templates []string `json:"templates"`
}

// RunListTypes lists every password type with its template table.
func RunListTypes(writer io.Writer, format string) error {
	infos := make([]passwordTypeInfo, 0, len(cryptoDomain.PasswordTypes()))
	for _, passwordType := range cryptoDomain.PasswordTypes() {
		templates, err := passwordType.Templates()
		if err != nil {
			return err
		}
		infos = append(infos, passwordTypeInfo{Name: passwordType.String(), Templates: templates})
	}

	if format == "json" {
		return writeJSON(writer, infos)
	}

	w := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TYPE\tLENGTH\tTEMPLATES")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", info.Name, len(info.Templates[0]), strings.Join(info.Templates, " "))
	}
	return w.Flush()
}
