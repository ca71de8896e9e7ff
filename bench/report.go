package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the report rendering.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
	}
}

// Write renders the report to w.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("Report.Write: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("Report.Write: %w", err)
		}
		return nil
	case FormatTable:
		return r.writeTable(w)
	default:
		return fmt.Errorf("Report.Write: %q: %w", f, ErrUnknownFormat)
	}
}

func (r *Report) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GRAPH\tN\tSAT\tEDGES\tRUNS\tEULER\tEULER MEAN\tHAMILTON\tHAMILTON MEAN\tEXPANSIONS\tMISMATCHES")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%g\t%d\t%d\t%d/%d\t%s\t%s\t%s\t%d\t%d\n",
			row.Graph, row.Nodes, row.Saturation, row.Edges, row.Runs,
			row.EulerFound, row.Runs, row.EulerMean,
			hamiltonCell(row), row.HamiltonMean, row.MeanExpansions, row.Mismatches)
	}
	return tw.Flush()
}

// hamiltonCell renders found/absent counts, flagging timeouts.
func hamiltonCell(row Row) string {
	s := fmt.Sprintf("%d found, %d absent", row.HamiltonFound, row.HamiltonAbsent)
	if row.Inconclusive() {
		s += fmt.Sprintf(", %d timeout (inconclusive)", row.HamiltonTimeouts)
	}
	return s
}
