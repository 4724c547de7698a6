// Package report renders DPX header information as plain-text tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vearutop/dpx"
)

// Describe writes the human-readable header summary, one key/value table per section.
func Describe(w io.Writer, m *dpx.Metadata) error {
	entries := dpx.Describe(m)
	for i := 0; i < len(entries); {
		section := entries[i].Section
		var pairs [][2]string
		for ; i < len(entries) && entries[i].Section == section; i++ {
			pairs = append(pairs, [2]string{entries[i].Label, entries[i].Value})
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", section); err != nil {
			return err
		}
		keyValueTable(w, pairs)
	}
	return nil
}

// Fields writes every header field with its offset, length, kind and decoded value.
// Raw fields are summarized by length.
func Fields(w io.Writer, m *dpx.Metadata) {
	table := newTable(w)
	table.SetHeader([]string{"Field", "Offset", "Length", "Kind", "Value"})
	table.SetColumnSeparator("")

	for _, f := range dpx.Fields() {
		v, _ := m.Lookup(f.Name)
		table.Append([]string{
			f.Name,
			strconv.FormatUint(uint64(f.Offset), 10),
			strconv.FormatUint(uint64(f.Length), 10),
			f.Kind.String(),
			formatValue(m, f, v),
		})
	}
	table.Render()
}

func formatValue(m *dpx.Metadata, f dpx.Field, v dpx.Value) string {
	switch f.Kind {
	case dpx.KindMagic, dpx.KindText:
		return strconv.Quote(m.TrimmedText(f.Name))
	case dpx.KindUint8, dpx.KindUint16, dpx.KindUint32:
		return strconv.FormatUint(uint64(v.Uint), 10)
	case dpx.KindFloat32:
		return strconv.FormatFloat(float64(v.Float), 'g', -1, 32)
	default:
		return fmt.Sprintf("%d bytes", len(v.Raw))
	}
}

func keyValueTable(w io.Writer, pairs [][2]string) {
	table := newTable(w)
	table.SetAutoFormatHeaders(false)
	table.SetColumnSeparator(":")
	for _, pair := range pairs {
		table.Append([]string{pair[0], pair[1]})
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
