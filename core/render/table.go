package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"inventory-manager/core/utils"
)

// Table renders command output to a writer. It implements the inventory
// Display interface over plain text: column-aligned tables for listings and
// verbatim lines for everything else.
type Table struct {
	out io.Writer
}

// New creates a Table writing to out.
func New(out io.Writer) *Table {
	return &Table{out: out}
}

// Table writes rows under the given column headers. Headers are always
// printed, so an empty listing still shows its columns.
func (t *Table) Table(headers []string, rows [][]any) {
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, utils.ToString(cell))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// Print writes one line of plain output.
func (t *Table) Print(msg string) {
	fmt.Fprintln(t.out, msg)
}
