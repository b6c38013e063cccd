package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// renderTable writes headers and rows as an aligned table.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

const barWidth = 40

// renderBars draws a horizontal bar per point, scaled to the series maximum.
func renderBars(w io.Writer, labels []string, values []float64) {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, v := range values {
		n := 0
		if max > 0 {
			n = int(v / max * barWidth)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.0f\n", labels[i], strings.Repeat("#", n), v)
	}
	_ = tw.Flush()
}
