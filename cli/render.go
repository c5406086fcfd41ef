package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"

	"github.com/jdcardona/tripledger/output"
	"github.com/jdcardona/tripledger/report"
)

// table is a minimal column-aligned renderer for report output. Widths are
// computed on the plain cell text; styles are applied after padding so ANSI
// escape sequences never skew the alignment.
type table struct {
	header []string
	rows   [][]string
	footer []string
}

func (t *table) render(w io.Writer, styles *output.Styles, styleRow func(cells []string, padded []string) []string) {
	widths := make([]int, len(t.header))
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = slices.Max([]int{widths[i], runewidth.StringWidth(cell)})
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	if t.footer != nil {
		measure(t.footer)
	}

	pad := func(cells []string) []string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i == 0 {
				// First column is left-aligned.
				padded[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
			} else {
				padded[i] = strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)) + cell
			}
		}
		return padded
	}

	writeLine := func(cells []string) {
		_, _ = fmt.Fprintln(w, "  "+strings.Join(cells, "  "))
	}

	headerCells := pad(t.header)
	for i, cell := range headerCells {
		headerCells[i] = styles.Header(cell)
	}
	writeLine(headerCells)

	for _, row := range t.rows {
		writeLine(styleRow(row, pad(row)))
	}
	if t.footer != nil {
		footerCells := pad(t.footer)
		for i, cell := range footerCells {
			footerCells[i] = styles.Header(cell)
		}
		writeLine(footerCells)
	}
}

// renderByDay writes the per-day report. Dates appear in first-seen order;
// days without expenses produce no row at all.
func renderByDay(w io.Writer, styles *output.Styles, rows []report.DaySummary, home string) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "  no expenses registered")
		return
	}

	home = strings.ToUpper(home)
	t := &table{header: []string{"DATE", "CASH " + home, "CARDS " + home, "TOTAL " + home}}
	for _, row := range rows {
		t.rows = append(t.rows, []string{
			row.Date.String(),
			row.Cash.String(),
			row.Cards.String(),
			row.Total.String(),
		})
	}

	t.render(w, styles, func(cells, padded []string) []string {
		padded[0] = styles.Date(padded[0])
		for i := 1; i < len(padded); i++ {
			padded[i] = styles.Amount(padded[i])
		}
		return padded
	})
}

// renderByCategory writes the per-category report, one row per category in
// enumeration order even when nothing was spent there, plus a totals footer.
func renderByCategory(w io.Writer, styles *output.Styles, rows []report.CategorySummary, overall report.Breakdown, home string) {
	home = strings.ToUpper(home)
	t := &table{header: []string{"CATEGORY", "CASH " + home, "CARDS " + home, "TOTAL " + home}}
	for _, row := range rows {
		t.rows = append(t.rows, []string{
			string(row.Category),
			row.Cash.String(),
			row.Cards.String(),
			row.Total.String(),
		})
	}
	t.footer = []string{"TOTAL", overall.Cash.String(), overall.Cards.String(), overall.Total.String()}

	t.render(w, styles, func(cells, padded []string) []string {
		padded[0] = styles.Category(padded[0])
		for i := 1; i < len(padded); i++ {
			padded[i] = styles.Amount(padded[i])
		}
		return padded
	})
}
