package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/jdcardona/tripledger/output"
	"github.com/jdcardona/tripledger/report"
	"github.com/jdcardona/tripledger/trip"
)

func renderLines(buf *bytes.Buffer) []string {
	var lines []string
	for _, line := range bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n")) {
		lines = append(lines, string(line))
	}
	return lines
}

func breakdown(cash, cards int64) report.Breakdown {
	return report.Breakdown{
		Cash:  decimal.NewFromInt(cash),
		Cards: decimal.NewFromInt(cards),
		Total: decimal.NewFromInt(cash + cards),
	}
}

func TestRenderByDay_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderByDay(&buf, output.NewStyles(&buf), nil, "cop")
	assert.Equal(t, buf.String(), "  no expenses registered\n")
}

func TestRenderByDay_AlignedColumns(t *testing.T) {
	rows := []report.DaySummary{
		{Date: trip.NewDate(2025, time.June, 1), Breakdown: breakdown(20000, 30000)},
		{Date: trip.NewDate(2025, time.June, 2), Breakdown: breakdown(0, 1500)},
	}

	var buf bytes.Buffer
	renderByDay(&buf, output.NewStyles(&buf), rows, "cop")

	// A bytes.Buffer is not a terminal, so the output carries no escape
	// sequences and widths can be asserted directly.
	lines := renderLines(&buf)
	assert.Equal(t, len(lines), 3)
	assert.Equal(t, lines[0], "  DATE        CASH COP  CARDS COP  TOTAL COP")
	assert.Equal(t, lines[1], "  2025-06-01     20000      30000      50000")
	assert.Equal(t, lines[2], "  2025-06-02         0       1500       1500")
}

func TestRenderByDay_WideAmountsGrowColumns(t *testing.T) {
	rows := []report.DaySummary{
		{Date: trip.NewDate(2025, time.June, 1), Breakdown: breakdown(123456789, 0)},
	}

	var buf bytes.Buffer
	renderByDay(&buf, output.NewStyles(&buf), rows, "usd")

	lines := renderLines(&buf)
	assert.Equal(t, lines[0], "  DATE         CASH USD  CARDS USD  TOTAL USD")
	assert.Equal(t, lines[1], "  2025-06-01  123456789          0  123456789")
}

func TestRenderByCategory_AllCategoriesAndFooter(t *testing.T) {
	var rows []report.CategorySummary
	for _, c := range trip.Categories() {
		rows = append(rows, report.CategorySummary{Category: c, Breakdown: breakdown(0, 0)})
	}
	rows[0].Breakdown = breakdown(12000, 0)

	var buf bytes.Buffer
	renderByCategory(&buf, output.NewStyles(&buf), rows, breakdown(12000, 0), "cop")

	lines := renderLines(&buf)
	// Header, one row per category, totals footer.
	assert.Equal(t, len(lines), len(trip.Categories())+2)
	assert.Equal(t, lines[0], "  CATEGORY       CASH COP  CARDS COP  TOTAL COP")
	assert.Equal(t, lines[1], "  TRANSPORT         12000          0      12000")
	assert.Equal(t, lines[2], "  LODGING               0          0          0")
	assert.Equal(t, lines[len(lines)-1], "  TOTAL             12000          0      12000")
}
