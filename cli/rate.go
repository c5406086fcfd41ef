package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jdcardona/tripledger/output"
	"github.com/jdcardona/tripledger/rates"
	"github.com/jdcardona/tripledger/telemetry"
	"github.com/jdcardona/tripledger/trip"
)

// RateCmd looks up a single exchange rate outside a session, optionally
// converting an amount. Useful for sanity-checking the rate source.
type RateCmd struct {
	Currency string `arg:"" help:"Foreign currency code, e.g. usd."`
	Date     string `help:"Rate date (YYYY-MM-DD). Defaults to today."`
	Amount   string `help:"Amount to convert into the home currency."`

	HomeCurrency string        `help:"Home currency code." default:"cop"`
	BaseURL      string        `help:"Exchange-rate source base URL." default:"${rates_base_url}"`
	Timeout      time.Duration `help:"Timeout for each lookup attempt." default:"5s"`
}

func (cmd *RateCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	date, err := cmd.lookupDate()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	client := rates.NewClient(
		rates.WithBaseURL(cmd.BaseURL),
		rates.WithHomeCurrency(cmd.HomeCurrency),
		rates.WithHTTPClient(&http.Client{Timeout: cmd.Timeout}),
	)

	from := strings.ToUpper(cmd.Currency)
	home := strings.ToUpper(cmd.HomeCurrency)

	rate, err := client.Rate(runCtx, cmd.Currency, date)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}
	printInfof(ctx.Stdout, "1 %s = %s %s on %s", from, rate.String(), home, date)

	if cmd.Amount != "" {
		amount, err := trip.ParseAmount(cmd.Amount)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("%s %s = %s %s", amount.String(), from, amount.Mul(rate).Round(2).String(), home))
	}

	return nil
}

func (cmd *RateCmd) lookupDate() (trip.Date, error) {
	if cmd.Date == "" {
		now := time.Now().UTC()
		return trip.NewDate(now.Year(), now.Month(), now.Day()), nil
	}
	return trip.ParseDate(cmd.Date)
}
