package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdcardona/tripledger/output"
	"github.com/jdcardona/tripledger/rates"
	"github.com/jdcardona/tripledger/registrar"
	"github.com/jdcardona/tripledger/report"
	"github.com/jdcardona/tripledger/telemetry"
	"github.com/jdcardona/tripledger/trip"
)

// SessionCmd runs the interactive console: one trip per session, expenses
// registered against it, reports on demand. Session state lives and dies
// with the process; nothing is persisted.
type SessionCmd struct {
	HomeCurrency string        `help:"Home currency code all expenses are reported in." default:"cop"`
	BaseURL      string        `help:"Exchange-rate source base URL." default:"${rates_base_url}"`
	Timeout      time.Duration `help:"Timeout for each rate lookup attempt." default:"5s"`
}

// Menu actions, in display order.
const (
	actionRegister = "register"
	actionClose    = "close"
	actionDaily    = "daily"
	actionCategory = "category"
	actionQuit     = "quit"
)

func (cmd *SessionCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		printError(ctx.Stderr, "the session command needs an interactive terminal")
		return NewCommandError(1)
	}

	styles := output.NewStyles(ctx.Stdout)

	runCtx := context.Background()
	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		sessionTimer := collector.Start("session")
		defer func() {
			sessionTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	t, err := cmd.setupTrip()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("trip to %s (%s) opened, daily budget %s %s",
		t.Destination.City, strings.ToLower(string(t.Kind)),
		t.DailyBudget.String(), strings.ToUpper(cmd.HomeCurrency)))

	reg := registrar.New(rates.NewClient(
		rates.WithBaseURL(cmd.BaseURL),
		rates.WithHomeCurrency(cmd.HomeCurrency),
		rates.WithHTTPClient(&http.Client{Timeout: cmd.Timeout}),
	))

	for {
		var action string
		menu := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("Register expense", actionRegister),
					huh.NewOption("Close trip", actionClose),
					huh.NewOption("Show daily report", actionDaily),
					huh.NewOption("Show category report", actionCategory),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&action),
		))
		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch action {
		case actionRegister:
			cmd.registerExpense(runCtx, ctx, reg, t)
		case actionClose:
			cmd.closeTrip(ctx, t)
		case actionDaily:
			printInfof(ctx.Stdout, "spend by day")
			renderByDay(ctx.Stdout, styles, report.ByDay(t), cmd.HomeCurrency)
		case actionCategory:
			printInfof(ctx.Stdout, "spend by category")
			renderByCategory(ctx.Stdout, styles, report.ByCategory(t), report.Overall(t), cmd.HomeCurrency)
		case actionQuit:
			if t.IsOpen() {
				printInfof(ctx.Stdout, "session ended with the trip still open; nothing is persisted")
			}
			return nil
		}
	}
}

// setupTrip prompts for the trip's fields and constructs the aggregate.
// The console validates dates, budget and currency here; the domain layer
// itself stays permissive about ranges and signs.
func (cmd *SessionCmd) setupTrip() (*trip.Trip, error) {
	var (
		kind     = string(trip.Domestic)
		city     string
		region   string
		country  string
		currency string

		startStr  string
		endStr    string
		budgetStr string

		recordTraveler bool
		traveler       trip.Traveler
	)

	notEmpty := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s must not be empty", field)
			}
			return nil
		}
	}

	validDate := func(s string) error {
		_, err := trip.ParseDate(s)
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Trip kind").
				Options(
					huh.NewOption("Domestic (no conversion)", string(trip.Domestic)),
					huh.NewOption("International (expenses converted)", string(trip.International)),
				).
				Value(&kind),
			huh.NewInput().Title("Destination city").Validate(notEmpty("city")).Value(&city),
			huh.NewInput().Title("Region / department").Value(&region),
			huh.NewInput().Title("Country").Validate(notEmpty("country")).Value(&country),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Local currency code").
				Description("Three-letter code, e.g. usd or eur.").
				Validate(func(s string) error {
					if len(strings.TrimSpace(s)) != 3 {
						return fmt.Errorf("expected a 3-letter currency code")
					}
					return nil
				}).
				Value(&currency),
		).WithHideFunc(func() bool { return kind == string(trip.Domestic) }),
		huh.NewGroup(
			huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Validate(validDate).Value(&startStr),
			huh.NewInput().Title("End date").Placeholder("YYYY-MM-DD").
				Validate(func(s string) error {
					end, err := trip.ParseDate(s)
					if err != nil {
						return err
					}
					if start, err := trip.ParseDate(startStr); err == nil && end.Before(start) {
						return fmt.Errorf("end date is before start date")
					}
					return nil
				}).
				Value(&endStr),
			huh.NewInput().
				Title(fmt.Sprintf("Daily budget (%s)", strings.ToUpper(cmd.HomeCurrency))).
				Validate(func(s string) error {
					budget, err := trip.ParseAmount(s)
					if err != nil {
						return err
					}
					if budget.IsNegative() {
						return fmt.Errorf("daily budget must not be negative")
					}
					return nil
				}).
				Value(&budgetStr),
			huh.NewConfirm().
				Title("Record traveler details?").
				WithButtonAlignment(lipgloss.Left).
				Value(&recordTraveler),
		),
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(&traveler.FullName),
			huh.NewInput().Title("ID number").Value(&traveler.IDNumber),
			huh.NewInput().Title("Phone").Value(&traveler.Phone),
			huh.NewInput().Title("Email").Value(&traveler.Email),
		).WithHideFunc(func() bool { return !recordTraveler }),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}

	if kind == string(trip.Domestic) {
		currency = cmd.HomeCurrency
	}

	start, err := trip.ParseDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := trip.ParseDate(endStr)
	if err != nil {
		return nil, err
	}
	budget, err := trip.ParseAmount(budgetStr)
	if err != nil {
		return nil, err
	}

	t := trip.New(start, end, budget,
		trip.NewDestination(city, region, country, currency),
		trip.Kind(kind))
	t.Traveler = traveler
	return t, nil
}

// registerExpense prompts for one expense and records it. Failures are
// printed and the session continues; a rejected expense is never partially
// recorded.
func (cmd *SessionCmd) registerExpense(runCtx context.Context, ctx *kong.Context, reg *registrar.Registrar, t *trip.Trip) {
	var (
		dateStr   string
		amountStr string
		method    = trip.Cash
		category  = trip.Other
	)

	methodOptions := make([]huh.Option[trip.PaymentMethod], 0, 3)
	for _, m := range trip.PaymentMethods() {
		methodOptions = append(methodOptions, huh.NewOption(string(m), m))
	}
	categoryOptions := make([]huh.Option[trip.Category], 0, 6)
	for _, c := range trip.Categories() {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), c))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Expense date").Placeholder("YYYY-MM-DD").
			Validate(func(s string) error {
				_, err := trip.ParseDate(s)
				return err
			}).
			Value(&dateStr),
		huh.NewInput().
			Title(fmt.Sprintf("Amount (%s)", strings.ToUpper(t.Destination.Currency()))).
			Validate(func(s string) error {
				amount, err := trip.ParseAmount(s)
				if err != nil {
					return err
				}
				if amount.IsNegative() {
					return fmt.Errorf("amount must not be negative")
				}
				return nil
			}).
			Value(&amountStr),
		huh.NewSelect[trip.PaymentMethod]().Title("Payment method").Options(methodOptions...).Value(&method),
		huh.NewSelect[trip.Category]().Title("Category").Options(categoryOptions...).Value(&category),
	))
	if err := form.Run(); err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			printError(ctx.Stderr, err.Error())
		}
		return
	}

	date, err := trip.ParseDate(dateStr)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}
	amount, err := trip.ParseAmount(amountStr)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	timer := telemetry.StartTimer(runCtx, fmt.Sprintf("register expense %s", date))
	result, err := reg.Register(runCtx, t, date, amount, method, category)
	timer.End()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	home := strings.ToUpper(cmd.HomeCurrency)
	if t.Kind == trip.International {
		printSuccess(ctx.Stdout, fmt.Sprintf("registered %s %s -> %s %s (%s, %s)",
			amount.String(), strings.ToUpper(t.Destination.Currency()),
			result.Expense.HomeAmount().String(), home, method, category))
	} else {
		printSuccess(ctx.Stdout, fmt.Sprintf("registered %s %s (%s, %s)",
			amount.String(), home, method, category))
	}

	switch {
	case result.Variance.IsPositive():
		printInfof(ctx.Stdout, "budget remaining for %s: %s %s", date, result.Variance.String(), home)
	case result.Variance.IsZero():
		printInfof(ctx.Stdout, "budget exactly exhausted for %s", date)
	default:
		printWarning(ctx.Stdout, fmt.Sprintf("budget exceeded for %s by %s %s", date, result.Variance.Neg().String(), home))
	}
}

// closeTrip closes the trip, asking for confirmation when today is still
// before the planned end date. Close itself is unconditional and idempotent.
func (cmd *SessionCmd) closeTrip(ctx *kong.Context, t *trip.Trip) {
	if !t.IsOpen() {
		printInfof(ctx.Stdout, "trip is already closed")
		return
	}

	now := time.Now().UTC()
	today := trip.NewDate(now.Year(), now.Month(), now.Day())
	if today.Before(t.EndDate) {
		confirmed, err := promptYesNo(fmt.Sprintf("The trip runs until %s. Close it anyway?", t.EndDate))
		if err != nil || !confirmed {
			return
		}
	}

	t.Close()
	printSuccess(ctx.Stdout, "trip closed; no further expenses can be registered")
}

// promptYesNo prompts the user with a yes/no question.
func promptYesNo(question string) (bool, error) {
	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	return confirm, nil
}
