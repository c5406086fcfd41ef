package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Session SessionCmd `cmd:"" help:"Start an interactive trip session: set up a trip, register expenses, view reports."`
	Rate    RateCmd    `cmd:"" help:"Look up an exchange rate (and optionally convert an amount)."`
}
