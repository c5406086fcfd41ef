package telemetry

import (
	"io"

	"github.com/jdcardona/tripledger/output"
)

// noOpCollector does nothing; it backs StartTimer when no collector is
// installed in the context.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }

func (noOpCollector) Report(w io.Writer, styles *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
