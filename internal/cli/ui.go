package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate is the spinner animation interval.
const SpinnerRefreshRate = 120 * time.Millisecond

// Spinner abstracts the terminal spinner so progress display can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// newSpinner is a variable so tests can substitute a fake. The underlying
// spinner stays silent when out is not a terminal.
var newSpinner = func(out io.Writer) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))}
}

// RunWithSpinner shows msg next to a spinner on out while fn runs, and
// returns fn's error.
func RunWithSpinner(out io.Writer, msg string, fn func() error) error {
	s := newSpinner(out)
	s.UpdateSuffix(" " + msg)
	s.Start()
	defer s.Stop()
	return fn()
}
