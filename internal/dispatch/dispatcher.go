// Package dispatch maps control changes on the dashboard page to the chart
// builders that depend on them.
//
// Each output chart is registered once with the ids of the controls it reads.
// When a control changes, only the callbacks that list it are re-run, in
// registration order, against the session's current control values.
package dispatch

import (
	"log/slog"
	"slices"

	"SpaceXLaunchDashboard/internal/dashboard"
)

// State is the current value of every control on the page.
type State struct {
	Site    string                 `json:"site"`
	Payload dashboard.PayloadRange `json:"payload"`
}

type BuildFunc func(State) (any, error)

type Callback struct {
	Output string
	Inputs []string
	Build  BuildFunc
}

// Update carries a rebuilt figure for one output. Warning is set when the
// builder rejected the inputs and the figure is the empty fallback.
type Update struct {
	Output  string `json:"output"`
	Figure  any    `json:"figure"`
	Warning string `json:"warning,omitempty"`
}

type Dispatcher struct {
	callbacks []Callback
}

func New() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Register(cb Callback) {
	d.callbacks = append(d.callbacks, cb)
}

// Outputs lists the registered output ids in registration order.
func (d *Dispatcher) Outputs() []string {
	out := make([]string, 0, len(d.callbacks))
	for _, cb := range d.callbacks {
		out = append(out, cb.Output)
	}
	return out
}

// Initial runs every callback, as on first page load.
func (d *Dispatcher) Initial(state State) []Update {
	updates := make([]Update, 0, len(d.callbacks))
	for _, cb := range d.callbacks {
		updates = append(updates, run(cb, state))
	}
	return updates
}

// Changed runs the callbacks that declare control as an input.
func (d *Dispatcher) Changed(state State, control string) []Update {
	var updates []Update
	for _, cb := range d.callbacks {
		if slices.Contains(cb.Inputs, control) {
			updates = append(updates, run(cb, state))
		}
	}
	return updates
}

func run(cb Callback, state State) Update {
	figure, err := cb.Build(state)
	u := Update{Output: cb.Output, Figure: figure}
	if err != nil {
		slog.Warn("dispatch.run(): builder rejected inputs",
			"output", cb.Output,
			"site", state.Site,
			"low", state.Payload.Low,
			"high", state.Payload.High,
			"error", err)
		u.Warning = err.Error()
	}
	return u
}
