package dispatch

import (
	"errors"
	"fmt"

	"SpaceXLaunchDashboard/internal/dashboard"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrMalformedEvent = errors.New("malformed control event")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ControlEvent is a single control change sent by the page.
type ControlEvent struct {
	Control string    `json:"control" validate:"required,oneof=site-dropdown payload-slider"`
	Value   string    `json:"value" validate:"required_if=Control site-dropdown"`
	Range   []float64 `json:"range" validate:"required_if=Control payload-slider"`
}

func (e ControlEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if e.Control == dashboard.PayloadSliderID && len(e.Range) != 2 {
		return fmt.Errorf("%w: range needs exactly 2 values, got %d", ErrMalformedEvent, len(e.Range))
	}
	return nil
}

// Session tracks the control values of one connected page.
// It is not safe for concurrent use; callers feed it events one at a time.
type Session struct {
	ID         string
	state      State
	dispatcher *Dispatcher
}

func NewSession(d *Dispatcher, initial State) *Session {
	return &Session{
		ID:         uuid.NewString(),
		state:      initial,
		dispatcher: d,
	}
}

func (s *Session) State() State {
	return s.state
}

// Start returns every figure for the initial control values.
func (s *Session) Start() []Update {
	return s.dispatcher.Initial(s.state)
}

// Handle applies ev to the session state and returns the rebuilt figures.
// A malformed event leaves the state unchanged.
func (s *Session) Handle(ev ControlEvent) ([]Update, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}

	switch ev.Control {
	case dashboard.SiteDropdownID:
		s.state.Site = ev.Value
	case dashboard.PayloadSliderID:
		s.state.Payload = dashboard.PayloadRange{Low: ev.Range[0], High: ev.Range[1]}
	}
	return s.dispatcher.Changed(s.state, ev.Control), nil
}
