package form

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/contactform/internal/model"
)

// State holds the contact form's values and derives its validation errors.
// It is not safe for concurrent use; the UI model owning it applies one
// event at a time.
type State struct {
	fields    model.Contact
	errs      Errors
	touched   map[model.Field]bool
	attempted bool
	submitted *model.Contact

	log *zap.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger routes state transitions to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty form.
func New(opts ...Option) *State {
	s := &State{
		touched: make(map[model.Field]bool),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.errs = Validate(s.fields)
	return s
}

// SetField stores value under name and revalidates.
func (s *State) SetField(name model.Field, value string) error {
	if err := s.fields.Set(name, value); err != nil {
		return fmt.Errorf("set field: %w", err)
	}
	s.touched[name] = true
	s.errs = Validate(s.fields)
	s.log.Debug("field changed",
		zap.String("field", string(name)),
		zap.Int("length", len([]rune(value))),
		zap.Int("errors", len(s.errs)))
	return nil
}

// Fields returns the current values.
func (s *State) Fields() model.Contact { return s.fields }

// Errors returns every currently violated rule, visible or not.
func (s *State) Errors() Errors { return s.errs }

// Visible returns the errors that should be shown: those of touched fields,
// or all of them once a submit has been attempted.
func (s *State) Visible() Errors {
	out := Errors{}
	for f, msg := range s.errs {
		if s.attempted || s.touched[f] {
			out[f] = msg
		}
	}
	return out
}

// Submitted returns the last successfully submitted snapshot, or nil.
func (s *State) Submitted() *model.Contact { return s.submitted }

// Submit revalidates and, when the fields are valid, records a snapshot and
// clears the inputs. On failure the errors are returned and every one of them
// becomes visible; the previous snapshot is kept.
func (s *State) Submit() (*model.Contact, Errors) {
	s.errs = Validate(s.fields)
	if len(s.errs) > 0 {
		s.attempted = true
		s.log.Info("submit blocked", zap.Int("errors", len(s.errs)))
		return nil, s.errs
	}
	snap := s.fields
	s.submitted = &snap
	s.log.Info("submitted", zap.Bool("message", snap.Message != ""))
	s.Reset()
	return s.submitted, nil
}

// Reset clears the inputs and visibility flags. The submitted snapshot survives.
func (s *State) Reset() {
	s.fields = model.Contact{}
	s.touched = make(map[model.Field]bool)
	s.attempted = false
	s.errs = Validate(s.fields)
}
