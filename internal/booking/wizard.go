package booking

import (
	"context"
	"strings"

	"mwell-store/internal/model"
)

// Step is a page of the booking wizard.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepAppointmentDetails
	StepMedicalInfo
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "Personal Info"
	case StepAppointmentDetails:
		return "Appointment Details"
	case StepMedicalInfo:
		return "Medical Info"
	case StepConfirmation:
		return "Confirmation"
	}
	return "Unknown"
}

func (s Step) valid() bool {
	return s >= StepPersonalInfo && s <= StepConfirmation
}

// Wizard is the four-step booking form. It is not safe for concurrent use.
type Wizard struct {
	step      Step
	form      Form
	highlight Field
	number    string
	submitted bool
	outcome   Outcome
	numbers   NumberGenerator
}

// WizardOption customises a Wizard.
type WizardOption func(*Wizard)

// WithNumberGenerator replaces the random display-number source.
func WithNumberGenerator(gen NumberGenerator) WizardOption {
	return func(w *Wizard) {
		w.numbers = gen
	}
}

// NewWizard returns a wizard on step 1 with an empty form.
func NewWizard(opts ...WizardOption) *Wizard {
	w := &Wizard{step: StepPersonalInfo, numbers: NewAppointmentNumber}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Form returns a copy of the collected inputs.
func (w *Wizard) Form() Form { return w.form }

// Highlight returns the field flagged by the last failed move, or "".
func (w *Wizard) Highlight() Field { return w.highlight }

// AppointmentNumber returns the display number, or "" before step 4.
func (w *Wizard) AppointmentNumber() string { return w.number }

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool { return w.submitted }

// Outcome returns the result of the successful submission.
func (w *Wizard) Outcome() Outcome { return w.outcome }

// Set writes a field. Filling the highlighted field clears the highlight.
// The form is frozen once submitted.
func (w *Wizard) Set(field Field, value string) error {
	if w.submitted {
		return model.ErrAlreadySubmitted
	}
	if err := w.form.Set(field, value); err != nil {
		return err
	}
	if w.highlight == field && strings.TrimSpace(value) != "" {
		w.highlight = ""
	}
	return nil
}

// Next moves forward one step when the current step's required fields are
// filled. Otherwise it highlights the first missing field and returns a
// validation error naming it.
func (w *Wizard) Next() error {
	if w.submitted {
		return model.ErrAlreadySubmitted
	}
	if missing := w.form.MissingFields(w.step); len(missing) > 0 {
		w.highlight = missing[0]
		return missingFieldError(missing[0])
	}
	if w.step < StepConfirmation {
		w.enter(w.step + 1)
	}
	return nil
}

// Prev moves back one step; it does nothing on step 1 or after submission.
func (w *Wizard) Prev() {
	if w.submitted || w.step == StepPersonalInfo {
		return
	}
	w.back(w.step - 1)
}

// CanJumpTo reports whether JumpTo(step) would succeed.
func (w *Wizard) CanJumpTo(step Step) bool {
	if w.submitted || !step.valid() {
		return false
	}
	if step <= w.step {
		return true
	}
	_, ok := w.firstUnsatisfied(step)
	return !ok
}

// JumpTo moves to any earlier step, or to a later one when every step
// before it is satisfied.
func (w *Wizard) JumpTo(step Step) error {
	if w.submitted {
		return model.ErrAlreadySubmitted
	}
	if !step.valid() {
		return model.ErrInvalidStep
	}
	if step <= w.step {
		w.back(step)
		return nil
	}
	if field, ok := w.firstUnsatisfied(step); ok {
		w.highlight = field
		return missingFieldError(field)
	}
	w.enter(step)
	return nil
}

// Submit persists the appointment from step 4, remote first with local
// fallback. On failure the wizard stays on step 4 so the user can retry.
func (w *Wizard) Submit(ctx context.Context, primary, fallback Persister) (Outcome, error) {
	if w.submitted {
		return Outcome{}, model.ErrAlreadySubmitted
	}
	if w.step != StepConfirmation {
		return Outcome{}, model.ErrNotAtConfirmation
	}
	if w.number == "" {
		w.number = w.numbers()
	}

	outcome, err := PersistWithFallback(ctx, primary, fallback, w.form.Request(w.number))
	if err != nil {
		return Outcome{}, err
	}

	w.submitted = true
	w.outcome = outcome
	return outcome, nil
}

// BookAnother resets the wizard for a fresh booking.
func (w *Wizard) BookAnother() {
	numbers := w.numbers
	*w = Wizard{step: StepPersonalInfo, numbers: numbers}
}

// back moves to an earlier step. A highlight on a field of a later step no
// longer applies and is dropped.
func (w *Wizard) back(step Step) {
	w.step = step
	if w.highlight != "" && stepOf(w.highlight) > step {
		w.highlight = ""
	}
}

func (w *Wizard) enter(step Step) {
	w.step = step
	if step == StepConfirmation && w.number == "" {
		w.number = w.numbers()
	}
}

// firstUnsatisfied returns the first missing field of the earliest step
// before target that is not satisfied.
func (w *Wizard) firstUnsatisfied(target Step) (Field, bool) {
	for s := StepPersonalInfo; s < target; s++ {
		if missing := w.form.MissingFields(s); len(missing) > 0 {
			return missing[0], true
		}
	}
	return "", false
}
