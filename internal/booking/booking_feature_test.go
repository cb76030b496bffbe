package booking

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mwell-store/internal/model"

	"github.com/cucumber/godog"
)

// unavailablePersister always fails, standing in for an unreachable server.
type unavailablePersister struct{}

func (unavailablePersister) Save(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	return nil, errors.New("connection refused")
}

type bookingTestContext struct {
	wizard    *Wizard
	primary   Persister
	fallback  Persister
	outcome   Outcome
	createdAt time.Time
	now       time.Time
}

func (c *bookingTestContext) aNewBooking() error {
	c.wizard = NewWizard()
	c.primary = nil
	return nil
}

func (c *bookingTestContext) thePersonalDetailsAreFilledIn() error {
	for field, v := range map[Field]string{
		FieldFirstName: "Asha",
		FieldLastName:  "Verma",
		FieldEmail:     "asha@example.com",
		FieldPhone:     "9876543210",
	} {
		if err := c.wizard.Set(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *bookingTestContext) theAppointmentDetailsAreFilledIn() error {
	for field, v := range map[Field]string{
		FieldDate:    "2026-03-10",
		FieldTime:    "10:30",
		FieldProduct: "Mind Vitals",
		FieldReason:  "Sleep trouble",
	} {
		if err := c.wizard.Set(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *bookingTestContext) theFieldIsCleared(field string) error {
	return c.wizard.Set(Field(field), "")
}

func (c *bookingTestContext) theServerIsUnavailable() error {
	c.primary = unavailablePersister{}
	return nil
}

// Navigation failures are asserted through the resulting state.
func (c *bookingTestContext) iGoToTheNextStep() error {
	_ = c.wizard.Next()
	return nil
}

func (c *bookingTestContext) iJumpToStep(step int) error {
	_ = c.wizard.JumpTo(Step(step))
	return nil
}

func (c *bookingTestContext) iSubmitTheBooking() error {
	out, err := c.wizard.Submit(context.Background(), c.primary, c.fallback)
	c.outcome = out
	return err
}

func (c *bookingTestContext) iAmOnStep(step int) error {
	if c.wizard.Step() != Step(step) {
		return fmt.Errorf("expected step %d, got %d", step, c.wizard.Step())
	}
	return nil
}

func (c *bookingTestContext) theFieldIsHighlighted(field string) error {
	if c.wizard.Highlight() != Field(field) {
		return fmt.Errorf("expected %q highlighted, got %q", field, c.wizard.Highlight())
	}
	return nil
}

func (c *bookingTestContext) anAppointmentNumberStartingWith(prefix string) error {
	n := c.wizard.AppointmentNumber()
	if !strings.HasPrefix(n, prefix) || !ValidAppointmentNumber(n) {
		return fmt.Errorf("unexpected appointment number %q", n)
	}
	return nil
}

func (c *bookingTestContext) theBookingIsSaved(source string) error {
	if string(c.outcome.Source) != source {
		return fmt.Errorf("expected source %s, got %s", source, c.outcome.Source)
	}
	if !c.wizard.Submitted() {
		return fmt.Errorf("expected the wizard to be submitted")
	}
	return nil
}

func (c *bookingTestContext) anAppointmentCreatedMinutesAgo(minutes int) error {
	c.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.createdAt = c.now.Add(-time.Duration(minutes) * time.Minute)
	return nil
}

func (c *bookingTestContext) theSecondsRemainingAre(seconds int) error {
	if got := SecondsRemaining(c.createdAt, c.now); got != seconds {
		return fmt.Errorf("expected %d seconds remaining, got %d", seconds, got)
	}
	return nil
}

func (c *bookingTestContext) editingIs(state string) error {
	want := state == "allowed"
	if CanEdit(c.createdAt, c.now) != want {
		return fmt.Errorf("expected editing to be %s", state)
	}
	return nil
}

func initializeBookingScenario(dir string) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &bookingTestContext{}

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.fallback = NewLocalStore(filepath.Join(dir, sc.Id+".json"))
			tc.outcome = Outcome{}
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^a new booking$`, tc.aNewBooking)
		ctx.Step(`^the personal details are filled in$`, tc.thePersonalDetailsAreFilledIn)
		ctx.Step(`^the appointment details are filled in$`, tc.theAppointmentDetailsAreFilledIn)
		ctx.Step(`^the field "([^"]*)" is cleared$`, tc.theFieldIsCleared)
		ctx.Step(`^the server is unavailable$`, tc.theServerIsUnavailable)
		ctx.Step(`^an appointment created (\d+) minutes ago$`, tc.anAppointmentCreatedMinutesAgo)

		// When steps
		ctx.Step(`^I go to the next step$`, tc.iGoToTheNextStep)
		ctx.Step(`^I jump to step (\d+)$`, tc.iJumpToStep)
		ctx.Step(`^I submit the booking$`, tc.iSubmitTheBooking)

		// Then steps
		ctx.Step(`^I am (?:still )?on step (\d+)$`, tc.iAmOnStep)
		ctx.Step(`^the field "([^"]*)" is highlighted$`, tc.theFieldIsHighlighted)
		ctx.Step(`^an appointment number starting with "([^"]*)" is shown$`, tc.anAppointmentNumberStartingWith)
		ctx.Step(`^the booking is saved "([^"]*)"$`, tc.theBookingIsSaved)
		ctx.Step(`^the seconds remaining are (\d+)$`, tc.theSecondsRemainingAre)
		ctx.Step(`^editing is (allowed|rejected)$`, tc.editingIs)
	}
}

func TestBookingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeBookingScenario(t.TempDir()),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/booking.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
