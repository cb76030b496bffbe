package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"mwell-store/internal/booking"
	"mwell-store/internal/model"

	"github.com/spf13/cobra"
)

const backCommand = ":back"

var errAborted = errors.New("booking cancelled")

// stepPrompts lists, per step, the fields asked for in order.
var stepPrompts = map[booking.Step][]booking.Field{
	booking.StepPersonalInfo: {
		booking.FieldFirstName, booking.FieldLastName, booking.FieldEmail, booking.FieldPhone,
	},
	booking.StepAppointmentDetails: {
		booking.FieldDate, booking.FieldTime, booking.FieldProduct, booking.FieldExpert, booking.FieldReason,
	},
	booking.StepMedicalInfo: {
		booking.FieldMedicalIssue, booking.FieldNotes,
	},
}

var promptLabels = map[booking.Field]string{
	booking.FieldFirstName:    "First name",
	booking.FieldLastName:     "Last name",
	booking.FieldEmail:        "Email",
	booking.FieldPhone:        "Phone",
	booking.FieldDate:         "Date (YYYY-MM-DD)",
	booking.FieldTime:         "Time",
	booking.FieldProduct:      "Product",
	booking.FieldExpert:       "Expert (optional)",
	booking.FieldReason:       "Reason for visit",
	booking.FieldMedicalIssue: "Medical issue (optional)",
	booking.FieldNotes:        "Notes (optional)",
}

func newBookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "book",
		Short: "Book an appointment interactively",
		Long: "Walks through Personal Info, Appointment Details, Medical Info and Confirmation.\n" +
			"Enter " + backCommand + " at any prompt to return to the previous step. The booking is\n" +
			"sent to the API and kept on this device when the API cannot be reached.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			outcome, err := runWizard(cmd.Context(), cmd.InOrStdin(), out, booking.NewWizard(), a.client, a.local)
			if err != nil {
				return err
			}

			appt := outcome.Appointment
			fmt.Fprintf(out, "\nAppointment %s booked for %s at %s.\n", appt.AppointmentNumber, appt.Date, appt.Time)
			if outcome.Source == booking.SourceLocal {
				fmt.Fprintln(out, "The server could not be reached; the booking was saved on this device.")
			} else {
				fmt.Fprintf(out, "You can edit it for the next %s.\n", booking.FormatRemaining(booking.SecondsRemaining(appt.CreatedAt, time.Now())))
			}
			return nil
		},
	}
}

// runWizard drives w from its current step to a successful submission.
func runWizard(ctx context.Context, in io.Reader, out io.Writer, w *booking.Wizard, primary, fallback booking.Persister) (booking.Outcome, error) {
	read := prompter(in, out)

	for {
		if err := ctx.Err(); err != nil {
			return booking.Outcome{}, err
		}

		step := w.Step()
		fmt.Fprintf(out, "\nStep %d of 4: %s\n", step, step)

		if step == booking.StepConfirmation {
			printSummary(out, w)
			answer, err := read("Submit this appointment? [y/N, " + backCommand + "]: ")
			if err != nil {
				return booking.Outcome{}, err
			}
			switch strings.ToLower(answer) {
			case backCommand:
				w.Prev()
			case "y", "yes":
				outcome, err := w.Submit(ctx, primary, fallback)
				if err != nil {
					fmt.Fprintf(out, "Could not save the appointment: %v\n", err)
					continue
				}
				return outcome, nil
			default:
				return booking.Outcome{}, errAborted
			}
			continue
		}

		wentBack := false
		for _, field := range stepPrompts[step] {
			prompt := promptLabels[field]
			form := w.Form()
			if current := form.Get(field); current != "" {
				prompt += " [" + current + "]"
			}
			if w.Highlight() == field {
				prompt = "* " + prompt
			}

			value, err := read(prompt + ": ")
			if err != nil {
				return booking.Outcome{}, err
			}
			if value == backCommand {
				w.Prev()
				wentBack = true
				break
			}
			if value != "" {
				if err := w.Set(field, value); err != nil {
					return booking.Outcome{}, err
				}
			}
		}
		if wentBack {
			continue
		}

		if err := w.Next(); err != nil {
			fmt.Fprintf(out, "%s\n", userMessage(err))
		}
	}
}

func printSummary(out io.Writer, w *booking.Wizard) {
	form := w.Form()
	fmt.Fprintf(out, "Appointment number: %s\n", w.AppointmentNumber())
	for _, step := range []booking.Step{booking.StepPersonalInfo, booking.StepAppointmentDetails, booking.StepMedicalInfo} {
		for _, field := range stepPrompts[step] {
			if v := form.Get(field); v != "" {
				fmt.Fprintf(out, "  %-26s %s\n", promptLabels[field]+":", v)
			}
		}
	}
}

// prompter returns a function that prints a prompt and reads one trimmed
// line. End of input reports errAborted.
func prompter(in io.Reader, out io.Writer) func(prompt string) (string, error) {
	scanner := bufio.NewScanner(in)
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errAborted
		}
		return strings.TrimSpace(scanner.Text()), nil
	}
}

func userMessage(err error) string {
	var de *model.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
