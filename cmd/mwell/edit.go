package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"mwell-store/internal/booking"
	"mwell-store/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// clearCommand empties an optional field while editing.
const clearCommand = "-"

// appointmentEditor is the part of the API client an edit needs.
type appointmentEditor interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (*model.AppointmentView, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error)
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit APPOINTMENT_ID",
		Short: "Change an appointment while its edit window is open",
		Long: "Prompts for each detail with the stored value in brackets. Press Enter to keep a\n" +
			"value or enter " + clearCommand + " to clear an optional one. Appointments can only be\n" +
			"edited within 30 minutes of booking.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid appointment ID %q", args[0])
			}

			out := cmd.OutOrStdout()
			view, err := runEdit(cmd.Context(), cmd.InOrStdin(), out, a.client, id, time.Now)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nAppointment %s updated for %s at %s.\n", view.AppointmentNumber, view.Date, view.Time)
			return nil
		},
	}
}

// runEdit prompts through the details of steps 1 to 3 and sends the update.
// The edit window is checked from the stored creation time before prompting
// and again before the update is sent, so an expired appointment never
// reaches the API.
func runEdit(ctx context.Context, in io.Reader, out io.Writer, c appointmentEditor, id uuid.UUID, now func() time.Time) (*model.AppointmentView, error) {
	view, err := c.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := booking.CheckEditable(view.CreatedAt, now()); err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Editing appointment %s (%s left to edit)\n",
		view.AppointmentNumber, booking.FormatRemaining(booking.SecondsRemaining(view.CreatedAt, now())))

	read := prompter(in, out)
	form := booking.FormFromAppointment(&view.Appointment)

	for _, step := range []booking.Step{booking.StepPersonalInfo, booking.StepAppointmentDetails, booking.StepMedicalInfo} {
		fmt.Fprintf(out, "\n%s\n", step)
		for _, field := range stepPrompts[step] {
			for {
				prompt := promptLabels[field]
				if current := form.Get(field); current != "" {
					prompt += " [" + current + "]"
				}

				value, err := read(prompt + ": ")
				if err != nil {
					return nil, err
				}
				switch value {
				case "":
				case clearCommand:
					value = ""
					fallthrough
				default:
					if err := form.Set(field, value); err != nil {
						return nil, err
					}
				}

				if slices.Contains(form.MissingFields(step), field) {
					fmt.Fprintf(out, "%s is required.\n", promptLabels[field])
					continue
				}
				break
			}
		}
	}

	if err := booking.CheckEditable(view.CreatedAt, now()); err != nil {
		return nil, err
	}
	return c.UpdateAppointment(ctx, id, form.Request(view.AppointmentNumber))
}
