package main

import (
	"fmt"
	"io"
	"time"

	"mwell-store/internal/booking"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newCountdownCmd(a *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "countdown APPOINTMENT_ID",
		Short: "Show how long an appointment can still be edited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid appointment ID %q", args[0])
			}

			view, err := a.client.GetAppointment(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if once || !view.CanEdit {
				printRemaining(out, view.AppointmentNumber, booking.SecondsRemaining(view.CreatedAt, time.Now()))
				return nil
			}

			for remaining := range booking.Countdown(cmd.Context(), view.CreatedAt, time.Now, time.Second) {
				printRemaining(out, view.AppointmentNumber, remaining)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "print the remaining time once and exit")
	return cmd
}

func printRemaining(out io.Writer, number string, seconds int) {
	if seconds <= 0 {
		fmt.Fprintf(out, "%s: edit window closed\n", number)
		return
	}
	fmt.Fprintf(out, "%s: %s left to edit\n", number, booking.FormatRemaining(seconds))
}
