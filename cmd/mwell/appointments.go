package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"mwell-store/internal/booking"
	"mwell-store/internal/model"

	"github.com/spf13/cobra"
)

func newAppointmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Inspect booked appointments",
	}

	var local bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List the most recent appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var views []model.AppointmentView
			if local {
				appts, err := a.local.List(cmd.Context())
				if err != nil {
					return err
				}
				now := time.Now()
				for _, appt := range appts {
					remaining := booking.SecondsRemaining(appt.CreatedAt, now)
					views = append(views, model.AppointmentView{Appointment: appt, SecondsRemaining: remaining, CanEdit: remaining > 0})
				}
			} else {
				remote, err := a.client.ListAppointments(cmd.Context())
				if err != nil {
					return err
				}
				views = remote
			}
			return printAppointments(cmd.OutOrStdout(), views)
		},
	}
	list.Flags().BoolVar(&local, "local", false, "list appointments saved on this device")

	cmd.AddCommand(list, newEditCmd(a))
	return cmd
}

func printAppointments(out io.Writer, views []model.AppointmentView) error {
	if len(views) == 0 {
		fmt.Fprintln(out, "No appointments yet.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tDATE\tTIME\tPRODUCT\tNAME\tEDITABLE")
	for _, v := range views {
		editable := "no"
		if v.CanEdit {
			editable = booking.FormatRemaining(v.SecondsRemaining)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
			v.AppointmentNumber, v.Date, v.Time, v.Product, v.FirstName, v.LastName, editable)
	}
	return tw.Flush()
}
