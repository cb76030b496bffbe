package booking

import (
	"context"
	"errors"

	"mwell-store/internal/model"
)

// Persister stores a submitted appointment somewhere.
type Persister interface {
	Save(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error)
}

// Source says where a submitted appointment ended up.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Outcome is the result of a successful submission.
type Outcome struct {
	Appointment *model.Appointment `json:"appointment"`
	Source      Source             `json:"source"`
}

// PersistWithFallback tries primary once and, on any failure, saves to
// fallback instead. A nil primary goes straight to fallback. When both fail
// the returned PersistenceError wraps both causes.
func PersistWithFallback(ctx context.Context, primary, fallback Persister, req *model.AppointmentRequest) (Outcome, error) {
	var primaryErr error
	if primary != nil {
		appt, err := primary.Save(ctx, req)
		if err == nil {
			return Outcome{Appointment: appt, Source: SourceRemote}, nil
		}
		primaryErr = err
	}

	if fallback == nil {
		return Outcome{}, model.NewPersistenceError("Appointment could not be saved", primaryErr)
	}

	appt, err := fallback.Save(ctx, req)
	if err != nil {
		return Outcome{}, model.NewPersistenceError("Appointment could not be saved", errors.Join(primaryErr, err))
	}
	return Outcome{Appointment: appt, Source: SourceLocal}, nil
}
