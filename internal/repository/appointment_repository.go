package repository

import (
	"context"
	"errors"
	"fmt"

	"mwell-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const appointmentColumns = `id, appointment_number, owner_id, first_name, last_name, email, phone,
	date, time, product, expert, reason, medical_issue, notes, created_at, updated_at`

type appointmentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAppointmentRepository creates a new PostgreSQL-backed appointment repository.
func NewAppointmentRepository(pool *pgxpool.Pool, logger zerolog.Logger) AppointmentRepository {
	return &appointmentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "appointment").Logger(),
	}
}

func scanAppointment(row pgx.Row, a *model.Appointment) error {
	return row.Scan(
		&a.ID,
		&a.AppointmentNumber,
		&a.OwnerID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Phone,
		&a.Date,
		&a.Time,
		&a.Product,
		&a.Expert,
		&a.Reason,
		&a.MedicalIssue,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// Create inserts the appointment and prunes the owner's history in one
// transaction.
func (r *appointmentRepository) Create(ctx context.Context, appt *model.Appointment, keep int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.Exec(ctx, insert,
		appt.ID, appt.AppointmentNumber, appt.OwnerID, appt.FirstName, appt.LastName, appt.Email, appt.Phone,
		appt.Date, appt.Time, appt.Product, appt.Expert, appt.Reason, appt.MedicalIssue, appt.Notes,
		appt.CreatedAt, appt.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("appointment_id", appt.ID.String()).Msg("failed to create appointment")
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	prune := `
		DELETE FROM appointments
		WHERE owner_id = $1
		  AND id NOT IN (
		      SELECT id FROM appointments
		      WHERE owner_id = $1
		      ORDER BY created_at DESC, id DESC
		      LIMIT $2
		  )
	`
	tag, err := tx.Exec(ctx, prune, appt.OwnerID, keep)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", appt.OwnerID.String()).Msg("failed to prune appointments")
		return fmt.Errorf("failed to prune appointments: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit appointment")
		return fmt.Errorf("failed to commit appointment: %w", err)
	}

	r.logger.Debug().
		Str("appointment_id", appt.ID.String()).
		Int64("pruned", tag.RowsAffected()).
		Msg("appointment created")
	return nil
}

func (r *appointmentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID.String()).Msg("failed to query appointments")
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	appts := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan appointment row")
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appts = append(appts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}
	return appts, nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var a model.Appointment
	if err := scanAppointment(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to query appointment")
		return nil, fmt.Errorf("failed to query appointment: %w", err)
	}
	return &a, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *model.Appointment) (bool, error) {
	query := `
		UPDATE appointments
		SET first_name = $2, last_name = $3, email = $4, phone = $5, date = $6, time = $7,
		    product = $8, expert = $9, reason = $10, medical_issue = $11, notes = $12, updated_at = $13
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		appt.ID, appt.FirstName, appt.LastName, appt.Email, appt.Phone, appt.Date, appt.Time,
		appt.Product, appt.Expert, appt.Reason, appt.MedicalIssue, appt.Notes, appt.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("appointment_id", appt.ID.String()).Msg("failed to update appointment")
		return false, fmt.Errorf("failed to update appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to delete appointment")
		return false, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
