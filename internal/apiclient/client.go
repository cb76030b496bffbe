// Package apiclient talks to the mwell-store HTTP API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mwell-store/internal/model"
	"mwell-store/internal/pricing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is an authenticated API client. It implements booking.Persister.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  zerolog.Logger
}

// New creates a client for baseURL. An empty token sends no Authorization
// header.
func New(baseURL, token string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.With().Str("component", "api-client").Logger(),
	}
}

// WithToken returns a copy of the client using token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", model.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Save creates the appointment on the server.
func (c *Client) Save(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	return c.CreateAppointment(ctx, req)
}

// CreateAppointment posts a new appointment.
func (c *Client) CreateAppointment(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	if c.token == "" {
		return nil, model.ErrUnauthorised
	}
	var out model.AppointmentView
	if err := c.do(ctx, http.MethodPost, "/api/appointments", req, &out); err != nil {
		return nil, err
	}
	return &out.Appointment, nil
}

// ListAppointments returns the caller's newest appointments.
func (c *Client) ListAppointments(ctx context.Context) ([]model.AppointmentView, error) {
	var out model.AppointmentListResponse
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

// GetAppointment fetches one appointment with its edit-window state.
func (c *Client) GetAppointment(ctx context.Context, id uuid.UUID) (*model.AppointmentView, error) {
	var out model.AppointmentView
	if err := c.do(ctx, http.MethodGet, "/api/appointments/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment replaces an appointment's details while its edit
// window is open.
func (c *Client) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error) {
	var out model.AppointmentView
	if err := c.do(ctx, http.MethodPut, "/api/appointments/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Quote prices lines without a stored cart.
func (c *Client) Quote(ctx context.Context, req *model.QuoteRequest) (*pricing.Summary, error) {
	var out pricing.Summary
	if err := c.do(ctx, http.MethodPost, "/api/pricing/quote", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns an error response back into a DomainError so callers
// can branch with errors.Is and model.KindOf.
func decodeError(resp *http.Response) error {
	var body model.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	kind := kindForStatus(resp.StatusCode)
	if body.Error == model.ErrCodeEditWindowClosed {
		kind = model.KindWindowExpired
	}

	return &model.DomainError{
		Kind:    kind,
		Code:    body.Error,
		Message: body.Message,
		Field:   body.Field,
		Err:     errors.New(http.StatusText(resp.StatusCode)),
	}
}

func kindForStatus(status int) model.ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return model.KindValidation
	case http.StatusUnauthorized:
		return model.KindAuth
	case http.StatusForbidden:
		return model.KindForbidden
	case http.StatusNotFound:
		return model.KindNotFound
	case http.StatusConflict:
		return model.KindConflict
	}
	return model.KindInternal
}
