package booking

import (
	"fmt"
	"strings"

	"mwell-store/internal/model"
)

// Field names a form input using its JSON name.
type Field string

const (
	FieldFirstName    Field = "firstName"
	FieldLastName     Field = "lastName"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldDate         Field = "date"
	FieldTime         Field = "time"
	FieldProduct      Field = "product"
	FieldExpert       Field = "expert"
	FieldReason       Field = "reason"
	FieldMedicalIssue Field = "medicalIssue"
	FieldNotes        Field = "notes"
)

// requiredFields lists, in display order, the fields a step needs before the
// wizard may move past it.
var requiredFields = map[Step][]Field{
	StepPersonalInfo:       {FieldFirstName, FieldLastName, FieldEmail, FieldPhone},
	StepAppointmentDetails: {FieldDate, FieldTime, FieldProduct, FieldReason},
	StepMedicalInfo:        nil,
}

// stepOf returns the step that requires field, or 0 for optional fields.
func stepOf(field Field) Step {
	for step, fields := range requiredFields {
		for _, f := range fields {
			if f == field {
				return step
			}
		}
	}
	return 0
}

var fieldLabels = map[Field]string{
	FieldFirstName: "First name",
	FieldLastName:  "Last name",
	FieldEmail:     "Email",
	FieldPhone:     "Phone",
	FieldDate:      "Date",
	FieldTime:      "Time",
	FieldProduct:   "Product",
	FieldReason:    "Reason for visit",
}

// Form holds the booking inputs collected across the wizard steps.
type Form struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Product      string `json:"product"`
	Expert       string `json:"expert,omitempty"`
	Reason       string `json:"reason"`
	MedicalIssue string `json:"medicalIssue,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (f *Form) ref(field Field) (*string, error) {
	switch field {
	case FieldFirstName:
		return &f.FirstName, nil
	case FieldLastName:
		return &f.LastName, nil
	case FieldEmail:
		return &f.Email, nil
	case FieldPhone:
		return &f.Phone, nil
	case FieldDate:
		return &f.Date, nil
	case FieldTime:
		return &f.Time, nil
	case FieldProduct:
		return &f.Product, nil
	case FieldExpert:
		return &f.Expert, nil
	case FieldReason:
		return &f.Reason, nil
	case FieldMedicalIssue:
		return &f.MedicalIssue, nil
	case FieldNotes:
		return &f.Notes, nil
	}
	return nil, fmt.Errorf("unknown booking field %q", field)
}

// Set writes a field.
func (f *Form) Set(field Field, value string) error {
	p, err := f.ref(field)
	if err != nil {
		return model.NewValidationError(string(field), err.Error())
	}
	*p = value
	return nil
}

// Get returns the value of a field, or "" for unknown fields.
func (f *Form) Get(field Field) string {
	p, err := f.ref(field)
	if err != nil {
		return ""
	}
	return *p
}

// MissingFields returns the required fields of step that are blank after
// trimming, in display order.
func (f *Form) MissingFields(step Step) []Field {
	var missing []Field
	for _, field := range requiredFields[step] {
		if strings.TrimSpace(f.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// StepValid reports whether every required field of step is filled.
func (f *Form) StepValid(step Step) bool {
	return len(f.MissingFields(step)) == 0
}

// FormFromAppointment prefills a form with a stored appointment, for
// editing.
func FormFromAppointment(appt *model.Appointment) Form {
	return Form{
		FirstName:    appt.FirstName,
		LastName:     appt.LastName,
		Email:        appt.Email,
		Phone:        appt.Phone,
		Date:         appt.Date,
		Time:         appt.Time,
		Product:      appt.Product,
		Expert:       deref(appt.Expert),
		Reason:       appt.Reason,
		MedicalIssue: deref(appt.MedicalIssue),
		Notes:        deref(appt.Notes),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Request converts the form into an API request carrying the given number.
func (f *Form) Request(number string) *model.AppointmentRequest {
	return &model.AppointmentRequest{
		AppointmentNumber: number,
		FirstName:         strings.TrimSpace(f.FirstName),
		LastName:          strings.TrimSpace(f.LastName),
		Email:             strings.TrimSpace(f.Email),
		Phone:             strings.TrimSpace(f.Phone),
		Date:              strings.TrimSpace(f.Date),
		Time:              strings.TrimSpace(f.Time),
		Product:           strings.TrimSpace(f.Product),
		Expert:            strings.TrimSpace(f.Expert),
		Reason:            strings.TrimSpace(f.Reason),
		MedicalIssue:      strings.TrimSpace(f.MedicalIssue),
		Notes:             strings.TrimSpace(f.Notes),
	}
}

func missingFieldError(field Field) error {
	label, ok := fieldLabels[field]
	if !ok {
		label = string(field)
	}
	return model.NewValidationError(string(field), label+" is required")
}

// ValidateRequest checks a create/update payload against the same required
// fields the wizard enforces on steps 1 and 2.
func ValidateRequest(req *model.AppointmentRequest) error {
	f := Form{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Product:   req.Product,
		Reason:    req.Reason,
	}
	for _, step := range []Step{StepPersonalInfo, StepAppointmentDetails} {
		if missing := f.MissingFields(step); len(missing) > 0 {
			return missingFieldError(missing[0])
		}
	}
	return nil
}
