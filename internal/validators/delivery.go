package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-delivery-board/internal/spreadsheet"
	"github.com/MKhiriev/go-delivery-board/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFileName      = "file_name"
	FieldTable         = "table"
	FieldMonth         = "month"
	FieldMonths        = "months"
	FieldDepartments   = "departments"
	FieldCollaborators = "collaborators"
	FieldProfile       = "profile"
	FieldPassword      = "password"
)

// DeliveryValidator validates the request models of the delivery board.
type DeliveryValidator struct{}

// NewDeliveryValidator returns a [Validator] for upload, login, password and
// filter requests.
func NewDeliveryValidator() Validator {
	return &DeliveryValidator{}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms are accepted.
//
// Supported types:
//   - models.IngestRequest
//   - models.LoginRequest
//   - models.PasswordRequest
//   - models.DeliveryFilter
//   - string, validated as a reference month
//
// Returns ErrUnsupportedType for anything else.
func (v *DeliveryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IngestRequest:
		return v.validateIngestRequest(value, fields...)
	case *models.IngestRequest:
		return v.validateIngestRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.PasswordRequest:
		return validatePassword(value.Password)
	case *models.PasswordRequest:
		return validatePassword(value.Password)

	case models.DeliveryFilter:
		return v.validateFilter(value, fields...)
	case *models.DeliveryFilter:
		return v.validateFilter(*value, fields...)

	case string:
		return validateMonth(value)

	default:
		return ErrUnsupportedType
	}
}

// validateIngestRequest checks the upload envelope. The month is optional
// here; whether it is required depends on the configured replace scope.
func (v *DeliveryValidator) validateIngestRequest(req models.IngestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldTable, FieldMonth}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if !spreadsheet.Supported(req.FileName) {
				return ErrUnsupportedFile
			}
		case FieldTable:
			if len(req.Table.Headers) == 0 {
				return ErrEmptyTable
			}
		case FieldMonth:
			if req.Month != "" {
				if err := validateMonth(req.Month); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeliveryValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfile, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldProfile:
			if _, ok := models.ParseProfile(req.Profile); !ok {
				return fmt.Errorf("%w: %q", ErrInvalidProfile, req.Profile)
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeliveryValidator) validateFilter(filter models.DeliveryFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMonths, FieldDepartments, FieldCollaborators}
	}

	for _, f := range fields {
		switch f {
		case FieldMonths:
			for i, m := range filter.Months {
				if err := validateMonth(m); err != nil {
					return fmt.Errorf("validation error at month index %d: %w", i, err)
				}
			}
		case FieldDepartments:
			for _, d := range filter.Departments {
				if !d.IsValid() {
					return fmt.Errorf("%w: %q", ErrInvalidDepartment, d)
				}
			}
		case FieldCollaborators:
			for _, c := range filter.Collaborators {
				if strings.TrimSpace(c) == "" {
					return ErrEmptyCollaborators
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateMonth(month string) error {
	if !spreadsheet.ValidMonth(month) {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	return nil
}
