package employee

import (
	"errors"
	"fmt"

	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
)

type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"notblank,max=255"`
	Relationship string `json:"relationship" validate:"max=100"`
	Phone        string `json:"phone" validate:"notblank,max=30"`
}

type CertificateRequest struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name" validate:"notblank,max=255"`
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
}

type CreateEmployeeRequest struct {
	Initial            string                   `json:"initial" validate:"notblank,max=10"`
	FullName           string                   `json:"full_name" validate:"notblank,max=255"`
	Role               string                   `json:"role" validate:"omitempty,oneof=manager employee"`
	JobTitle           *string                  `json:"job_title,omitempty" validate:"omitempty,max=255"`
	EmergencyContact   *EmergencyContactRequest `json:"emergency_contact,omitempty"`
	MCUDate            *string                  `json:"mcu_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SafetyCertificates []CertificateRequest     `json:"safety_certificates,omitempty" validate:"omitempty,dive"`
}

func (r *CreateEmployeeRequest) Validate() error {
	if r.Role == "" {
		r.Role = string(RoleEmployee)
	}
	return validator.Struct(r)
}

// UpdateEmployeeRequest is a partial update; nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	ID                 string                   `json:"-"`
	Initial            *string                  `json:"initial,omitempty" validate:"omitempty,notblank,max=10"`
	FullName           *string                  `json:"full_name,omitempty" validate:"omitempty,notblank,max=255"`
	Role               *string                  `json:"role,omitempty" validate:"omitempty,oneof=manager employee"`
	JobTitle           *string                  `json:"job_title,omitempty" validate:"omitempty,max=255"`
	EmergencyContact   *EmergencyContactRequest `json:"emergency_contact,omitempty"`
	MCUDate            *string                  `json:"mcu_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SafetyCertificates *[]CertificateRequest    `json:"safety_certificates,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if err := validator.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if r.SafetyCertificates != nil {
		for i, c := range *r.SafetyCertificates {
			if err := validator.Struct(c); err != nil {
				var fieldErrs validator.ValidationErrors
				if !errors.As(err, &fieldErrs) {
					return err
				}
				for _, fe := range fieldErrs {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("safety_certificates[%d].%s", i, fe.Field),
						Message: fe.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CertificateResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	Expired        bool   `json:"expired"`
}

type EmployeeResponse struct {
	ID                 string                `json:"id"`
	Initial            string                `json:"initial"`
	FullName           string                `json:"full_name"`
	Role               string                `json:"role"`
	JobTitle           *string               `json:"job_title,omitempty"`
	EmergencyContact   *EmergencyContact     `json:"emergency_contact,omitempty"`
	MCUDate            *string               `json:"mcu_date,omitempty"`
	MCUExpired         bool                  `json:"mcu_expired"`
	SafetyCertificates []CertificateResponse `json:"safety_certificates"`
	CreatedAt          string                `json:"created_at"`
	UpdatedAt          string                `json:"updated_at"`
}

// ComplianceAlert lists what is out of date for a single employee.
type ComplianceAlert struct {
	EmployeeID          string   `json:"employee_id"`
	Initial             string   `json:"initial"`
	FullName            string   `json:"full_name"`
	MCUExpired          bool     `json:"mcu_expired"`
	ExpiredCertificates []string `json:"expired_certificates"`
}
