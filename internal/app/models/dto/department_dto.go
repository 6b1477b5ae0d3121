package dto

import (
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
)

// DepartmentResponse represents department information
type DepartmentResponse struct {
	ID              int64  `json:"id" example:"1"`
	Name            string `json:"name" example:"Computer Science"`
	Code            string `json:"code" example:"CS101"`
	OfficeLocation  string `json:"office_location" example:"Engineering Bldg. Rm 201"`
	PhoneContact    string `json:"phone_contact" example:"0917-555-001"`
	EstablishedDate string `json:"established_date" example:"2005-06-15"`
}

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Code            string `json:"code" binding:"required,max=10"`
	OfficeLocation  string `json:"office_location" binding:"required,max=100"`
	PhoneContact    string `json:"phone_contact" binding:"required,max=20"`
	EstablishedDate string `json:"established_date" binding:"required,datetime=2006-01-02"`
}

// UpdateDepartmentRequest is the full replacement body of PUT
type UpdateDepartmentRequest = CreateDepartmentRequest

// PatchDepartmentRequest carries only the fields to change
type PatchDepartmentRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	Code            *string `json:"code" binding:"omitempty,max=10"`
	OfficeLocation  *string `json:"office_location" binding:"omitempty,max=100"`
	PhoneContact    *string `json:"phone_contact" binding:"omitempty,max=20"`
	EstablishedDate *string `json:"established_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToModel converts the request into a department
func (r *CreateDepartmentRequest) ToModel() (*models.Department, error) {
	established, err := parseDateField("established_date", r.EstablishedDate)
	if err != nil {
		return nil, err
	}
	return &models.Department{
		Name:            r.Name,
		Code:            r.Code,
		OfficeLocation:  r.OfficeLocation,
		PhoneContact:    r.PhoneContact,
		EstablishedDate: established,
	}, nil
}

// ApplyTo copies the supplied fields onto d
func (r *PatchDepartmentRequest) ApplyTo(d *models.Department) error {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Code != nil {
		d.Code = *r.Code
	}
	if r.OfficeLocation != nil {
		d.OfficeLocation = *r.OfficeLocation
	}
	if r.PhoneContact != nil {
		d.PhoneContact = *r.PhoneContact
	}
	if r.EstablishedDate != nil {
		established, err := parseDateField("established_date", *r.EstablishedDate)
		if err != nil {
			return err
		}
		d.EstablishedDate = established
	}
	return nil
}

// NewDepartmentResponse maps a department to its wire form
func NewDepartmentResponse(d *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:              d.ID,
		Name:            d.Name,
		Code:            d.Code,
		OfficeLocation:  d.OfficeLocation,
		PhoneContact:    d.PhoneContact,
		EstablishedDate: helpers.FormatDate(d.EstablishedDate),
	}
}

// NewDepartmentListResponse maps a list of departments
func NewDepartmentListResponse(departments []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, NewDepartmentResponse(d))
	}
	return out
}
