package dto

import "github.com/ostech-br/os-manager/internal/models"

type ClientRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=100"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Company  string `json:"company" validate:"omitempty,max=100"`
	Document string `json:"document" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=200"`
	City     string `json:"city" validate:"omitempty,max=100"`
	State    string `json:"state" validate:"omitempty,len=2"`
	ZipCode  string `json:"zip_code" validate:"omitempty,max=10"`
	Notes    string `json:"notes" validate:"omitempty,max=1000"`
	IsActive *bool  `json:"is_active"`
}

// Apply copies the request onto a model. PUT substitui o registro
// inteiro, como na API original.
func (r ClientRequest) Apply(c *models.Client) {
	c.Name = r.Name
	c.Email = r.Email
	c.Phone = r.Phone
	c.Company = r.Company
	c.Document = r.Document
	c.Address = r.Address
	c.City = r.City
	c.State = r.State
	c.ZipCode = r.ZipCode
	c.Notes = r.Notes
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	} else {
		c.IsActive = true
	}
}
