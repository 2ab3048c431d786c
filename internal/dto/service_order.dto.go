package dto

import (
	"time"

	"github.com/ostech-br/os-manager/internal/domain/order"
	"github.com/ostech-br/os-manager/internal/models"
)

// A API fala "price"; o banco guarda "final_cost". Este arquivo é o
// único ponto do sistema onde essa tradução acontece, nas duas direções.

type CreateServiceOrderRequest struct {
	ClientID     *uint  `json:"client_id"`
	TechnicianID *uint  `json:"technician_id"`
	Equipment    string `json:"equipment" validate:"required,min=3,max=100"`
	Brand        string `json:"brand" validate:"omitempty,max=50"`
	Model        string `json:"model" validate:"omitempty,max=50"`
	SerialNumber string `json:"serial_number" validate:"omitempty,max=50"`

	ReportedIssue string `json:"reported_issue" validate:"required,min=10,max=2000"`

	Priority string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status   string `json:"status" validate:"omitempty,oneof=open in_progress waiting_parts waiting_approval completed cancelled delivered"`

	CustomerNotes string `json:"customer_notes" validate:"omitempty,max=1000"`

	// Price entra como "price" e é persistido em final_cost.
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (r CreateServiceOrderRequest) ToModel() *models.ServiceOrder {
	so := &models.ServiceOrder{
		ClientID:      r.ClientID,
		TechnicianID:  r.TechnicianID,
		Equipment:     r.Equipment,
		Brand:         r.Brand,
		Model:         r.Model,
		SerialNumber:  r.SerialNumber,
		ReportedIssue: r.ReportedIssue,
		Priority:      string(order.PriorityNormal),
		Status:        string(order.StatusOpen),
		CustomerNotes: r.CustomerNotes,
	}
	if r.Priority != "" {
		so.Priority = r.Priority
	}
	if r.Status != "" {
		so.Status = r.Status
	}
	if r.Price != nil {
		so.FinalCost = *r.Price
	}
	return so
}

type UpdateServiceOrderRequest struct {
	TechnicianID *uint `json:"technician_id"`

	Equipment    *string `json:"equipment" validate:"omitempty,min=3,max=100"`
	Brand        *string `json:"brand" validate:"omitempty,max=50"`
	Model        *string `json:"model" validate:"omitempty,max=50"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=50"`

	ReportedIssue  *string `json:"reported_issue" validate:"omitempty,min=10,max=2000"`
	DiagnosedIssue *string `json:"diagnosed_issue" validate:"omitempty,max=2000"`
	Solution       *string `json:"solution" validate:"omitempty,max=2000"`

	Priority *string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status   *string `json:"status" validate:"omitempty,oneof=open in_progress waiting_parts waiting_approval completed cancelled delivered"`

	TechnicianNotes *string `json:"technician_notes" validate:"omitempty,max=1000"`
	CustomerNotes   *string `json:"customer_notes" validate:"omitempty,max=1000"`

	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

// Apply faz o COALESCE da API original: só sobrescreve o que veio no
// payload.
func (r UpdateServiceOrderRequest) Apply(so *models.ServiceOrder) {
	if r.TechnicianID != nil {
		so.TechnicianID = r.TechnicianID
	}
	if r.Equipment != nil {
		so.Equipment = *r.Equipment
	}
	if r.Brand != nil {
		so.Brand = *r.Brand
	}
	if r.Model != nil {
		so.Model = *r.Model
	}
	if r.SerialNumber != nil {
		so.SerialNumber = *r.SerialNumber
	}
	if r.ReportedIssue != nil {
		so.ReportedIssue = *r.ReportedIssue
	}
	if r.DiagnosedIssue != nil {
		so.DiagnosedIssue = *r.DiagnosedIssue
	}
	if r.Solution != nil {
		so.Solution = *r.Solution
	}
	if r.Priority != nil {
		so.Priority = *r.Priority
	}
	if r.Status != nil {
		so.Status = *r.Status
	}
	if r.TechnicianNotes != nil {
		so.TechnicianNotes = *r.TechnicianNotes
	}
	if r.CustomerNotes != nil {
		so.CustomerNotes = *r.CustomerNotes
	}
	if r.Price != nil {
		so.FinalCost = *r.Price
	}
}

type ListServiceOrdersQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=open in_progress waiting_parts waiting_approval completed cancelled delivered"`
	Priority string `form:"priority" validate:"omitempty,oneof=low normal high urgent"`
	ClientID uint   `form:"client_id"`
	Search   string `form:"search" validate:"omitempty,max=100"`

	DateFrom time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   time.Time `form:"date_to" time_format:"2006-01-02" validate:"omitempty,gtefield=DateFrom"`
}

type ServiceOrderResponse struct {
	ID     uint   `json:"id"`
	Number string `json:"number"`

	ClientID   *uint  `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`

	TechnicianID *uint `json:"technician_id"`

	Equipment    string `json:"equipment"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`

	ReportedIssue  string `json:"reported_issue"`
	DiagnosedIssue string `json:"diagnosed_issue"`
	Solution       string `json:"solution"`

	Priority string `json:"priority"`
	Status   string `json:"status"`

	// Price sai como "price", lido de final_cost.
	Price float64 `json:"price"`

	TechnicianNotes string `json:"technician_notes"`
	CustomerNotes   string `json:"customer_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ServiceOrderFromModel(so *models.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:              so.ID,
		Number:          so.Number,
		ClientID:        so.ClientID,
		TechnicianID:    so.TechnicianID,
		Equipment:       so.Equipment,
		Brand:           so.Brand,
		Model:           so.Model,
		SerialNumber:    so.SerialNumber,
		ReportedIssue:   so.ReportedIssue,
		DiagnosedIssue:  so.DiagnosedIssue,
		Solution:        so.Solution,
		Priority:        so.Priority,
		Status:          so.Status,
		Price:           so.FinalCost,
		TechnicianNotes: so.TechnicianNotes,
		CustomerNotes:   so.CustomerNotes,
		CreatedAt:       so.CreatedAt,
		UpdatedAt:       so.UpdatedAt,
	}
	if so.Client != nil {
		resp.ClientName = so.Client.Name
	}
	return resp
}

func ServiceOrdersFromModels(items []models.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(items))
	for i := range items {
		out = append(out, ServiceOrderFromModel(&items[i]))
	}
	return out
}
