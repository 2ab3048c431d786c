package models

import "time"

// ServiceOrder é a OS. O número humano (OS-0001) é atribuído na criação
// e nunca muda; FinalCost é exposto na API como "price" (ver internal/dto).
type ServiceOrder struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"size:20;uniqueIndex;not null" json:"number"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	TechnicianID *uint `json:"technician_id"`
	Technician   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician,omitempty"`

	Equipment    string `gorm:"size:100;not null" json:"equipment"`
	Brand        string `gorm:"size:50" json:"brand"`
	Model        string `gorm:"size:50" json:"model"`
	SerialNumber string `gorm:"size:50" json:"serial_number"`

	ReportedIssue  string `gorm:"type:text;not null" json:"reported_issue"`
	DiagnosedIssue string `gorm:"type:text" json:"diagnosed_issue"`
	Solution       string `gorm:"type:text" json:"solution"`

	Priority string `gorm:"size:20;default:'normal'" json:"priority"`
	Status   string `gorm:"size:20;default:'open'" json:"status"`

	FinalCost float64 `gorm:"type:numeric(10,2);default:0" json:"-"`

	TechnicianNotes string `gorm:"type:text" json:"technician_notes"`
	CustomerNotes   string `gorm:"type:text" json:"customer_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
