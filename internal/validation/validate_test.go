package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostech-br/os-manager/internal/httperr"
)

type createOrderPayload struct {
	Equipment     string   `json:"equipment" validate:"required,min=3,max=100"`
	ReportedIssue string   `json:"reported_issue" validate:"required,min=10"`
	Priority      string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
}

func TestCheckValidPayload(t *testing.T) {
	price := 150.0
	err := Check(createOrderPayload{
		Equipment:     "Notebook",
		ReportedIssue: "não liga depois da queda",
		Priority:      "high",
		Price:         &price,
	})
	assert.Nil(t, err)
}

// Todas as violações voltam juntas, não só a primeira.
func TestCheckCollectsAllViolations(t *testing.T) {
	neg := -1.0
	err := Check(createOrderPayload{
		Equipment: "PC",
		Priority:  "asap",
		Price:     &neg,
	})

	require.NotNil(t, err)
	assert.Equal(t, 400, err.Status)
	require.Len(t, err.ValidationErrors, 4)

	byField := map[string]string{}
	for _, fe := range err.ValidationErrors {
		byField[fe.Field] = fe.Message
	}

	// Nomes de campo vêm do JSON, não do struct.
	assert.Contains(t, byField, "equipment")
	assert.Contains(t, byField, "reported_issue")
	assert.Contains(t, byField, "priority")
	assert.Contains(t, byField, "price")

	assert.Equal(t, "equipment must have at least 3 characters", byField["equipment"])
	assert.Equal(t, "reported_issue is required", byField["reported_issue"])
	assert.Equal(t, "price must not be negative", byField["price"])
}

type searchPayload struct {
	DateFrom time.Time `form:"date_from"`
	DateTo   time.Time `form:"date_to" validate:"omitempty,gtefield=DateFrom"`
}

func TestCheckDateOrdering(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	err := Check(searchPayload{DateFrom: from, DateTo: from.AddDate(0, 0, -1)})
	require.NotNil(t, err)
	require.Len(t, err.ValidationErrors, 1)
	assert.Equal(t, httperr.FieldError{
		Field:   "date_to",
		Message: "date_to must not precede DateFrom",
	}, err.ValidationErrors[0])

	assert.Nil(t, Check(searchPayload{DateFrom: from, DateTo: from.AddDate(0, 0, 5)}))
	assert.Nil(t, Check(searchPayload{DateFrom: from, DateTo: from}))
}
