package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ostech-br/os-manager/internal/models"
)

// O campo chega como "price" e sai como "price", mas dentro do modelo
// vive como final_cost. O round trip não pode perder o valor.
func TestPriceRoundTrip(t *testing.T) {
	price := 123.45

	so := CreateServiceOrderRequest{
		Equipment:     "Notebook Dell",
		ReportedIssue: "tela quebrada após queda",
		Price:         &price,
	}.ToModel()

	assert.Equal(t, 123.45, so.FinalCost)

	resp := ServiceOrderFromModel(so)
	assert.Equal(t, 123.45, resp.Price)
}

func TestToModelDefaults(t *testing.T) {
	so := CreateServiceOrderRequest{
		Equipment:     "Impressora HP",
		ReportedIssue: "não puxa papel, atola sempre",
	}.ToModel()

	assert.Equal(t, "normal", so.Priority)
	assert.Equal(t, "open", so.Status)
	assert.Zero(t, so.FinalCost)
}

func TestToModelKeepsExplicitValues(t *testing.T) {
	so := CreateServiceOrderRequest{
		Equipment:     "Desktop",
		ReportedIssue: "desliga sozinho em uso pesado",
		Priority:      "urgent",
		Status:        "in_progress",
	}.ToModel()

	assert.Equal(t, "urgent", so.Priority)
	assert.Equal(t, "in_progress", so.Status)
}

// Apply só sobrescreve o que veio no payload.
func TestApplyPartialUpdate(t *testing.T) {
	so := &models.ServiceOrder{
		Equipment:     "Notebook",
		ReportedIssue: "não liga depois da chuva",
		Priority:      "normal",
		Status:        "open",
		FinalCost:     100,
	}

	status := "completed"
	price := 250.0
	solution := "troca da fonte e limpeza da placa"

	UpdateServiceOrderRequest{
		Status:   &status,
		Price:    &price,
		Solution: &solution,
	}.Apply(so)

	assert.Equal(t, "completed", so.Status)
	assert.Equal(t, 250.0, so.FinalCost)
	assert.Equal(t, solution, so.Solution)

	// Campos ausentes ficam como estavam.
	assert.Equal(t, "Notebook", so.Equipment)
	assert.Equal(t, "normal", so.Priority)
	assert.Equal(t, "não liga depois da chuva", so.ReportedIssue)
}

func TestServiceOrderFromModelUsesPreloadedClient(t *testing.T) {
	clientID := uint(3)
	so := &models.ServiceOrder{
		Number:        "OS-0007",
		ClientID:      &clientID,
		Client:        &models.Client{Name: "Maria Silva"},
		Equipment:     "Celular",
		ReportedIssue: "tela trincada no canto",
		Priority:      "high",
		Status:        "open",
	}
	so.ID = 7

	resp := ServiceOrderFromModel(so)

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "OS-0007", resp.Number)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, &clientID, resp.ClientID)
}
