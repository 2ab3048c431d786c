package order

import (
	"context"

	"github.com/ostech-br/os-manager/internal/audit"
	domain "github.com/ostech-br/os-manager/internal/domain/order"
	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/models"
)

// ======================================================
// USE CASE — CREATE SERVICE ORDER
// ======================================================

type CreateServiceOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateServiceOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateServiceOrder {
	return &CreateServiceOrder{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida a referência de cliente, atribui o próximo número
// sequencial e persiste a OS.
func (uc *CreateServiceOrder) Execute(
	ctx context.Context,
	so *models.ServiceOrder,
	createdBy uint,
) (*models.ServiceOrder, error) {

	// Cliente é opcional, mas quando informado precisa existir e não
	// pode estar soft-deletado.
	if so.ClientID != nil {
		exists, err := uc.repo.ClientExists(ctx, *so.ClientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, httperr.Validation("invalid reference to related record")
		}
	}

	if err := uc.repo.CreateWithNumber(ctx, so); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &createdBy,
		Action:   "service_order_created",
		Entity:   "service_order",
		EntityID: &so.ID,
		Metadata: map[string]any{"number": so.Number},
	})

	return so, nil
}
