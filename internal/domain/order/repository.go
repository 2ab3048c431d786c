package order

import (
	"context"
	"time"

	"github.com/ostech-br/os-manager/internal/models"
)

// ListFilters restringe a listagem de OS. Datas zero são ignoradas.
type ListFilters struct {
	Status   string
	Priority string
	ClientID uint
	Search   string
	DateFrom time.Time
	DateTo   time.Time
}

type Repository interface {
	// -------- Client --------
	ClientExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- ServiceOrder (create) --------
	// CreateWithNumber assigns the next sequential order number and
	// inserts the row in one transaction, serialised against
	// concurrent creations.
	CreateWithNumber(
		ctx context.Context,
		so *models.ServiceOrder,
	) error

	// -------- ServiceOrder (read) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.ServiceOrder, error)

	List(
		ctx context.Context,
		filters ListFilters,
	) ([]models.ServiceOrder, error)

	// -------- ServiceOrder (write) --------
	Update(
		ctx context.Context,
		so *models.ServiceOrder,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
