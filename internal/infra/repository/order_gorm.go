package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/ostech-br/os-manager/internal/domain/order"
	"github.com/ostech-br/os-manager/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *OrderGormRepository) ClientExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// ServiceOrder (create)
// --------------------------------------------------

// maxNumberQuery varre o maior sequencial existente no padrão OS-####.
// Mesma query da versão original.
const maxNumberQuery = `
	SELECT COALESCE(
		MAX(
			CASE
				WHEN number ~ '^OS-[0-9]+$'
				THEN CAST(SUBSTRING(number FROM 4) AS INTEGER)
				ELSE 0
			END
		), 0
	)
	FROM service_orders`

// CreateWithNumber assigns the next sequential order number inside a
// transaction. The advisory lock serialises concurrent creations —
// FOR UPDATE cannot cover the read-max step (aggregates take no row
// locks, and an empty table has no row to lock), so the read-then-
// insert pair is guarded explicitly.
func (r *OrderGormRepository) CreateWithNumber(
	ctx context.Context,
	so *models.ServiceOrder,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext('service_orders:number'))",
		).Error; err != nil {
			return err
		}

		var maxSeq int
		if err := tx.Raw(maxNumberQuery).Scan(&maxSeq).Error; err != nil {
			return err
		}

		so.Number = domain.NextNumber(maxSeq)
		return tx.Create(so).Error
	})
}

// --------------------------------------------------
// ServiceOrder (read)
// --------------------------------------------------

func (r *OrderGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.ServiceOrder, error) {

	var so models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&so, id).Error; err != nil {
		return nil, err
	}
	return &so, nil
}

func (r *OrderGormRepository) List(
	ctx context.Context,
	filters domain.ListFilters,
) ([]models.ServiceOrder, error) {

	q := r.db.WithContext(ctx).Model(&models.ServiceOrder{}).Preload("Client")

	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		q = q.Where("priority = ?", filters.Priority)
	}
	if filters.ClientID != 0 {
		q = q.Where("client_id = ?", filters.ClientID)
	}
	if !filters.DateFrom.IsZero() {
		q = q.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		// DateTo é inclusivo no dia: < dia seguinte.
		q = q.Where("created_at < ?", filters.DateTo.AddDate(0, 0, 1))
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		q = q.Where(
			"number ILIKE ? OR equipment ILIKE ? OR brand ILIKE ? OR model ILIKE ? OR serial_number ILIKE ?",
			like, like, like, like, like,
		)
	}

	var orders []models.ServiceOrder
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// --------------------------------------------------
// ServiceOrder (write)
// --------------------------------------------------

func (r *OrderGormRepository) Update(
	ctx context.Context,
	so *models.ServiceOrder,
) error {
	return r.db.WithContext(ctx).Save(so).Error
}

func (r *OrderGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ServiceOrder{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
