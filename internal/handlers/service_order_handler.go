package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ostech-br/os-manager/internal/audit"
	domain "github.com/ostech-br/os-manager/internal/domain/order"
	"github.com/ostech-br/os-manager/internal/dto"
	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/middleware"
	ucorder "github.com/ostech-br/os-manager/internal/usecase/order"
	"github.com/ostech-br/os-manager/internal/validation"
)

type ServiceOrderHandler struct {
	repo     domain.Repository
	createUC *ucorder.CreateServiceOrder
	audit    *audit.Dispatcher
}

func NewServiceOrderHandler(
	repo domain.Repository,
	createUC *ucorder.CreateServiceOrder,
	audit *audit.Dispatcher,
) *ServiceOrderHandler {
	return &ServiceOrderHandler{
		repo:     repo,
		createUC: createUC,
		audit:    audit,
	}
}

// ======================================================
// LIST
// ======================================================
func (h *ServiceOrderHandler) List(c *gin.Context) {
	var query dto.ListServiceOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.Abort(c, httperr.Validation("invalid query parameters"))
		return
	}
	if err := validation.Check(query); err != nil {
		middleware.Abort(c, err)
		return
	}

	orders, err := h.repo.List(c.Request.Context(), domain.ListFilters{
		Status:   query.Status,
		Priority: query.Priority,
		ClientID: query.ClientID,
		Search:   query.Search,
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
	})
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ServiceOrdersFromModels(orders))
}

// ======================================================
// GET
// ======================================================
func (h *ServiceOrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	so, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		middleware.Abort(c, httperr.FromStore(err, "service order not found"))
		return
	}

	c.JSON(http.StatusOK, dto.ServiceOrderFromModel(so))
}

// ======================================================
// CREATE
// ======================================================
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, httperr.Validation("invalid request body"))
		return
	}
	if err := validation.Check(req); err != nil {
		middleware.Abort(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	so, err := h.createUC.Execute(c.Request.Context(), req.ToModel(), userID)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ServiceOrderFromModel(so))
}

// ======================================================
// UPDATE
// ======================================================
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, httperr.Validation("invalid request body"))
		return
	}
	if err := validation.Check(req); err != nil {
		middleware.Abort(c, err)
		return
	}

	so, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		middleware.Abort(c, httperr.FromStore(err, "service order not found"))
		return
	}

	previousStatus := so.Status
	req.Apply(so)

	if err := h.repo.Update(c.Request.Context(), so); err != nil {
		middleware.Abort(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	meta := map[string]any{"number": so.Number}
	if so.Status != previousStatus {
		meta["status_from"] = previousStatus
		meta["status_to"] = so.Status
	}
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_order_updated",
		Entity:   "service_order",
		EntityID: &so.ID,
		Metadata: meta,
	})

	c.JSON(http.StatusOK, dto.ServiceOrderFromModel(so))
}

// ======================================================
// DELETE
// ======================================================
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		middleware.Abort(c, httperr.FromStore(err, "service order not found"))
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	orderID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_order_deleted",
		Entity:   "service_order",
		EntityID: &orderID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "service order deleted"})
}
