package handlers

import (
	"net/http"

	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/orders
func (a API) CreateOrder(c *gin.Context) {
	var in services.OrderInput
	if !BindJSONOrError(c, &in) {
		return
	}
	o, err := a.Orders.Create(caller(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// GET /api/orders — the caller's own orders as buyer.
func (a API) ListMyOrders(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Orders.ListMine(caller(c), c.Query("q"), c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/my/orders — incoming orders for the caller's dealership.
func (a API) ListSellerOrders(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Orders.ListSeller(caller(c), c.Query("q"), c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/orders/:id
func (a API) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := a.Orders.Get(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/orders/:id/status
func (a API) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	o, err := a.Orders.UpdateStatus(caller(c), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// POST /api/orders/:id/cancel
func (a API) CancelOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := a.Orders.Cancel(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GET /api/orders/:id/invoice — PDF, restricted to order participants.
func (a API) GetOrderInvoicePDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := a.Orders.Get(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := a.Docs.OrderInvoice(o)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to render invoice", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
