package handlers

import (
	"net/http"

	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/part-orders
func (a API) CreatePartOrder(c *gin.Context) {
	var in services.PartOrderInput
	if !BindJSONOrError(c, &in) {
		return
	}
	o, err := a.PartOrders.Create(caller(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// GET /api/part-orders
func (a API) ListMyPartOrders(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.PartOrders.ListMine(caller(c), c.Query("q"), c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/my/part-orders
func (a API) ListSellerPartOrders(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.PartOrders.ListSeller(caller(c), c.Query("q"), c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/part-orders/:id
func (a API) GetPartOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := a.PartOrders.Get(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// PUT /api/part-orders/:id/status
func (a API) UpdatePartOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	o, err := a.PartOrders.UpdateStatus(caller(c), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// POST /api/part-orders/:id/cancel
func (a API) CancelPartOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := a.PartOrders.Cancel(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GET /api/part-orders/:id/invoice
func (a API) GetPartOrderInvoicePDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := a.PartOrders.Get(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := a.Docs.PartOrderInvoice(o)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to render invoice", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
