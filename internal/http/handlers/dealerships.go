package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type dealershipRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// POST /api/dealerships — one-time tenant setup for an identity acting
// as DEALERSHIP. Conflicts when the dealership already exists.
func (a API) SetupDealership(c *gin.Context) {
	var req dealershipRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	d, err := a.Dealerships.Setup(caller(c), req.Name, req.Address, req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GET /api/dealerships/me
func (a API) MyDealership(c *gin.Context) {
	d, err := a.Dealerships.Mine(caller(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
