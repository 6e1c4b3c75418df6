package handlers

import (
	"net/http"

	"marketplace/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Admin listings: unscoped by tenant, gated on the base admin flag by
// both the route middleware and the services.

// GET /api/admin/vehicles
func (a API) AdminListVehicles(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Vehicles.AdminList(caller(c), c.Query("q"), vehicleFilters(c), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/parts
func (a API) AdminListParts(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Parts.AdminList(caller(c), c.Query("q"), partFilters(c), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/garages
func (a API) AdminListGarages(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Garages.AdminList(caller(c), c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/orders
func (a API) AdminListOrders(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Orders.AdminList(caller(c), c.Query("q"), c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/part-orders
func (a API) AdminListPartOrders(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.PartOrders.AdminList(caller(c), c.Query("q"), c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/reviews
func (a API) AdminListReviews(c *gin.Context) {
	page, pageSize := pageParams(c)
	filters := repositories.ReviewFilters{RatingMin: queryInt(c, "ratingMin")}
	result, err := a.Reviews.AdminList(caller(c), c.Query("q"), filters, page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/users
func (a API) AdminListUsers(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Users.AdminList(caller(c), c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
