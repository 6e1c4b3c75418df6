package handlers

import (
	"net/http"
	"strings"

	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

func vehicleFilters(c *gin.Context) repositories.VehicleFilters {
	return repositories.VehicleFilters{
		Brand:    strings.TrimSpace(c.Query("brand")),
		YearMin:  queryInt(c, "yearMin"),
		YearMax:  queryInt(c, "yearMax"),
		PriceMin: queryInt64(c, "priceMin"),
		PriceMax: queryInt64(c, "priceMax"),
	}
}

// GET /api/vehicles?q=&brand=&yearMin=&priceMax=&page=&pageSize=
func (a API) ListVehicles(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Vehicles.ListPublic(c.Query("q"), vehicleFilters(c), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/my/vehicles
func (a API) ListMyVehicles(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Vehicles.ListMine(caller(c), c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/vehicles/:id
func (a API) GetVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := a.Vehicles.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles
func (a API) CreateVehicle(c *gin.Context) {
	var in services.VehicleInput
	if !BindJSONOrError(c, &in) {
		return
	}
	v, err := a.Vehicles.Create(caller(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/vehicles/:id
func (a API) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.VehicleInput
	if !BindJSONOrError(c, &in) {
		return
	}
	v, err := a.Vehicles.Update(caller(c), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/vehicles/:id
func (a API) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := a.Vehicles.Delete(caller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
