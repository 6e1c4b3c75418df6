package handlers

import (
	"net/http"

	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/garages
func (a API) ListGarages(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Garages.ListPublic(c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/my/garages
func (a API) ListMyGarages(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Garages.ListMine(caller(c), c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/garages/:id
func (a API) GetGarage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	g, err := a.Garages.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// POST /api/garages
func (a API) CreateGarage(c *gin.Context) {
	var in services.GarageInput
	if !BindJSONOrError(c, &in) {
		return
	}
	g, err := a.Garages.Create(caller(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// PUT /api/garages/:id
func (a API) UpdateGarage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.GarageInput
	if !BindJSONOrError(c, &in) {
		return
	}
	g, err := a.Garages.Update(caller(c), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DELETE /api/garages/:id
func (a API) DeleteGarage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := a.Garages.Delete(caller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "garage deleted"})
}

// GET /api/garages/:id/reviews
func (a API) ListGarageReviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	filters := repositories.ReviewFilters{RatingMin: queryInt(c, "ratingMin")}
	result, err := a.Reviews.ListByGarage(id, c.Query("q"), filters, page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/garages/:id/reviews
func (a API) CreateGarageReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.ReviewInput
	if !BindJSONOrError(c, &in) {
		return
	}
	rv, err := a.Reviews.Create(caller(c), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

// GET /api/reviews/:id
func (a API) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rv, err := a.Reviews.Get(caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// DELETE /api/reviews/:id
func (a API) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := a.Reviews.Delete(caller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
