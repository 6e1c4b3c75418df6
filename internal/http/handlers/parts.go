package handlers

import (
	"net/http"
	"strings"

	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
)

func partFilters(c *gin.Context) repositories.PartFilters {
	return repositories.PartFilters{
		Brand:    strings.TrimSpace(c.Query("brand")),
		PriceMin: queryInt64(c, "priceMin"),
		PriceMax: queryInt64(c, "priceMax"),
	}
}

// GET /api/parts
func (a API) ListParts(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Parts.ListPublic(c.Query("q"), partFilters(c), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/my/parts
func (a API) ListMyParts(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := a.Parts.ListMine(caller(c), c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/parts/:id
func (a API) GetPart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := a.Parts.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/parts
func (a API) CreatePart(c *gin.Context) {
	var in services.PartInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := a.Parts.Create(caller(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /api/parts/:id
func (a API) UpdatePart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.PartInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := a.Parts.Update(caller(c), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/parts/:id
func (a API) DeletePart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := a.Parts.Delete(caller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "part deleted"})
}
