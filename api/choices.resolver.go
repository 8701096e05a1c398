package api

import (
	"fmt"

	"perkly/internal/db/models/postgres/public/table"
	"perkly/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listCategories(c *gin.Context) {
	values, err := m.CardRepository.DistinctValues(table.Card.CardCategory, repository.CardFilters{})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, values)
}

func (m ApiHandler) listSubCategories(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		returnErrorJsonCode(fmt.Errorf("category is required"), c, 400)
		return
	}

	values, err := m.CardRepository.DistinctValues(table.Card.SubCategory, repository.CardFilters{
		Category: category,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, values)
}

func (m ApiHandler) listPrograms(c *gin.Context) {
	category := c.Query("category")
	subCategory := c.Query("sub_category")
	if category == "" || subCategory == "" {
		returnErrorJsonCode(fmt.Errorf("category and sub_category are required"), c, 400)
		return
	}

	values, err := m.CardRepository.DistinctValues(table.Card.Program, repository.CardFilters{
		Category:    category,
		SubCategory: subCategory,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, values)
}
