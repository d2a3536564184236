package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/pkg/resp"
	"github.com/sauravtand/restaurant-management-system/services"
	"github.com/sauravtand/restaurant-management-system/utils"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	code := utils.CurrentRestaurantCode(c)
	resp.OK(c, ctl.Service.List(code))
}

// POST /menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := ctl.Service.Add(utils.CurrentRestaurantCode(c), entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	})
	if item == nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var patch entity.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := ctl.Service.Update(utils.CurrentRestaurantCode(c), c.Param("id"), patch)
	if item == nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if !ctl.Service.Delete(utils.CurrentRestaurantCode(c), c.Param("id")) {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
