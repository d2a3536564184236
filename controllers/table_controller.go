package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/pkg/resp"
	"github.com/sauravtand/restaurant-management-system/services"
	"github.com/sauravtand/restaurant-management-system/utils"
)

type CreateTableRequest struct {
	Number   int    `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Status   string `json:"status" binding:"omitempty,oneof=free occupied reserved"`
}

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

// GET /tables
func (ctl *TableController) List(c *gin.Context) {
	code := utils.CurrentRestaurantCode(c)
	resp.OK(c, ctl.Service.List(code))
}

// POST /tables
func (ctl *TableController) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Status == "" {
		req.Status = entity.TableFree
	}

	table := ctl.Service.Add(utils.CurrentRestaurantCode(c), entity.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   req.Status,
	})
	if table == nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.Created(c, table)
}

// PATCH /tables/:id
func (ctl *TableController) Update(c *gin.Context) {
	var patch entity.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table := ctl.Service.Update(utils.CurrentRestaurantCode(c), c.Param("id"), patch)
	if table == nil {
		resp.NotFound(c, "table not found")
		return
	}
	resp.OK(c, table)
}

// DELETE /tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	if !ctl.Service.Delete(utils.CurrentRestaurantCode(c), c.Param("id")) {
		resp.NotFound(c, "table not found")
		return
	}
	resp.OK(c, gin.H{"message": "table deleted"})
}
