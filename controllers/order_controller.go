package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/pkg/resp"
	"github.com/sauravtand/restaurant-management-system/services"
	"github.com/sauravtand/restaurant-management-system/utils"
)

type OrderItemIn struct {
	MenuItemID string  `json:"menuItemId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	TableID     string        `json:"tableId" binding:"required"`
	TableNumber int           `json:"tableNumber" binding:"required"`
	Items       []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	Status      string        `json:"status" binding:"omitempty,oneof=pending preparing served completed cancelled"`
	// Total คิดจากฝั่ง caller; server เก็บตามที่ส่งมา
	Total float64 `json:"total" binding:"gte=0"`
}

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	code := utils.CurrentRestaurantCode(c)
	resp.OK(c, ctl.Service.List(code))
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	order := ctl.Service.Add(utils.CurrentRestaurantCode(c), entity.Order{
		TableID:     req.TableID,
		TableNumber: req.TableNumber,
		Items:       items,
		Status:      req.Status,
		Total:       req.Total,
	})
	if order == nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.Created(c, order)
}

// PATCH /orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	var patch entity.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order := ctl.Service.Update(utils.CurrentRestaurantCode(c), c.Param("id"), patch)
	if order == nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	if !ctl.Service.Delete(utils.CurrentRestaurantCode(c), c.Param("id")) {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}
