package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/pkg/resp"
	"github.com/sauravtand/restaurant-management-system/services"
	"github.com/sauravtand/restaurant-management-system/utils"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// GET /restaurant
func (ctl *RestaurantController) Detail(c *gin.Context) {
	restaurant := ctl.Service.Get(utils.CurrentRestaurantCode(c))
	if restaurant == nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, restaurant)
}

// GET /restaurant/dashboard
func (ctl *RestaurantController) Dashboard(c *gin.Context) {
	resp.OK(c, ctl.Service.Dashboard(utils.CurrentRestaurantCode(c)))
}
