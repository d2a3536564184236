package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/entity"
)

func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentRestaurantCode คืน tenant key ของ session นี้
// CRUD ทุกตัว scope ด้วยค่านี้เท่านั้น ไม่รับ code จาก request body
func CurrentRestaurantCode(c *gin.Context) string {
	if v, ok := c.Get("restaurantCode"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
