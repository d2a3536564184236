package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sauravtand/restaurant-management-system/pkg/resp"
	"github.com/sauravtand/restaurant-management-system/services"
	"github.com/sauravtand/restaurant-management-system/utils"
)

type LoginRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	RestaurantCode string `json:"restaurantCode" binding:"required"`
}

type AuthController struct {
	Sessions    *services.SessionService
	Restaurants *services.RestaurantService
}

func NewAuthController(sessions *services.SessionService, restaurants *services.RestaurantService) *AuthController {
	return &AuthController{Sessions: sessions, Restaurants: restaurants}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := a.Sessions.Login(req.Email, req.Password, req.RestaurantCode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"token":      result.Token,
		"user":       result.User,
		"restaurant": result.Restaurant,
	})
}

// POST /auth/logout (ต้อง login)
func (a *AuthController) Logout(c *gin.Context) {
	if v, ok := c.Get("token"); ok {
		if token, ok := v.(string); ok {
			a.Sessions.Logout(token)
		}
	}
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me (ต้อง login) — client ที่เปิดใหม่ใช้ restore state
func (a *AuthController) Me(c *gin.Context) {
	user := utils.CurrentUser(c)
	if user == nil {
		resp.Unauthorized(c, "not authenticated")
		return
	}

	restaurant := a.Restaurants.Get(user.RestaurantCode)
	if restaurant == nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	resp.OK(c, gin.H{"user": user, "restaurant": restaurant})
}
