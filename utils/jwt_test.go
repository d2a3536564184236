package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sauravtand/restaurant-management-system/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	user := entity.User{ID: "user1", Role: entity.RoleOwner, RestaurantCode: "REST001"}

	token, err := GenerateToken(user, "secret", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, entity.RoleOwner, claims.Role)
	assert.Equal(t, "REST001", claims.RestaurantCode)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(entity.User{ID: "user1"}, "secret", time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(entity.User{ID: "user1"}, "secret", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
