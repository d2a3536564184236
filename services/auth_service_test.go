package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sauravtand/restaurant-management-system/configs"
	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
)

func newAuth() *AuthService {
	return NewAuthService(repository.NewStore(configs.SeedUsers(), configs.SeedRestaurants()))
}

func TestAuthenticate(t *testing.T) {
	svc := newAuth()

	cases := []struct {
		name     string
		email    string
		password string
		code     string
		wantOK   bool
	}{
		{name: "valid owner", email: "john@example.com", password: "password", code: "REST001", wantOK: true},
		{name: "valid manager other restaurant", email: "lisa@example.com", password: "password", code: "REST002", wantOK: true},
		{name: "wrong password", email: "john@example.com", password: "Password", code: "REST001"},
		{name: "wrong email", email: "john@example.org", password: "password", code: "REST001"},
		{name: "wrong restaurant code", email: "john@example.com", password: "password", code: "REST002"},
		{name: "unknown restaurant code", email: "john@example.com", password: "password", code: "REST999"},
		{name: "empty everything", email: "", password: "", code: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, restaurant, err := svc.Authenticate(tc.email, tc.password, tc.code)
			if !tc.wantOK {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Nil(t, user)
				assert.Nil(t, restaurant)
				return
			}
			assert.NoError(t, err)
			if user == nil || restaurant == nil {
				t.Fatal("expected user and restaurant")
			}
			assert.Empty(t, user.Password)
			assert.Equal(t, tc.code, restaurant.Code)
		})
	}
}

func TestAuthenticateScenario(t *testing.T) {
	svc := newAuth()

	user, restaurant, err := svc.Authenticate("john@example.com", "password", "REST001")
	assert.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, entity.RoleOwner, user.Role)
	assert.Equal(t, "REST001", user.RestaurantCode)
	assert.Empty(t, user.Password)

	assert.Equal(t, "Italiano Delizioso", restaurant.Name)
	assert.Len(t, restaurant.Menu, 6)
	assert.Len(t, restaurant.Tables, 6)
	assert.Len(t, restaurant.Orders, 3)
}

func TestVerifyAccess(t *testing.T) {
	svc := newAuth()
	user := &entity.User{RestaurantCode: "REST001"}

	assert.True(t, svc.VerifyAccess(user, "REST001"))
	assert.False(t, svc.VerifyAccess(user, "REST002"))
	assert.False(t, svc.VerifyAccess(nil, "REST001"))
}

func TestHasRole(t *testing.T) {
	svc := newAuth()
	user := &entity.User{Role: entity.RoleManager}

	assert.True(t, svc.HasRole(user, entity.RoleOwner, entity.RoleManager))
	assert.False(t, svc.HasRole(user, entity.RoleOwner))
	assert.False(t, svc.HasRole(nil, entity.RoleOwner, entity.RoleManager, entity.RoleStaff))
}
