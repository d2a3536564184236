package entity

// Role values รองรับใน back office
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"-"` // bcrypt hash, never serialized
	Role           string `json:"role"`
	RestaurantCode string `json:"restaurantCode"`
}

// Sanitized returns a copy safe to hand outside the auth layer.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
