package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelmate-api/internal/domain"
)

// Identity is the resolved caller attached by the auth middleware. It
// deliberately carries no credential hash; handlers and services receive
// it as a value instead of reading ambient request state.
type Identity struct {
	ID             primitive.ObjectID
	Email          string
	Name           string
	Avatar         string
	Role           string
	EmployeeNumber string
}

func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

func (i Identity) IsEmployee() bool {
	return i.Role == domain.RoleEmployee || i.Role == domain.RoleAdmin
}
