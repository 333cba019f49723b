package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleTraveler = "traveler"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"password" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Avatar         string             `bson:"avatar" json:"avatar"`
	Role           string             `bson:"role" json:"role"`
	EmployeeNumber string             `bson:"employee_number" json:"employeeNumber"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
