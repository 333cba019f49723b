package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AbsenceStatusPending  = "pending"
	AbsenceStatusApproved = "approved"
	AbsenceStatusRejected = "rejected"
)

type WeatherAbsenceRequest struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID   `bson:"user_id" json:"userId"`
	EmployeeName string               `bson:"employee_name" json:"employeeName"`
	EmployeeID   string               `bson:"employee_id" json:"employeeId"`
	Location     string               `bson:"location" json:"location"`
	Description  string               `bson:"description" json:"description"`
	Verification VerificationSnapshot `bson:"verification" json:"verification"`
	Status       string               `bson:"status" json:"status"`
	Comment      string               `bson:"comment" json:"comment"`
	SubmittedAt  time.Time            `bson:"submitted_at" json:"submittedAt"`
	ReviewedAt   *time.Time           `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
}

// VerificationSnapshot is the denormalized weather result captured when the
// request is submitted. It is never refreshed on read paths; only the
// background re-verification job may overwrite it while the request is
// still pending.
type VerificationSnapshot struct {
	Verified  bool            `bson:"verified" json:"verified"`
	Weather   WeatherSnapshot `bson:"weather" json:"weather"`
	CheckedAt time.Time       `bson:"checked_at" json:"checkedAt"`
}

type WeatherSnapshot struct {
	City        string `bson:"city" json:"city"`
	Temperature int    `bson:"temperature" json:"temperature"`
	Condition   string `bson:"condition" json:"condition"`
	Humidity    int    `bson:"humidity" json:"humidity"`
	WindSpeed   int    `bson:"wind_speed" json:"windSpeed"`
}

func ValidAbsenceStatus(status string) bool {
	switch status {
	case AbsenceStatusPending, AbsenceStatusApproved, AbsenceStatusRejected:
		return true
	}
	return false
}
