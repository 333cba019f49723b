package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportLocationHome   = "home"
	ReportLocationOffice = "office"
)

const (
	ReportStatusInProgress = "in-progress"
	ReportStatusCompleted  = "completed"
	ReportStatusBlocked    = "blocked"
	ReportStatusOnHold     = "on-hold"
	ReportStatusPending    = "pending"
)

type WorkReport struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Date      string             `bson:"date" json:"date"`
	Project   string             `bson:"project" json:"project"`
	Tasks     string             `bson:"tasks" json:"tasks"`
	Location  string             `bson:"location" json:"location"`
	Status    string             `bson:"status" json:"status"`
	Hours     string             `bson:"hours" json:"hours"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidReportStatus(status string) bool {
	switch status {
	case ReportStatusInProgress, ReportStatusCompleted, ReportStatusBlocked, ReportStatusOnHold, ReportStatusPending:
		return true
	}
	return false
}

func ValidReportLocation(location string) bool {
	return location == ReportLocationHome || location == ReportLocationOffice
}
