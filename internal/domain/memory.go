package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Memory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Images      []MemoryImage      `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// MemoryImage is embedded in its memory document, not stored as a
// separate collection.
type MemoryImage struct {
	Data    string `bson:"data" json:"data"`
	Caption string `bson:"caption" json:"caption"`
}
