package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gym — скалодром.
type Gym struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Location  string             `bson:"location" json:"location"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// GymUpdate — частичное обновление: nil-поля не меняются.
type GymUpdate struct {
	Name     *string
	Location *string
}
