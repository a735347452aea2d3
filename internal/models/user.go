package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role — роль пользователя на платформе.
type Role string

const (
	RoleClimber Role = "climber"
	RoleManager Role = "manager"
)

// Valid сообщает, известна ли роль.
func (r Role) Valid() bool {
	return r == RoleClimber || r == RoleManager
}

// User — учётная запись. Хеш пароля наружу не сериализуется.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash []byte             `bson:"password_hash,omitempty" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	Image        string             `bson:"image" json:"image"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
