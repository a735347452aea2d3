package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment — комментарий к ролику. Text хранится без крайних пробелов и не пуст.
type Comment struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Video      primitive.ObjectID   `bson:"video" json:"video"`
	Profile    primitive.ObjectID   `bson:"profile" json:"profile"`
	Text       string               `bson:"text" json:"text"`
	Likes      []primitive.ObjectID `bson:"likes" json:"likes"`
	LikesCount int                  `bson:"likes_count" json:"likesCount"`
	CreatedAt  time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updatedAt"`
}

// CommentDetails — комментарий с подтянутым автором.
type CommentDetails struct {
	Comment `bson:",inline"`
	Author  *Uploader `bson:"author,omitempty" json:"author,omitempty"`
}
