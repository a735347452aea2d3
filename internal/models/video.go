package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video — ролик с трассой.
//   - DifficultyLevel принадлежит словарю GradingSystem;
//   - LikesCount всегда равен len(Likes), оба поля пишутся одним обновлением;
//   - ObjectKey — ключ объекта в бакете, наружу не отдаётся.
type Video struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Description     string               `bson:"description" json:"description"`
	GradingSystem   GradingSystem        `bson:"grading_system" json:"gradingSystem"`
	DifficultyLevel string               `bson:"difficulty_level" json:"difficultyLevel"`
	Gym             primitive.ObjectID   `bson:"gym" json:"gym"`
	Profile         primitive.ObjectID   `bson:"profile" json:"profile"`
	VideoURL        string               `bson:"video_url" json:"videoUrl"`
	ObjectKey       string               `bson:"object_key" json:"-"`
	Likes           []primitive.ObjectID `bson:"likes" json:"likes"`
	LikesCount      int                  `bson:"likes_count" json:"likesCount"`
	Comments        []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt       time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updatedAt"`
}

// Uploader — автор ролика или комментария: профиль и его пользователь.
type Uploader struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SkillLevel SkillLevel         `bson:"skill_level,omitempty" json:"skillLevel,omitempty"`
	User       *User              `bson:"user_info,omitempty" json:"user,omitempty"`
}

// VideoDetails — ролик с подтянутыми скалодромом и автором.
type VideoDetails struct {
	Video    `bson:",inline"`
	GymInfo  *Gym      `bson:"gym_info,omitempty" json:"gymInfo,omitempty"`
	Uploader *Uploader `bson:"uploader,omitempty" json:"uploader,omitempty"`
}

// VideoUpdate — частичное обновление ролика.
type VideoUpdate struct {
	Description     *string
	GradingSystem   *GradingSystem
	DifficultyLevel *string
	Gym             *primitive.ObjectID
}

// Empty сообщает, что обновлять нечего.
func (u VideoUpdate) Empty() bool {
	return u.Description == nil && u.GradingSystem == nil && u.DifficultyLevel == nil && u.Gym == nil
}

// LikeResult — состояние лайков после переключения.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}
