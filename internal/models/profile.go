package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile — профиль скалолаза; не более одного на пользователя.
type Profile struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	User            primitive.ObjectID   `bson:"user" json:"user"`
	SkillLevel      SkillLevel           `bson:"skill_level,omitempty" json:"skillLevel,omitempty"`
	PreferredStyles []string             `bson:"preferred_styles" json:"preferredStyles"`
	Gyms            []primitive.ObjectID `bson:"gyms" json:"gyms"`
	SavedVideos     []primitive.ObjectID `bson:"saved_videos" json:"savedVideos"`
	UploadedVideos  []primitive.ObjectID `bson:"uploaded_videos" json:"uploadedVideos"`
	CreatedAt       time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updatedAt"`
}

// ProfileDetails — профиль с подтянутыми пользователем, скалодромами и сохранёнными видео.
type ProfileDetails struct {
	Profile         `bson:",inline"`
	UserInfo        *User   `bson:"user_info,omitempty" json:"userInfo,omitempty"`
	GymsInfo        []Gym   `bson:"gyms_info,omitempty" json:"gymsInfo,omitempty"`
	SavedVideosInfo []Video `bson:"saved_videos_info,omitempty" json:"savedVideosInfo,omitempty"`
}

// ProfileUpdate — частичное обновление профиля: nil-поля не меняются,
// непустой указатель на пустой срез очищает список.
type ProfileUpdate struct {
	SkillLevel      *SkillLevel
	PreferredStyles *[]string
	Gyms            *[]primitive.ObjectID
	SavedVideos     *[]primitive.ObjectID
	UploadedVideos  *[]primitive.ObjectID
}

// Empty сообщает, что обновлять нечего.
func (u ProfileUpdate) Empty() bool {
	return u.SkillLevel == nil && u.PreferredStyles == nil && u.Gyms == nil &&
		u.SavedVideos == nil && u.UploadedVideos == nil
}
