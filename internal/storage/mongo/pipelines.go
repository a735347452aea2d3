package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hidePassword убирает хеш пароля из подтянутого пользователя.
func hidePassword(path string) bson.D {
	return bson.D{{Key: "$project", Value: bson.D{{Key: path + ".password_hash", Value: 0}}}}
}

// unwindOptional разворачивает массив из $lookup в объект; пустой массив -> поле отсутствует.
func unwindOptional(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

// lookup — простой $lookup по _id.
func lookup(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

// authorStages подтягивает профиль по localField и пользователя этого профиля в поле as.
// Результат декодируется в models.Uploader.
func authorStages(localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: profilesCollection},
			{Key: "let", Value: bson.D{{Key: "pid", Value: "$" + localField}}},
			{Key: "pipeline", Value: mongodriver.Pipeline{
				{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$pid"}}}}}}},
				lookup(usersCollection, "user", "user_info"),
				unwindOptional("user_info"),
				{{Key: "$project", Value: bson.D{
					{Key: "skill_level", Value: 1},
					{Key: "user_info._id", Value: 1},
					{Key: "user_info.name", Value: 1},
					{Key: "user_info.email", Value: 1},
					{Key: "user_info.role", Value: 1},
					{Key: "user_info.image", Value: 1},
				}}},
			}},
			{Key: "as", Value: as},
		}}},
		unwindOptional(as),
	}
}

// videoDetailsPipeline — выборка роликов с автором и скалодромом, новые первыми.
func videoDetailsPipeline(match bson.D) mongodriver.Pipeline {
	p := mongodriver.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		lookup(gymsCollection, "gym", "gym_info"),
		unwindOptional("gym_info"),
	}

	return append(p, authorStages("profile", "uploader")...)
}

// toggleLikeUpdate — update-пайплайн переключения лайка:
// userID удаляется из likes, если он там есть, иначе добавляется в конец;
// likes_count пересчитывается из итогового массива в том же обновлении.
func toggleLikeUpdate(userID primitive.ObjectID, now time.Time) mongodriver.Pipeline {
	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}

	return mongodriver.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{userID, likes}}}},
				{Key: "then", Value: bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: likes},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", userID}}}},
				}}}},
				{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{userID}}}}},
			}}}},
			{Key: "updated_at", Value: now},
		}}},
		{{Key: "$set", Value: bson.D{{Key: "likes_count", Value: bson.D{{Key: "$size", Value: "$likes"}}}}}},
	}
}

// toggleLike применяет toggleLikeUpdate к документу коллекции coll.
func toggleLike(ctx context.Context, coll *mongodriver.Collection, op, id, userID string) (*models.LikeResult, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	uid, ok := objectID(userID)
	if !ok {
		return nil, fmt.Errorf("%s: user id: %w", op, storage.ErrInvalidArgument)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "likes", Value: 1}, {Key: "likes_count", Value: 1}})

	var doc struct {
		Likes      []primitive.ObjectID `bson:"likes"`
		LikesCount int                  `bson:"likes_count"`
	}

	err := coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, toggleLikeUpdate(uid, toMS(time.Now())), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &models.LikeResult{LikesCount: doc.LikesCount}
	for _, l := range doc.Likes {
		if l == uid {
			res.Liked = true
			break
		}
	}

	return res, nil
}
