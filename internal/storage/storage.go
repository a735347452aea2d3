// storage содержит контракты слоя хранилищ climbhub.
//
// Каталог (users/gyms/profiles/videos/comments) живёт в документной БД,
// бинарные файлы — в объектном хранилище (objects.go).
// Идентификаторы передаются строками (hex ObjectID); некорректный формат
// трактуется реализациями как «нет такой записи».
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/storage.go -package=mocks

import (
	"context"
	"errors"
	"io"

	"github.com/pribylovaa/climbhub/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушен уникальный индекс (email пользователя, профиль пользователя).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — некорректный аргумент, не являющийся ключом поиска (например, id лайкающего).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Users — учётные записи.
type Users interface {
	// CreateUser создаёт пользователя. Дубликат email — ErrAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// UserByID возвращает пользователя по id.
	UserByID(ctx context.Context, id string) (*models.User, error)
	// UserByEmail ищет пользователя по нормализованному email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// SetUserImage сохраняет URL изображения профиля и возвращает обновлённую запись.
	SetUserImage(ctx context.Context, id, imageURL string) (*models.User, error)
}

// Gyms — скалодромы.
type Gyms interface {
	CreateGym(ctx context.Context, gym models.Gym) (*models.Gym, error)
	GymByID(ctx context.Context, id string) (*models.Gym, error)
	// ListGyms возвращает все скалодромы, отсортированные по имени.
	ListGyms(ctx context.Context) ([]models.Gym, error)
	// UpdateGym применяет только непустые поля update.
	UpdateGym(ctx context.Context, id string, update models.GymUpdate) (*models.Gym, error)
	DeleteGym(ctx context.Context, id string) error
	// GymInUse сообщает, ссылается ли на скалодром хотя бы один ролик или профиль.
	GymInUse(ctx context.Context, id string) (bool, error)
}

// Profiles — профили скалолазов. Ключ операций чтения/изменения — id пользователя.
type Profiles interface {
	// CreateProfile создаёт профиль. Второй профиль того же пользователя — ErrAlreadyExists.
	CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	ProfileByID(ctx context.Context, id string) (*models.Profile, error)
	ProfileByUser(ctx context.Context, userID string) (*models.Profile, error)
	// ProfileDetailsByUser возвращает профиль с пользователем, скалодромами и сохранёнными роликами.
	ProfileDetailsByUser(ctx context.Context, userID string) (*models.ProfileDetails, error)
	UpdateProfileByUser(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error)
	DeleteProfileByUser(ctx context.Context, userID string) error
	// SearchProfiles — регистронезависимый поиск подстроки в имени пользователя или уровне.
	// query экранируется реализацией.
	SearchProfiles(ctx context.Context, query string) ([]models.ProfileDetails, error)
}

// VideoFilter — необязательные фильтры выборки роликов; пустые поля не применяются.
type VideoFilter struct {
	ProfileID string
	GymID     string
}

// Videos — ролики.
type Videos interface {
	CreateVideo(ctx context.Context, video models.Video) (*models.Video, error)
	VideoByID(ctx context.Context, id string) (*models.VideoDetails, error)
	// ListVideos возвращает ролики с автором и скалодромом; сортировка created_at DESC, _id DESC.
	ListVideos(ctx context.Context, filter VideoFilter) ([]models.VideoDetails, error)
	UpdateVideo(ctx context.Context, id string, update models.VideoUpdate) (*models.Video, error)
	// DeleteVideo удаляет документ и возвращает его последнее состояние.
	DeleteVideo(ctx context.Context, id string) (*models.Video, error)
	// ToggleVideoLike атомарно добавляет/убирает userID из likes и пересчитывает likes_count.
	ToggleVideoLike(ctx context.Context, id, userID string) (*models.LikeResult, error)
	// AttachComment добавляет ссылку на комментарий. Нет ролика — ErrNotFound.
	AttachComment(ctx context.Context, videoID, commentID string) error
	DetachComment(ctx context.Context, videoID, commentID string) error
}

// Comments — комментарии к роликам.
type Comments interface {
	// CreateComment вставляет комментарий; непустой ID сохраняется как есть.
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
	// ListCommentsByVideo — комментарии ролика с авторами; created_at ASC, _id ASC.
	ListCommentsByVideo(ctx context.Context, videoID string) ([]models.CommentDetails, error)
	// DeleteCommentsByVideo удаляет все комментарии ролика и возвращает их число.
	DeleteCommentsByVideo(ctx context.Context, videoID string) (int64, error)
	ToggleCommentLike(ctx context.Context, id, userID string) (*models.LikeResult, error)
}

// Storage — верхнеуровневый интерфейс каталога.
type Storage interface {
	Users
	Gyms
	Profiles
	Videos
	Comments
	// Close закрывает соединения хранилища.
	Close(ctx context.Context) error
}

// Object — сохранённый в бакете объект.
type Object struct {
	Key string
	URL string
}

// Objects — объектное хранилище для роликов и изображений.
type Objects interface {
	// Upload сохраняет содержимое под ключом "<uuid>-<name>" и возвращает публичный URL.
	Upload(ctx context.Context, name string, body io.Reader, size int64, contentType string) (*Object, error)
	// Delete удаляет объект; отсутствие объекта ошибкой не считается.
	Delete(ctx context.Context, key string) error
}
