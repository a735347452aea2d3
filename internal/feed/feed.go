// feed разбивает каталог роликов на «подходящие» и «остальные»
// по предпочтениям профиля зрителя.
//
// Ролик подходит, если его сложность попадает в диапазон уровня зрителя
// для собственной системы оценки ролика ИЛИ он снят на скалодроме из профиля.
// Обе части отсортированы от новых к старым; при равном времени — по id по убыванию.
package feed

import (
	"sort"

	"github.com/pribylovaa/climbhub/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// gradeRanges — диапазоны сложности для каждого уровня подготовки.
// Brown отсутствует в словаре Japanese-Colored: такие ролики не создаются,
// но диапазон сохраняется как есть.
var gradeRanges = map[models.SkillLevel]map[models.GradingSystem][]string{
	models.SkillBeginner: {
		models.GradingV:        {"V0", "V1", "V2", "V3"},
		models.GradingJapanese: {"Pink", "Red", "Yellow", "Green"},
	},
	models.SkillIntermediate: {
		models.GradingV:        {"V4", "V5", "V6", "V7"},
		models.GradingJapanese: {"Blue", "White", "Cyan", "Orange"},
	},
	models.SkillAdvanced: {
		models.GradingV:        {"V8", "V9", "V10"},
		models.GradingJapanese: {"Brown", "Light Green", "Black"},
	},
}

// Feed — результат разбиения. Имена полей JSON совпадают с ответом API.
type Feed struct {
	Preferred []models.VideoDetails `json:"preferredVideos"`
	Other     []models.VideoDetails `json:"otherVideos"`
}

// Criteria — предпочтения зрителя, по которым отбираются ролики.
type Criteria struct {
	grades map[models.GradingSystem]map[string]struct{}
	gyms   map[primitive.ObjectID]struct{}
}

// GradeRange возвращает диапазон уровня для системы оценки.
// Для пустого или неизвестного уровня диапазон пуст.
func GradeRange(skill models.SkillLevel, system models.GradingSystem) []string {
	r := gradeRanges[skill][system]
	if r == nil {
		return nil
	}

	out := make([]string, len(r))
	copy(out, r)

	return out
}

// CriteriaFor строит критерии по профилю.
func CriteriaFor(p models.Profile) Criteria {
	c := Criteria{
		grades: make(map[models.GradingSystem]map[string]struct{}, len(gradeRanges[p.SkillLevel])),
		gyms:   make(map[primitive.ObjectID]struct{}, len(p.Gyms)),
	}

	for system, levels := range gradeRanges[p.SkillLevel] {
		set := make(map[string]struct{}, len(levels))
		for _, l := range levels {
			set[l] = struct{}{}
		}
		c.grades[system] = set
	}

	for _, g := range p.Gyms {
		c.gyms[g] = struct{}{}
	}

	return c
}

// Matches — предикат «подходящего» ролика: сложность ИЛИ скалодром.
func (c Criteria) Matches(v models.Video) bool {
	if _, ok := c.grades[v.GradingSystem][v.DifficultyLevel]; ok {
		return true
	}

	_, ok := c.gyms[v.Gym]

	return ok
}

// Assemble разбивает каталог на две непересекающиеся части, объединение которых
// равно входу. Входной срез не изменяется.
func Assemble(catalog []models.VideoDetails, c Criteria) Feed {
	f := Feed{
		Preferred: make([]models.VideoDetails, 0),
		Other:     make([]models.VideoDetails, 0),
	}

	for _, v := range catalog {
		if c.Matches(v.Video) {
			f.Preferred = append(f.Preferred, v)
		} else {
			f.Other = append(f.Other, v)
		}
	}

	SortNewestFirst(f.Preferred)
	SortNewestFirst(f.Other)

	return f
}

// SortNewestFirst сортирует ролики по created_at DESC, _id DESC.
func SortNewestFirst(videos []models.VideoDetails) {
	sort.SliceStable(videos, func(i, j int) bool {
		a, b := videos[i], videos[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.ID.Hex() > b.ID.Hex()
	})
}
