// models содержит доменные сущности climbhub.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта;
// связи между документами — это ObjectID MongoDB.
package models

// GradingSystem — система оценки сложности трассы.
type GradingSystem string

const (
	GradingV        GradingSystem = "V-Grading"
	GradingJapanese GradingSystem = "Japanese-Colored"
)

// difficultyLevels — допустимые уровни сложности для каждой системы.
var difficultyLevels = map[GradingSystem][]string{
	GradingV: {"V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9", "V10"},
	GradingJapanese: {
		"White", "Yellow", "Orange", "Green", "Blue",
		"Red", "Black", "Pink", "Light Green", "Cyan",
	},
}

// GradingSystems возвращает все поддерживаемые системы оценки.
func GradingSystems() []GradingSystem {
	return []GradingSystem{GradingV, GradingJapanese}
}

// Valid сообщает, известна ли система оценки.
func (g GradingSystem) Valid() bool {
	_, ok := difficultyLevels[g]
	return ok
}

// Levels возвращает копию словаря уровней системы (nil для неизвестной).
func (g GradingSystem) Levels() []string {
	levels := difficultyLevels[g]
	if levels == nil {
		return nil
	}

	out := make([]string, len(levels))
	copy(out, levels)

	return out
}

// Allows проверяет, что уровень входит в словарь системы.
func (g GradingSystem) Allows(level string) bool {
	for _, l := range difficultyLevels[g] {
		if l == level {
			return true
		}
	}

	return false
}

// SkillLevel — самооценка уровня скалолаза в профиле.
type SkillLevel string

const (
	SkillUnset        SkillLevel = ""
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid допускает пустое значение: уровень в профиле необязателен.
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillUnset, SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}
