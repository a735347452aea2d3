package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradingSystem_Allows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		system GradingSystem
		level  string
		want   bool
	}{
		{"v_grade_lower_bound", GradingV, "V0", true},
		{"v_grade_upper_bound", GradingV, "V10", true},
		{"v_grade_out_of_range", GradingV, "V11", false},
		{"v_grade_lowercase", GradingV, "v3", false},
		{"color_two_words", GradingJapanese, "Light Green", true},
		{"color_cyan", GradingJapanese, "Cyan", true},
		{"color_in_v_system", GradingV, "Blue", false},
		{"v_grade_in_color_system", GradingJapanese, "V3", false},
		{"brown_not_in_vocabulary", GradingJapanese, "Brown", false},
		{"unknown_system", GradingSystem("Font"), "6A", false},
		{"empty_level", GradingV, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.system.Allows(tt.level))
		})
	}
}

func TestGradingSystem_ValidAndLevels(t *testing.T) {
	t.Parallel()

	for _, g := range GradingSystems() {
		require.True(t, g.Valid())
		require.NotEmpty(t, g.Levels())
	}

	require.False(t, GradingSystem("YDS").Valid())
	require.Nil(t, GradingSystem("YDS").Levels())

	// Levels отдаёт копию: мутация не портит словарь.
	levels := GradingV.Levels()
	levels[0] = "X"
	require.True(t, GradingV.Allows("V0"))
	require.Len(t, GradingV.Levels(), 11)
	require.Len(t, GradingJapanese.Levels(), 10)
}

func TestSkillLevel_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []SkillLevel{SkillUnset, SkillBeginner, SkillIntermediate, SkillAdvanced} {
		require.True(t, s.Valid(), s)
	}
	require.False(t, SkillLevel("expert").Valid())
	require.False(t, SkillLevel("Beginner").Valid())
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, RoleClimber.Valid())
	require.True(t, RoleManager.Valid())
	require.False(t, Role("admin").Valid())
	require.False(t, Role("").Valid())
}

func TestUpdates_Empty(t *testing.T) {
	t.Parallel()

	require.True(t, ProfileUpdate{}.Empty())
	skill := SkillAdvanced
	require.False(t, ProfileUpdate{SkillLevel: &skill}.Empty())

	require.True(t, VideoUpdate{}.Empty())
	desc := "crux"
	require.False(t, VideoUpdate{Description: &desc}.Empty())
}
