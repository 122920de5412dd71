package domain_test

import (
	"testing"

	"go-talentmatch-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillSet(t *testing.T) {
	t.Run("Should trim and deduplicate case-insensitively", func(t *testing.T) {
		s := domain.ParseSkillSet(" Chef, Barista ,chef,, BARISTA ")
		assert.Equal(t, []string{"Chef", "Barista"}, s.List())
		assert.True(t, s.Has("chef"))
		assert.True(t, s.Has(" BARISTA "))
		assert.False(t, s.Has("Waiter"))
	})

	t.Run("Should treat an empty column as an empty set", func(t *testing.T) {
		assert.True(t, domain.ParseSkillSet("").Empty())
		assert.True(t, domain.ParseSkillSet(" , ,").Empty())
	})

	t.Run("Encode keeps first-seen order", func(t *testing.T) {
		s := domain.ParseSkillSet("Chef,Barista,Waiter")
		assert.Equal(t, "Chef, Barista, Waiter", s.Encode())
	})
}

func TestSkillMatching(t *testing.T) {
	// Scenario from the matching views: candidate with {Chef, Barista}.
	s := domain.ParseSkillSet("Chef,Barista")

	t.Run("Any mode includes a partial overlap", func(t *testing.T) {
		assert.True(t, s.HasAny([]string{"Chef", "Waiter"}))
	})

	t.Run("All mode excludes a partial overlap", func(t *testing.T) {
		assert.False(t, s.HasAll([]string{"Chef", "Waiter"}))
		assert.True(t, s.HasAll([]string{"chef", "barista"}))
	})

	t.Run("Empty tag lists never exclude", func(t *testing.T) {
		assert.True(t, s.HasAny(nil))
		assert.True(t, s.HasAll(nil))
	})
}
