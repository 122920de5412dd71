package domain_test

import (
	"testing"

	"go-talentmatch-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestReplaceDay(t *testing.T) {
	t.Run("Should sort and deduplicate times", func(t *testing.T) {
		av, err := domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{"10:00", "09:00", "10:00", "14:30"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "14:30"}, av.TimesFor(domain.Monday))
	})

	t.Run("Should remove weekday entirely when times is empty", func(t *testing.T) {
		av, err := domain.WeeklyAvailability{}.ReplaceDay(domain.Friday, []string{"09:00"})
		assert.NoError(t, err)

		av, err = av.ReplaceDay(domain.Friday, nil)
		assert.NoError(t, err)
		assert.True(t, av.Empty())
		assert.Nil(t, av.TimesFor(domain.Friday))
	})

	t.Run("Should reject an invalid weekday", func(t *testing.T) {
		_, err := domain.WeeklyAvailability{}.ReplaceDay("Funday", []string{"09:00"})
		assert.Error(t, err)
	})

	t.Run("Should reject times outside the daily window", func(t *testing.T) {
		_, err := domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{"06:30"})
		assert.Error(t, err)

		_, err = domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{"22:15"})
		assert.Error(t, err)
	})

	t.Run("Should reject malformed clock values", func(t *testing.T) {
		for _, bad := range []string{"9:00", "09-00", "09:60", "25:00", "noon"} {
			_, err := domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{bad})
			assert.Error(t, err, bad)
		}
	})

	t.Run("Should not mutate the receiver", func(t *testing.T) {
		base, _ := domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{"09:00"})
		_, _ = base.ReplaceDay(domain.Monday, []string{"18:00"})
		assert.Equal(t, []string{"09:00"}, base.TimesFor(domain.Monday))
	})

	t.Run("Should keep groups in Monday to Sunday order", func(t *testing.T) {
		av := domain.WeeklyAvailability{}
		for _, day := range []domain.Weekday{domain.Sunday, domain.Wednesday, domain.Monday} {
			var err error
			av, err = av.ReplaceDay(day, []string{"10:00"})
			assert.NoError(t, err)
		}
		assert.Equal(t, domain.Monday, av.Groups[0].Day)
		assert.Equal(t, domain.Wednesday, av.Groups[1].Day)
		assert.Equal(t, domain.Sunday, av.Groups[2].Day)
	})
}

func TestAvailabilityCodec(t *testing.T) {
	t.Run("Should round-trip through the stored form", func(t *testing.T) {
		av, _ := domain.WeeklyAvailability{}.ReplaceDay(domain.Tuesday, []string{"11:00", "09:30"})
		av, _ = av.ReplaceDay(domain.Saturday, []string{"15:00"})

		decoded, err := domain.DecodeAvailability(av.Encode())
		assert.NoError(t, err)
		assert.Equal(t, av, decoded)
	})

	t.Run("Should decode the empty string to empty availability", func(t *testing.T) {
		av, err := domain.DecodeAvailability("")
		assert.NoError(t, err)
		assert.True(t, av.Empty())
	})

	t.Run("Should flag malformed payloads as corruption", func(t *testing.T) {
		_, err := domain.DecodeAvailability("{not json")
		assert.ErrorIs(t, err, domain.ErrCorruptAvailability)
	})

	t.Run("Should flag unknown weekdays as corruption", func(t *testing.T) {
		_, err := domain.DecodeAvailability(`{"Caturday":["09:00"]}`)
		assert.ErrorIs(t, err, domain.ErrCorruptAvailability)
	})

	t.Run("Should flag a weekday with zero times as corruption", func(t *testing.T) {
		_, err := domain.DecodeAvailability(`{"Monday":[]}`)
		assert.ErrorIs(t, err, domain.ErrCorruptAvailability)
	})

	t.Run("Empty availability encodes to the empty string", func(t *testing.T) {
		assert.Equal(t, "", domain.WeeklyAvailability{}.Encode())
	})
}
