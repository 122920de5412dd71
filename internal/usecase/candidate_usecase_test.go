package usecase_test

import (
	"context"
	"testing"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"
	"go-talentmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestSubmitCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a profile without a phone", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator())

		err := uc.SubmitCandidate(ctx, &domain.CandidateProfile{
			FullName: "Aigerim Bekova", City: "Almaty", Nationality: "Kazakh",
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should normalize the skills column through the set type", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.CandidateProfile)
			assert.Equal(t, "Chef, Barista", p.Skills)
			assert.False(t, p.CreatedAt.IsZero())
		})

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		err := uc.SubmitCandidate(ctx, &domain.CandidateProfile{
			FullName: "Aigerim Bekova", Phone: "+77010000000",
			City: "Almaty", Nationality: "Kazakh",
			Skills: " Chef ,Barista, chef",
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject emoji in the experience narrative", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator())

		err := uc.SubmitCandidate(ctx, &domain.CandidateProfile{
			FullName: "Aigerim Bekova", Phone: "+77010000000",
			City: "Almaty", Nationality: "Kazakh",
			Experience: "Five years as head chef \U0001F468‍\U0001F373",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "emoji")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an invalid availability payload at intake", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator())

		err := uc.SubmitCandidate(ctx, &domain.CandidateProfile{
			FullName: "Aigerim Bekova", Phone: "+77010000000",
			City: "Almaty", Nationality: "Kazakh",
			Availability: "{broken",
		})
		assert.Error(t, err)
	})
}

func TestAvailabilityReads(t *testing.T) {
	ctx := context.Background()

	t.Run("Corrupt stored availability degrades to empty on reads", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByID", ctx, int64(7)).Return(&domain.CandidateProfile{
			ID: 7, Availability: "{definitely-not-json",
		}, nil)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		av, err := uc.Availability(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, av.Empty())
	})

	t.Run("Missing candidate is a 404, not empty availability", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		_, err := uc.Availability(ctx, 99)
		assert.Error(t, err)
	})
}

func TestReplaceAvailabilityDay(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist the re-encoded availability", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		seed, _ := domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{"09:00"})
		repo.On("GetByID", ctx, int64(7)).Return(&domain.CandidateProfile{
			ID: 7, Availability: seed.Encode(),
		}, nil)
		repo.On("UpdateAvailability", ctx, int64(7), mock.AnythingOfType("string")).Return(nil)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		av, err := uc.ReplaceAvailabilityDay(ctx, 7, domain.Wednesday, []string{"14:00", "10:00"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"09:00"}, av.TimesFor(domain.Monday))
		assert.Equal(t, []string{"10:00", "14:00"}, av.TimesFor(domain.Wednesday))
		repo.AssertExpectations(t)
	})

	t.Run("Empty times removes the day and still persists", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		seed, _ := domain.WeeklyAvailability{}.ReplaceDay(domain.Monday, []string{"09:00"})
		repo.On("GetByID", ctx, int64(7)).Return(&domain.CandidateProfile{
			ID: 7, Availability: seed.Encode(),
		}, nil)
		repo.On("UpdateAvailability", ctx, int64(7), "").Return(nil)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		av, err := uc.ReplaceAvailabilityDay(ctx, 7, domain.Monday, nil)
		assert.NoError(t, err)
		assert.True(t, av.Empty())
	})

	t.Run("Invalid weekday is a validation error", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByID", ctx, int64(7)).Return(&domain.CandidateProfile{ID: 7}, nil)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		_, err := uc.ReplaceAvailabilityDay(ctx, 7, "Funday", []string{"09:00"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdateAvailability", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateFileReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass the references through with nil keeping the other", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		resume := "https://files.example/resume-7.pdf"
		repo.On("UpdateFileRefs", ctx, int64(7), &resume, (*string)(nil)).Return(nil)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		assert.NoError(t, uc.UpdateFileReferences(ctx, 7, &resume, nil))
		repo.AssertExpectations(t)
	})

	t.Run("Both nil is a bad request and never hits storage", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator())

		assert.Error(t, uc.UpdateFileReferences(ctx, 7, nil, nil))
		repo.AssertNotCalled(t, "UpdateFileRefs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing candidate surfaces as not found", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		photo := "https://files.example/photo-99.jpg"
		repo.On("UpdateFileRefs", ctx, int64(99), (*string)(nil), &photo).Return(domain.ErrNotFound)

		uc := usecase.NewCandidateUsecase(repo, newValidator())
		assert.Error(t, uc.UpdateFileReferences(ctx, 99, nil, &photo))
	})
}
