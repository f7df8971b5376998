package usecase

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/repository"
)

type AddSurveyUsecase struct {
	repo repository.AddSurveyRepository
}

func NewAddSurveyUsecase(repo repository.AddSurveyRepository) *AddSurveyUsecase {
	return &AddSurveyUsecase{repo: repo}
}

func (u *AddSurveyUsecase) Execute(ctx context.Context, params domain.AddSurveyParams) error {
	return u.repo.Add(ctx, params)
}

type LoadSurveysUsecase struct {
	repo repository.LoadSurveysRepository
}

func NewLoadSurveysUsecase(repo repository.LoadSurveysRepository) *LoadSurveysUsecase {
	return &LoadSurveysUsecase{repo: repo}
}

func (u *LoadSurveysUsecase) Execute(ctx context.Context) ([]*domain.Survey, error) {
	surveys, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []*domain.Survey{}
	}
	return surveys, nil
}
