package repository

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
)

type AddSurveyRepository interface {
	Add(ctx context.Context, params domain.AddSurveyParams) error
}

type LoadSurveysRepository interface {
	LoadAll(ctx context.Context) ([]*domain.Survey, error)
}
