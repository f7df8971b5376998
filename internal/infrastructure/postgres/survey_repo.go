package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
)

type SurveyRepository struct {
	db DB
}

func NewSurveyRepository(db DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) Add(ctx context.Context, params domain.AddSurveyParams) error {
	answers, err := json.Marshal(params.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO surveys (question, answers, date) VALUES ($1, $2, $3)`,
		params.Question, answers, params.Date,
	)
	if err != nil {
		return fmt.Errorf("add survey: %w", err)
	}
	return nil
}

// LoadAll returns every survey, newest first.
func (r *SurveyRepository) LoadAll(ctx context.Context) ([]*domain.Survey, error) {
	rows, err := r.db.Query(ctx, `SELECT id, question, answers, date FROM surveys ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("load surveys: %w", err)
	}
	defer rows.Close()

	surveys := []*domain.Survey{}
	for rows.Next() {
		s, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate surveys: %w", err)
	}
	return surveys, nil
}

func scanSurvey(row rowScanner) (*domain.Survey, error) {
	var (
		s       domain.Survey
		answers []byte
	)
	if err := row.Scan(&s.ID, &s.Question, &answers, &s.Date); err != nil {
		return nil, fmt.Errorf("scan survey: %w", err)
	}
	if err := json.Unmarshal(answers, &s.Answers); err != nil {
		return nil, fmt.Errorf("decode answers for survey %s: %w", s.ID, err)
	}
	return &s, nil
}
