package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/validation"
)

type surveyAdder interface {
	Execute(ctx context.Context, params domain.AddSurveyParams) error
}

type surveysLoader interface {
	Execute(ctx context.Context) ([]*domain.Survey, error)
}

// AddSurveyHandler handles POST /api/add-survey. The survey date is the
// time the request was handled.
type AddSurveyHandler struct {
	validation validation.Validation
	addSurvey  surveyAdder
	now        func() time.Time
	logger     *slog.Logger
}

func NewAddSurveyHandler(v validation.Validation, addSurvey surveyAdder, now func() time.Time, logger *slog.Logger) *AddSurveyHandler {
	if now == nil {
		now = time.Now
	}
	return &AddSurveyHandler{
		validation: v,
		addSurvey:  addSurvey,
		now:        now,
		logger:     logger.With("component", "add_survey_handler"),
	}
}

func (h *AddSurveyHandler) Handle(ctx context.Context, req Request) Response {
	if err := h.validation.Validate(req.Body); err != nil {
		return validationFailure(err)
	}

	fields, err := textFields(req.Body, "question")
	if err != nil {
		return BadRequest(err)
	}

	answers, ok := decodeAnswers(req.Body["answers"])
	if !ok {
		return BadRequest(&validation.InvalidFieldError{Field: "answers"})
	}

	err = h.addSurvey.Execute(ctx, domain.AddSurveyParams{
		Question: fields[0],
		Answers:  answers,
		Date:     h.now().UTC(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "add survey", "error", err)
		return ServerError(err)
	}

	return NoContent()
}

// decodeAnswers accepts only a list of objects that each carry a non-empty answer.
func decodeAnswers(raw any) ([]domain.Answer, bool) {
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return nil, false
	}
	var answers []domain.Answer
	if err := json.Unmarshal(encoded, &answers); err != nil {
		return nil, false
	}
	for _, a := range answers {
		if a.Answer == "" {
			return nil, false
		}
	}
	return answers, true
}

type surveyResponse struct {
	ID       string          `json:"id"`
	Question string          `json:"question"`
	Answers  []domain.Answer `json:"answers"`
	Date     time.Time       `json:"date"`
}

type surveysResponse struct {
	Surveys []surveyResponse `json:"surveys"`
}

// LoadSurveysHandler handles GET /api/surveys.
type LoadSurveysHandler struct {
	loadSurveys surveysLoader
	logger      *slog.Logger
}

func NewLoadSurveysHandler(loadSurveys surveysLoader, logger *slog.Logger) *LoadSurveysHandler {
	return &LoadSurveysHandler{
		loadSurveys: loadSurveys,
		logger:      logger.With("component", "load_surveys_handler"),
	}
}

func (h *LoadSurveysHandler) Handle(ctx context.Context, _ Request) Response {
	surveys, err := h.loadSurveys.Execute(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load surveys", "error", err)
		return ServerError(err)
	}

	resp := surveysResponse{Surveys: make([]surveyResponse, 0, len(surveys))}
	for _, s := range surveys {
		resp.Surveys = append(resp.Surveys, surveyResponse{
			ID:       s.ID,
			Question: s.Question,
			Answers:  s.Answers,
			Date:     s.Date,
		})
	}
	return OK(resp)
}
