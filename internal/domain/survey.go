package domain

import "time"

type Answer struct {
	Answer string  `json:"answer"`
	Image  *string `json:"image,omitempty"`
}

type Survey struct {
	ID       string
	Question string
	Answers  []Answer
	Date     time.Time
}

type AddSurveyParams struct {
	Question string
	Answers  []Answer
	Date     time.Time
}
