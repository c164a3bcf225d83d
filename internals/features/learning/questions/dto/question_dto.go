package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"capacitajun_backend/internals/features/learning/questions/model"
)

type QuestionRequest struct {
	Text         string   `json:"text" validate:"required,min=3"`
	Options      []string `json:"options" validate:"len=4,dive,required"`
	CorrectIndex *int     `json:"correct_index" validate:"required,min=0,max=3"`
	Explanation  *string  `json:"explanation"`
	OrderIndex   int      `json:"order_index" validate:"min=0"`
}

// Normalize trims text and options so that blank-looking options fail validation.
func (r *QuestionRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	for i := range r.Options {
		r.Options[i] = strings.TrimSpace(r.Options[i])
	}
	if r.Explanation != nil {
		e := strings.TrimSpace(*r.Explanation)
		if e == "" {
			r.Explanation = nil
		} else {
			r.Explanation = &e
		}
	}
}

func (r QuestionRequest) Apply(m *model.QuestionModel) {
	m.QuestionText = r.Text
	m.QuestionOptions = pq.StringArray(r.Options)
	m.QuestionCorrectIndex = *r.CorrectIndex
	m.QuestionExplanation = r.Explanation
	m.QuestionOrderIndex = r.OrderIndex
}

// LearnerQuestion never carries the answer key.
type LearnerQuestion struct {
	ID         uuid.UUID `json:"id"`
	LessonID   uuid.UUID `json:"lesson_id"`
	Text       string    `json:"text"`
	Options    []string  `json:"options"`
	OrderIndex int       `json:"order_index"`
}

type AdminQuestion struct {
	LearnerQuestion
	CorrectIndex int     `json:"correct_index"`
	Explanation  *string `json:"explanation,omitempty"`
}

func ToLearnerQuestion(m model.QuestionModel) LearnerQuestion {
	opts := make([]string, len(m.QuestionOptions))
	copy(opts, m.QuestionOptions)
	return LearnerQuestion{
		ID:         m.QuestionID,
		LessonID:   m.QuestionLessonID,
		Text:       m.QuestionText,
		Options:    opts,
		OrderIndex: m.QuestionOrderIndex,
	}
}

func ToLearnerQuestions(ms []model.QuestionModel) []LearnerQuestion {
	out := make([]LearnerQuestion, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLearnerQuestion(m))
	}
	return out
}

func ToAdminQuestion(m model.QuestionModel) AdminQuestion {
	return AdminQuestion{
		LearnerQuestion: ToLearnerQuestion(m),
		CorrectIndex:    m.QuestionCorrectIndex,
		Explanation:     m.QuestionExplanation,
	}
}

func ToAdminQuestions(ms []model.QuestionModel) []AdminQuestion {
	out := make([]AdminQuestion, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAdminQuestion(m))
	}
	return out
}

// ImportRowError reports one rejected spreadsheet row (1-based, as shown in Excel).
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

