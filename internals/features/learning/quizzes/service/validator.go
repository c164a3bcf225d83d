package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/quizzes/dto"
	"capacitajun_backend/internals/helpers/metrics"
)

// maxLookups caps the concurrent answer key reads of one request.
const maxLookups = 8

// Validate grades answers for lessonID. Every answer key is fetched
// concurrently; the first lookup error cancels the rest and nothing is graded.
func Validate(ctx context.Context, keys AnswerKeyLookup, lessonID uuid.UUID, answers []dto.Answer) (dto.ValidationResult, error) {
	fetched := make([]AnswerKey, len(answers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)
	for i, a := range answers {
		i, a := i, a
		g.Go(func() error {
			k, err := keys.AnswerKey(gctx, a.QuestionID)
			if err != nil {
				return err
			}
			fetched[i] = k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.ObserveQuiz("error")
		return dto.ValidationResult{}, err
	}

	res := Grade(lessonID, answers, fetched)
	if res.Passed {
		metrics.ObserveQuiz("passed")
	} else {
		metrics.ObserveQuiz("failed")
	}
	return res, nil
}

// Grade is the pure half of Validate. keys[i] belongs to answers[i].
func Grade(lessonID uuid.UUID, answers []dto.Answer, keys []AnswerKey) dto.ValidationResult {
	res := dto.ValidationResult{
		TotalQuestions: len(answers),
		Results:        make([]dto.QuestionResult, 0, len(answers)),
	}
	for i, a := range answers {
		k := keys[i]
		own := k.LessonID == lessonID
		ok := own &&
			a.UserAnswer != nil &&
			*a.UserAnswer >= 0 && *a.UserAnswer < constants.AnswerOptions &&
			*a.UserAnswer == k.CorrectIndex
		if ok {
			res.CorrectCount++
		}
		r := dto.QuestionResult{QuestionID: a.QuestionID, Correct: ok}
		if own {
			idx := k.CorrectIndex
			r.CorrectAnswer = &idx
		}
		res.Results = append(res.Results, r)
	}
	res.Score = Score(res.CorrectCount, res.TotalQuestions)
	res.Passed = Passed(res.Score)
	return res
}

// Score is the percentage of correct answers; 0 when there are no questions.
func Score(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func Passed(score float64) bool {
	return score >= constants.PassingScore
}
