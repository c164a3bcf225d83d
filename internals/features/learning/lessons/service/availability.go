package service

import (
	"github.com/google/uuid"

	"capacitajun_backend/internals/constants"
)

// Statuses walks lessons in category order. A lesson is completed when passed,
// available when it is first or its predecessor is passed, locked otherwise.
func Statuses(ordered []uuid.UUID, passed map[uuid.UUID]bool) []string {
	out := make([]string, len(ordered))
	for i, id := range ordered {
		switch {
		case passed[id]:
			out[i] = constants.LessonStatusCompleted
		case i == 0 || passed[ordered[i-1]]:
			out[i] = constants.LessonStatusAvailable
		default:
			out[i] = constants.LessonStatusLocked
		}
	}
	return out
}

// StatusOf returns the status of one lesson within its ordered category.
// An id missing from ordered is locked.
func StatusOf(ordered []uuid.UUID, passed map[uuid.UUID]bool, id uuid.UUID) string {
	for i, s := range Statuses(ordered, passed) {
		if ordered[i] == id {
			return s
		}
	}
	return constants.LessonStatusLocked
}

// CanAttempt is true for available and completed lessons.
func CanAttempt(status string) bool {
	return status == constants.LessonStatusAvailable || status == constants.LessonStatusCompleted
}

// NextAfter returns the lesson following id in ordered, or nil at the end.
func NextAfter(ordered []uuid.UUID, id uuid.UUID) *uuid.UUID {
	for i := range ordered {
		if ordered[i] == id && i+1 < len(ordered) {
			next := ordered[i+1]
			return &next
		}
	}
	return nil
}
