package session

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"capacitajun_backend/internals/helpers/cache"
)

// AttemptTTL bounds how long an unfinished attempt is kept.
const AttemptTTL = 2 * time.Hour

// Store keeps one attempt per (user, lesson) in a cache.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(c cache.Cache) *Store {
	return &Store{cache: c, ttl: AttemptTTL}
}

func Key(userID, lessonID uuid.UUID) string {
	return fmt.Sprintf("attempt:%s:%s", userID, lessonID)
}

// Load returns the saved attempt, or a fresh content-phase state when there is none.
func (s *Store) Load(ctx context.Context, userID, lessonID uuid.UUID) (State, error) {
	raw, ok, err := s.cache.Get(ctx, Key(userID, lessonID))
	if err != nil {
		return State{}, err
	}
	if !ok {
		return New(lessonID), nil
	}
	var st State
	if err := sonic.Unmarshal(raw, &st); err != nil {
		// unreadable entry: start over
		return New(lessonID), nil
	}
	return st, nil
}

func (s *Store) Save(ctx context.Context, userID uuid.UUID, st State) error {
	raw, err := sonic.Marshal(st)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, Key(userID, st.LessonID), raw, s.ttl)
}

func (s *Store) Delete(ctx context.Context, userID, lessonID uuid.UUID) error {
	return s.cache.Delete(ctx, Key(userID, lessonID))
}

// Sweep drops expired attempts when the backing cache is in-process.
// Redis expires keys on its own, so this is a no-op there.
func (s *Store) Sweep() int {
	if m, ok := s.cache.(*cache.Memory); ok {
		return m.Sweep()
	}
	return 0
}
