package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	notificationService "capacitajun_backend/internals/features/notifications/service"
	badgeService "capacitajun_backend/internals/features/progress/badges/service"
	dailyService "capacitajun_backend/internals/features/progress/daily_activities/service"
	"capacitajun_backend/internals/features/progress/progress/dto"
	"capacitajun_backend/internals/features/progress/progress/model"
	pointService "capacitajun_backend/internals/features/progress/points/service"
	"capacitajun_backend/internals/helpers/logger"
)

// LessonEvent is a passing completion of a lesson.
type LessonEvent struct {
	UserID      uuid.UUID
	LessonID    uuid.UUID
	LessonTitle string
	Score       float64
	// FirstPass is false when the user had already passed this lesson before.
	FirstPass bool
	Today     time.Time
}

// OnLessonCompleted runs the streak and XP hooks for one passing completion.
// tx must be the transaction that wrote the completion record.
func OnLessonCompleted(ctx context.Context, tx *gorm.DB, ev LessonEvent) (dto.GamificationDelta, error) {
	tx = tx.WithContext(ctx)
	if ev.Today.IsZero() {
		ev.Today = time.Now().UTC()
	}

	p, err := EnsureUserProgress(tx, ev.UserID)
	if err != nil {
		return dto.GamificationDelta{}, err
	}

	delta := dto.GamificationDelta{
		TotalXP:       p.UserProgressTotalXP,
		Level:         p.UserProgressLevel,
		CurrentStreak: p.UserProgressCurrentStreak,
		LongestStreak: p.UserProgressLongestStreak,
		NewBadges:     []dto.BadgeAward{},
	}

	// streak
	newDay := dailyService.IsNewDay(p.UserProgressLastActivityDate, ev.Today)
	streak := dailyService.NextStreak(p.UserProgressLastActivityDate, p.UserProgressCurrentStreak, ev.Today)
	longest := p.UserProgressLongestStreak
	if streak > longest {
		longest = streak
	}
	lessonsCompleted := p.UserProgressLessonsCompleted
	if ev.FirstPass {
		lessonsCompleted++
	}

	today := dailyService.Day(ev.Today)
	if err := tx.Model(&model.UserProgress{}).
		Where("user_progress_user_id = ?", ev.UserID).
		Updates(map[string]any{
			"user_progress_current_streak":     streak,
			"user_progress_longest_streak":     longest,
			"user_progress_lessons_completed":  lessonsCompleted,
			"user_progress_last_activity_date": today,
		}).Error; err != nil {
		return dto.GamificationDelta{}, err
	}
	if err := dailyService.UpsertDailyActivity(tx, ev.UserID, ev.Today, streak); err != nil {
		return dto.GamificationDelta{}, err
	}
	delta.CurrentStreak = streak
	delta.LongestStreak = longest

	// xp
	lessonID := ev.LessonID
	var awards []pointService.Award
	if ev.FirstPass {
		awards = append(awards, pointService.Award{
			Points: constants.LessonCompletionXP, Source: constants.PointSourceLessonCompletion, SourceID: &lessonID,
		})
		if ev.Score >= 100 {
			awards = append(awards, pointService.Award{
				Points: constants.PerfectScoreBonusXP, Source: constants.PointSourcePerfectScore, SourceID: &lessonID,
			})
		}
	}
	streakBonus := newDay && dailyService.EarnsStreakBonus(streak)
	if streakBonus {
		awards = append(awards, pointService.Award{Points: constants.StreakBonusXP, Source: constants.PointSourceStreakBonus})
	}

	for _, a := range awards {
		res, err := pointService.AwardXP(tx, ev.UserID, a)
		if err != nil {
			return dto.GamificationDelta{}, err
		}
		delta.XPAwarded += a.Points
		delta.TotalXP = res.TotalXP
		delta.Level = res.Level
	}

	// notifications
	if ev.FirstPass {
		if err := notificationService.Notify(tx, ev.UserID, constants.NotificationLessonCompleted,
			"Lição concluída",
			fmt.Sprintf("Você concluiu %q com %.0f%%.", ev.LessonTitle, ev.Score),
			map[string]any{"lesson_id": ev.LessonID, "score": ev.Score},
		); err != nil {
			return dto.GamificationDelta{}, err
		}
	}
	if streakBonus {
		if err := notificationService.Notify(tx, ev.UserID, constants.NotificationStreak,
			"Sequência em chamas!",
			fmt.Sprintf("%d dias seguidos estudando. +%d XP de bônus.", streak, constants.StreakBonusXP),
			map[string]any{"streak": streak},
		); err != nil {
			return dto.GamificationDelta{}, err
		}
	}

	// badges
	badges, err := badgeService.EvaluateBadges(tx, ev.UserID, badgeService.Snapshot{
		LessonsCompleted: lessonsCompleted,
		StreakDays:       streak,
		TotalXP:          delta.TotalXP,
	})
	if err != nil {
		return dto.GamificationDelta{}, err
	}
	badgeXP := 0
	for _, b := range badges {
		delta.NewBadges = append(delta.NewBadges, dto.BadgeAward{ID: b.BadgeID, Code: b.BadgeCode, Name: b.BadgeName, Icon: b.BadgeIcon})
		badgeXP += b.BadgeXPReward
	}
	if badgeXP > 0 {
		var after model.UserProgress
		if err := tx.Select("user_progress_total_xp", "user_progress_level").
			Where("user_progress_user_id = ?", ev.UserID).
			Take(&after).Error; err != nil {
			return dto.GamificationDelta{}, err
		}
		delta.XPAwarded += badgeXP
		delta.TotalXP = after.UserProgressTotalXP
		delta.Level = after.UserProgressLevel
	}
	delta.LeveledUp = delta.Level > p.UserProgressLevel

	logger.WithUserID(ev.UserID.String()).WithFields(logrus.Fields{
		"lesson_id":  ev.LessonID,
		"first_pass": ev.FirstPass,
		"xp":         delta.XPAwarded,
		"streak":     delta.CurrentStreak,
		"badges":     len(delta.NewBadges),
	}).Info("gamification applied")

	return delta, nil
}
