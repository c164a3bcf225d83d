package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "capacitajun_backend/internals/features/users/auth/repository"
	"capacitajun_backend/internals/helpers/logger"
)

const cleanupTimeout = 30 * time.Second

// RegisterBlacklistCleanup schedules the token_blacklist purge on c.
func RegisterBlacklistCleanup(c *cron.Cron, db *gorm.DB, spec string, retentionDays int) (cron.EntryID, error) {
	if retentionDays < 0 {
		retentionDays = 0
	}
	retention := time.Duration(retentionDays) * 24 * time.Hour
	return c.AddFunc(spec, func() {
		RunBlacklistCleanup(db, retention)
	})
}

func RunBlacklistCleanup(db *gorm.DB, retention time.Duration) {
	log := logger.Log.WithField("job", "token_blacklist_cleanup")

	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	n, err := authRepo.CleanupExpiredBlacklist(ctx, db, retention)
	if err != nil {
		log.WithError(err).Error("cleanup failed")
		return
	}
	log.WithField("deleted", n).Info("cleanup finished")
}
