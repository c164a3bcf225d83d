package database

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"capacitajun_backend/internals/configs"
	"capacitajun_backend/internals/helpers/logger"
)

var DB *gorm.DB

func ConnectDB(cfg configs.DBConfig) *gorm.DB {
	logger.Log.Info("connecting to PostgreSQL (Supabase)...")

	// PgBouncer transaction pooling needs the simple protocol.
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(logger.Log.WithField("component", "gorm")),
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("database connection failed")
	}
	DB = db
	logger.Log.Info("database connected")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.WithError(err).Warn("pool tune failed")
		return
	}
	// Supabase pooler limits
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(db); err != nil {
			logger.Log.WithError(err).Warn("warm-up ping failed")
			return
		}
		var n int
		if err := db.Raw("SELECT 1").Scan(&n).Error; err != nil {
			logger.Log.WithError(err).Warn("warm-up query failed")
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// PoolStats exposes sql.DB statistics for the metrics collector.
func PoolStats(db *gorm.DB) (open, inUse, idle int, waitCount int64, waitDuration time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"error": err}).Debug("pool stats unavailable")
		return
	}
	s := sqlDB.Stats()
	return s.OpenConnections, s.InUse, s.Idle, s.WaitCount, s.WaitDuration
}
