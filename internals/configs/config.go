package configs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// AppConfig holds every setting read from the environment.
type AppConfig struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	Port     string `env:"PORT" env-default:"3000"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	DB      DBConfig
	JWT     JWTConfig
	Storage StorageConfig
	Search  SearchConfig
	AI      AIConfig

	CorsAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:8080"`
	RedisURL         string   `env:"REDIS_URL"`

	TokenBlacklistTTLDays int    `env:"TOKEN_BLACKLIST_TTL_DAYS" env-default:"7"`
	CleanupCron           string `env:"CLEANUP_CRON" env-default:"15 2 * * *"`
	SeedOnStart           bool   `env:"SEED_ON_START"`
}

type DBConfig struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"postgres"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"require"`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	AccessTTL time.Duration `env:"JWT_ACCESS_TTL" env-default:"24h"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"supabase"`
	Bucket string `env:"STORAGE_BUCKET" env-default:"auth-backgrounds"`

	SupabaseURL string `env:"SUPABASE_PROJECT_URL"`
	SupabaseKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`

	OSSEndpoint  string `env:"ALI_OSS_ENDPOINT"`
	OSSAccessKey string `env:"ALI_OSS_ACCESS_KEY"`
	OSSSecretKey string `env:"ALI_OSS_SECRET_KEY"`
	OSSPublicURL string `env:"ALI_OSS_PUBLIC_URL"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT" env-default:"minio:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL"`
	MinioPublicURL string `env:"MINIO_PUBLIC_URL"`
}

type SearchConfig struct {
	URLs     []string `env:"ELASTICSEARCH_URLS" env-separator:","`
	Index    string   `env:"ELASTICSEARCH_INDEX" env-default:"lessons"`
	Username string   `env:"ELASTICSEARCH_USERNAME"`
	Password string   `env:"ELASTICSEARCH_PASSWORD"`
}

type AIConfig struct {
	GatewayURL string        `env:"AI_GATEWAY_URL" env-default:"https://api.openai.com/v1/chat/completions"`
	APIKey     string        `env:"AI_GATEWAY_KEY"`
	Model      string        `env:"AI_MODEL" env-default:"gpt-4o-mini"`
	Timeout    time.Duration `env:"AI_TIMEOUT" env-default:"60s"`
}

// DSN builds the Supabase Postgres connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=capacitajun&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

var (
	JWTSecret string
	Config    *AppConfig
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() *AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.Warn("no .env file found, using system environment")
		} else {
			logrus.Info(".env file loaded")
		}
	}

	cfg, err := ReadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("cannot parse environment")
	}

	if cfg.JWT.Secret == "" {
		logrus.Error("JWT_SECRET is not set")
	}
	if cfg.DB.User == "" || cfg.DB.Password == "" {
		logrus.Error("DB_USER / DB_PASSWORD are not set")
	}
	if cfg.AI.APIKey == "" {
		logrus.Warn("AI_GATEWAY_KEY is not set, content generators will answer 503")
	}

	JWTSecret = cfg.JWT.Secret
	Config = cfg
	return cfg
}

// ReadConfig parses the process environment into an AppConfig.
func ReadConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	log           logrus.FieldLogger
}

func NewGormLogger(log logrus.FieldLogger) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
		log:           log,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	n := *l
	n.LogLevel = level
	return &n
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.log.Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.log.Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.log.Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := logrus.Fields{
		"file":    utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
	}

	switch {
	case err != nil && !isRecordNotFound(err) && l.LogLevel >= gormLogger.Error:
		l.log.WithFields(fields).WithError(err).Error(sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.log.WithFields(fields).Warn("slow sql: " + sql)
	case l.LogLevel >= gormLogger.Info:
		l.log.WithFields(fields).Debug(sql)
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
