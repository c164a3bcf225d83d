package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/admin/backgrounds/model"
	"capacitajun_backend/internals/helpers/imagex"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/storage"
)

const Folder = "backgrounds"

var (
	ErrNotFound           = errors.New("background not found")
	ErrStorageUnavailable = errors.New("object storage is not configured")
)

type Service struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func New(db *gorm.DB, st storage.Storage) *Service {
	return &Service{DB: db, Storage: st}
}

// Upload converts the image to webp, stores it and inserts the row at the
// end of the ordering.
func (s *Service) Upload(ctx context.Context, r io.Reader, filename string) (*model.BackgroundImageModel, error) {
	if s.Storage == nil {
		return nil, ErrStorageUnavailable
	}
	data, err := imagex.ConvertToWebP(r, filename, imagex.BackgroundOptions)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	key := storage.BuildObjectKey(Folder, base+".webp")
	url, err := s.Storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "image/webp")
	if err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	var next int
	if err := s.DB.WithContext(ctx).Model(&model.BackgroundImageModel{}).
		Select("COALESCE(MAX(background_image_order), -1) + 1").Scan(&next).Error; err != nil {
		s.discard(ctx, key)
		return nil, err
	}

	m := model.BackgroundImageModel{
		BackgroundImageURL:         url,
		BackgroundImageStoragePath: key,
		BackgroundImageIsActive:    true,
		BackgroundImageOrder:       next,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		s.discard(ctx, key)
		return nil, err
	}
	return &m, nil
}

func (s *Service) discard(ctx context.Context, key string) {
	if err := s.Storage.Delete(ctx, key); err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("orphan background object")
	}
}

func (s *Service) List(ctx context.Context, onlyActive bool) ([]model.BackgroundImageModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.BackgroundImageModel{})
	if onlyActive {
		q = q.Where("background_image_is_active = ?", true)
	}
	var rows []model.BackgroundImageModel
	err := q.Order("background_image_order ASC, created_at ASC").Find(&rows).Error
	return rows, err
}

func (s *Service) Patch(ctx context.Context, id uuid.UUID, active *bool, order *int) (*model.BackgroundImageModel, error) {
	db := s.DB.WithContext(ctx)
	var m model.BackgroundImageModel
	if err := db.Where("background_image_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	updates := map[string]any{}
	if active != nil {
		updates["background_image_is_active"] = *active
		m.BackgroundImageIsActive = *active
	}
	if order != nil {
		updates["background_image_order"] = *order
		m.BackgroundImageOrder = *order
	}
	if len(updates) == 0 {
		return &m, nil
	}
	if err := db.Model(&model.BackgroundImageModel{}).
		Where("background_image_id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes the row first, then the stored object. A failed object
// delete is logged and left behind.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	db := s.DB.WithContext(ctx)
	var m model.BackgroundImageModel
	if err := db.Where("background_image_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := db.Delete(&model.BackgroundImageModel{}, "background_image_id = ?", id).Error; err != nil {
		return err
	}
	if s.Storage == nil {
		logger.Log.WithField("background_image_id", id).Warn("object storage not configured, object left behind")
		return nil
	}
	key := m.BackgroundImageStoragePath
	if key == "" {
		k, err := s.Storage.KeyFromPublicURL(m.BackgroundImageURL)
		if err != nil {
			logger.Log.WithError(err).Warn("background url outside bucket")
			return nil
		}
		key = k
	}
	s.discard(ctx, key)
	return nil
}
