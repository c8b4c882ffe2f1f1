package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/model"
)

// PlatformMessageRepository 平台公告数据访问接口
type PlatformMessageRepository interface {
	Create(ctx context.Context, msg *model.PlatformMessage) error
	ListActive(ctx context.Context) ([]model.PlatformMessage, error)
	List(ctx context.Context, offset, limit int) ([]model.PlatformMessage, int64, error)
	Deactivate(ctx context.Context, id string) error
}

type platformMessageRepo struct {
	db *gorm.DB
}

// NewPlatformMessageRepo 创建 PlatformMessageRepository 实例
func NewPlatformMessageRepo(db *gorm.DB) PlatformMessageRepository {
	return &platformMessageRepo{db: db}
}

func (r *platformMessageRepo) Create(ctx context.Context, msg *model.PlatformMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *platformMessageRepo) ListActive(ctx context.Context) ([]model.PlatformMessage, error) {
	var msgs []model.PlatformMessage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *platformMessageRepo) List(ctx context.Context, offset, limit int) ([]model.PlatformMessage, int64, error) {
	var msgs []model.PlatformMessage
	var total int64

	db := r.db.WithContext(ctx).Model(&model.PlatformMessage{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, 0, err
	}

	return msgs, total, nil
}

func (r *platformMessageRepo) Deactivate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&model.PlatformMessage{}).
		Where("message_id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
