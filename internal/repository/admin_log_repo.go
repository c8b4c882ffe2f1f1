package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/model"
)

// AdminLogRepository 管理操作日志数据访问接口
type AdminLogRepository interface {
	Create(ctx context.Context, log *model.AdminLog) error
	List(ctx context.Context, offset, limit int) ([]model.AdminLog, int64, error)
}

type adminLogRepo struct {
	db *gorm.DB
}

// NewAdminLogRepo 创建 AdminLogRepository 实例
func NewAdminLogRepo(db *gorm.DB) AdminLogRepository {
	return &adminLogRepo{db: db}
}

func (r *adminLogRepo) Create(ctx context.Context, log *model.AdminLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *adminLogRepo) List(ctx context.Context, offset, limit int) ([]model.AdminLog, int64, error) {
	var logs []model.AdminLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AdminLog{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
