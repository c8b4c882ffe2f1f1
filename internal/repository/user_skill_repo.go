package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/model"
)

// UserSkillRepository 用户-技能关联数据访问接口
type UserSkillRepository interface {
	Attach(ctx context.Context, us *model.UserSkill) error
	Detach(ctx context.Context, userID, skillID, skillType string) error
	ListByUser(ctx context.Context, userID string) ([]model.UserSkill, error)
	Exists(ctx context.Context, userID, skillID, skillType string) (bool, error)
}

type userSkillRepo struct {
	db *gorm.DB
}

// NewUserSkillRepo 创建 UserSkillRepository 实例
func NewUserSkillRepo(db *gorm.DB) UserSkillRepository {
	return &userSkillRepo{db: db}
}

func (r *userSkillRepo) Attach(ctx context.Context, us *model.UserSkill) error {
	return r.db.WithContext(ctx).Create(us).Error
}

func (r *userSkillRepo) Detach(ctx context.Context, userID, skillID, skillType string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND skill_type = ?", userID, skillID, skillType).
		Delete(&model.UserSkill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userSkillRepo) ListByUser(ctx context.Context, userID string) ([]model.UserSkill, error) {
	var items []model.UserSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *userSkillRepo) Exists(ctx context.Context, userID, skillID, skillType string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserSkill{}).
		Where("user_id = ? AND skill_id = ? AND skill_type = ?", userID, skillID, skillType).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
