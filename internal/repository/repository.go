package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User            UserRepository
	Skill           SkillRepository
	UserSkill       UserSkillRepository
	Swap            SwapRepository
	Rating          RatingRepository
	PlatformMessage PlatformMessageRepository
	AdminLog        AdminLogRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:            NewUserRepo(db),
		Skill:           NewSkillRepo(db),
		UserSkill:       NewUserSkillRepo(db),
		Swap:            NewSwapRepo(db),
		Rating:          NewRatingRepo(db),
		PlatformMessage: NewPlatformMessageRepo(db),
		AdminLog:        NewAdminLogRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
