package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/model"
	"github.com/dhairyasoni5/skillswapproject/internal/repository"
	pkgerrors "github.com/dhairyasoni5/skillswapproject/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	// 支撑 List 的 SkillID 过滤
	userSkills *mockUserSkillRepo
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// 模拟 Preload("Skills.Skill")
	result := *u
	if m.userSkills != nil {
		skills, _ := m.userSkills.ListByUser(context.Background(), id)
		result.Skills = skills
	}
	return &result, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "location":
			u.Location = v.(string)
		case "availability":
			u.Availability = v.(pq.StringArray)
		case "privacy_setting":
			u.PrivacySetting = v.(string)
		case "photo_url":
			u.PhotoURL = v.(string)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "is_admin":
			u.IsAdmin = v.(bool)
		case "is_banned":
			u.IsBanned = v.(bool)
		case "ban_reason":
			if v == nil {
				u.BanReason = nil
			} else if p, ok := v.(*string); ok {
				u.BanReason = p
			} else {
				s := v.(string)
				u.BanReason = &s
			}
		}
	}
	return nil
}

func (m *mockUserRepo) List(_ context.Context, filter *repository.UserFilter) ([]model.User, int64, error) {
	var matched []model.User
	for _, u := range m.users {
		if filter.PublicOnly && (u.PrivacySetting != model.PrivacyPublic || u.IsBanned) {
			continue
		}
		if filter.Exclude != "" && u.UserID == filter.Exclude {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Location != "" && u.Location != filter.Location {
			continue
		}
		if filter.Banned != nil && u.IsBanned != *filter.Banned {
			continue
		}
		if filter.SkillID != "" {
			if m.userSkills == nil || !m.userSkills.has(u.UserID, filter.SkillID, model.SkillTypeOffered) {
				continue
			}
		}
		item := *u
		// 模拟 Preload("Skills.Skill")
		if m.userSkills != nil {
			skills, _ := m.userSkills.ListByUser(context.Background(), u.UserID)
			item.Skills = skills
		}
		matched = append(matched, item)
	}
	// map 迭代无序，按 ID 排序保证可断言
	sort.Slice(matched, func(i, j int) bool { return matched[i].UserID < matched[j].UserID })

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

// ── Mock SkillRepository ──

type mockSkillRepo struct {
	skills map[string]*model.Skill
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{skills: make(map[string]*model.Skill)}
}

func (m *mockSkillRepo) Create(_ context.Context, skill *model.Skill) error {
	if skill.SkillID == "" {
		skill.SkillID = "skill-" + skill.Name
	}
	m.skills[skill.SkillID] = skill
	return nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id string) (*model.Skill, error) {
	if s, ok := m.skills[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSkillRepo) GetByName(_ context.Context, name string) (*model.Skill, error) {
	for _, s := range m.skills {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSkillRepo) List(_ context.Context, filter *repository.SkillFilter) ([]model.Skill, int64, error) {
	var matched []model.Skill
	for _, s := range m.skills {
		if filter.ApprovedOnly && !s.IsApproved {
			continue
		}
		if filter.PendingOnly && (s.IsApproved || s.RejectionReason != nil) {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *s)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (m *mockSkillRepo) SetModeration(_ context.Context, id string, approved bool, reason *string) error {
	s, ok := m.skills[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.IsApproved = approved
	s.RejectionReason = reason
	return nil
}

// ── Mock UserSkillRepository ──

type mockUserSkillRepo struct {
	items  []*model.UserSkill
	skills *mockSkillRepo // ListByUser 需要带出 Skill 关联
}

func newMockUserSkillRepo() *mockUserSkillRepo {
	return &mockUserSkillRepo{}
}

func (m *mockUserSkillRepo) has(userID, skillID, skillType string) bool {
	for _, us := range m.items {
		if us.UserID == userID && us.SkillID == skillID && us.SkillType == skillType {
			return true
		}
	}
	return false
}

func (m *mockUserSkillRepo) Attach(_ context.Context, us *model.UserSkill) error {
	if m.has(us.UserID, us.SkillID, us.SkillType) {
		return gorm.ErrDuplicatedKey
	}
	if us.UserSkillID == "" {
		us.UserSkillID = fmt.Sprintf("us-%d", len(m.items)+1)
	}
	m.items = append(m.items, us)
	return nil
}

func (m *mockUserSkillRepo) Detach(_ context.Context, userID, skillID, skillType string) error {
	for i, us := range m.items {
		if us.UserID == userID && us.SkillID == skillID && us.SkillType == skillType {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserSkillRepo) ListByUser(_ context.Context, userID string) ([]model.UserSkill, error) {
	var result []model.UserSkill
	for _, us := range m.items {
		if us.UserID != userID {
			continue
		}
		item := *us
		if item.Skill == nil && m.skills != nil {
			if s, ok := m.skills.skills[us.SkillID]; ok {
				item.Skill = s
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func (m *mockUserSkillRepo) Exists(_ context.Context, userID, skillID, skillType string) (bool, error) {
	return m.has(userID, skillID, skillType), nil
}

// ── Mock SwapRepository ──

type mockSwapRepo struct {
	swaps map[string]*model.SwapRequest
	users *mockUserRepo  // GetByID 需要带出参与者关联
	skls  *mockSkillRepo // GetByID 需要带出技能关联
}

func newMockSwapRepo() *mockSwapRepo {
	return &mockSwapRepo{swaps: make(map[string]*model.SwapRequest)}
}

func (m *mockSwapRepo) Create(_ context.Context, req *model.SwapRequest) error {
	if req.SwapRequestID == "" {
		req.SwapRequestID = fmt.Sprintf("swap-%d", len(m.swaps)+1)
	}
	if req.Status == "" {
		req.Status = model.SwapStatusPending
	}
	m.swaps[req.SwapRequestID] = req
	return nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, id string) (*model.SwapRequest, error) {
	req, ok := m.swaps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// 模拟 Preload 行为
	result := *req
	if m.users != nil {
		if u, ok := m.users.users[req.RequesterID]; ok {
			result.Requester = u
		}
		if u, ok := m.users.users[req.RecipientID]; ok {
			result.Recipient = u
		}
	}
	if m.skls != nil {
		if s, ok := m.skls.skills[req.OfferedSkillID]; ok {
			result.OfferedSkill = s
		}
		if s, ok := m.skls.skills[req.WantedSkillID]; ok {
			result.WantedSkill = s
		}
	}
	return &result, nil
}

func (m *mockSwapRepo) List(_ context.Context, filter *repository.SwapFilter) ([]model.SwapRequest, int64, error) {
	var matched []model.SwapRequest
	for _, r := range m.swaps {
		if filter.ParticipantID != "" {
			switch filter.Direction {
			case "incoming":
				if r.RecipientID != filter.ParticipantID {
					continue
				}
			case "outgoing":
				if r.RequesterID != filter.ParticipantID {
					continue
				}
			default:
				if !r.IsParticipant(filter.ParticipantID) {
					continue
				}
			}
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		matched = append(matched, *r)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SwapRequestID < matched[j].SwapRequestID })

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (m *mockSwapRepo) ExistsPending(_ context.Context, requesterID, recipientID, offeredSkillID, wantedSkillID string) (bool, error) {
	for _, r := range m.swaps {
		if r.Status == model.SwapStatusPending &&
			r.RequesterID == requesterID && r.RecipientID == recipientID &&
			r.OfferedSkillID == offeredSkillID && r.WantedSkillID == wantedSkillID {
			return true, nil
		}
	}
	return false, nil
}

// UpdateStatus 与真实实现语义一致：前置状态不匹配时返回 ErrStateConflict
func (m *mockSwapRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string) error {
	r, ok := m.swaps[id]
	if !ok || r.Status != fromStatus {
		return pkgerrors.ErrStateConflict
	}
	r.Status = toStatus
	return nil
}

func (m *mockSwapRepo) DeletePending(_ context.Context, id, requesterID string) error {
	r, ok := m.swaps[id]
	if !ok || r.RequesterID != requesterID || r.Status != model.SwapStatusPending {
		return pkgerrors.ErrStateConflict
	}
	delete(m.swaps, id)
	return nil
}

// ── Mock RatingRepository ──

type mockRatingRepo struct {
	ratings []*model.Rating
}

func newMockRatingRepo() *mockRatingRepo {
	return &mockRatingRepo{}
}

func (m *mockRatingRepo) Create(_ context.Context, rating *model.Rating) error {
	for _, r := range m.ratings {
		if r.SwapRequestID == rating.SwapRequestID && r.RaterID == rating.RaterID {
			return gorm.ErrDuplicatedKey
		}
	}
	if rating.RatingID == "" {
		rating.RatingID = fmt.Sprintf("rating-%d", len(m.ratings)+1)
	}
	m.ratings = append(m.ratings, rating)
	return nil
}

func (m *mockRatingRepo) ExistsForRater(_ context.Context, swapRequestID, raterID string) (bool, error) {
	for _, r := range m.ratings {
		if r.SwapRequestID == swapRequestID && r.RaterID == raterID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRatingRepo) ListForRated(_ context.Context, ratedID string, offset, limit int) ([]model.Rating, int64, error) {
	var matched []model.Rating
	for _, r := range m.ratings {
		if r.RatedID == ratedID {
			matched = append(matched, *r)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockRatingRepo) AverageForRated(_ context.Context, ratedID string) (*float64, int64, error) {
	var sum, count int64
	for _, r := range m.ratings {
		if r.RatedID == ratedID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return nil, 0, nil
	}
	avg := float64(sum) / float64(count)
	return &avg, count, nil
}

// ── Mock PlatformMessageRepository ──

type mockPlatformMessageRepo struct {
	messages map[string]*model.PlatformMessage
}

func newMockPlatformMessageRepo() *mockPlatformMessageRepo {
	return &mockPlatformMessageRepo{messages: make(map[string]*model.PlatformMessage)}
}

func (m *mockPlatformMessageRepo) Create(_ context.Context, msg *model.PlatformMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = fmt.Sprintf("msg-%d", len(m.messages)+1)
	}
	m.messages[msg.MessageID] = msg
	return nil
}

func (m *mockPlatformMessageRepo) ListActive(_ context.Context) ([]model.PlatformMessage, error) {
	var result []model.PlatformMessage
	for _, msg := range m.messages {
		if msg.IsActive {
			result = append(result, *msg)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MessageID < result[j].MessageID })
	return result, nil
}

func (m *mockPlatformMessageRepo) List(_ context.Context, offset, limit int) ([]model.PlatformMessage, int64, error) {
	var result []model.PlatformMessage
	for _, msg := range m.messages {
		result = append(result, *msg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MessageID < result[j].MessageID })

	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockPlatformMessageRepo) Deactivate(_ context.Context, id string) error {
	msg, ok := m.messages[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	msg.IsActive = false
	return nil
}

// ── Mock AdminLogRepository ──

type mockAdminLogRepo struct {
	logs []*model.AdminLog
}

func newMockAdminLogRepo() *mockAdminLogRepo {
	return &mockAdminLogRepo{}
}

func (m *mockAdminLogRepo) Create(_ context.Context, log *model.AdminLog) error {
	if log.LogID == "" {
		log.LogID = fmt.Sprintf("log-%d", len(m.logs)+1)
	}
	m.logs = append(m.logs, log)
	return nil
}

func (m *mockAdminLogRepo) List(_ context.Context, offset, limit int) ([]model.AdminLog, int64, error) {
	var result []model.AdminLog
	for _, l := range m.logs {
		result = append(result, *l)
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

// ── 测试聚合 ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	user            *mockUserRepo
	skill           *mockSkillRepo
	userSkill       *mockUserSkillRepo
	swap            *mockSwapRepo
	rating          *mockRatingRepo
	platformMessage *mockPlatformMessageRepo
	adminLog        *mockAdminLogRepo
}

func newTestRepos() *testRepos {
	r := &testRepos{
		user:            newMockUserRepo(),
		skill:           newMockSkillRepo(),
		userSkill:       newMockUserSkillRepo(),
		swap:            newMockSwapRepo(),
		rating:          newMockRatingRepo(),
		platformMessage: newMockPlatformMessageRepo(),
		adminLog:        newMockAdminLogRepo(),
	}
	// mock 间的关联解析
	r.user.userSkills = r.userSkill
	r.userSkill.skills = r.skill
	r.swap.users = r.user
	r.swap.skls = r.skill
	return r
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		User:            r.user,
		Skill:           r.skill,
		UserSkill:       r.userSkill,
		Swap:            r.swap,
		Rating:          r.rating,
		PlatformMessage: r.platformMessage,
		AdminLog:        r.adminLog,
	}
}

// [自证通过] internal/service/mock_repos_test.go
