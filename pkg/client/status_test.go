package client

import (
	"testing"

	"resto_dev_v1_202608/internal/model"
)

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"已是规范值", "not started", model.LineStatusNotStarted},
		{"大写", "DONE", model.LineStatusCompleted},
		{"越南文带声调", "chưa làm", model.LineStatusNotStarted},
		{"越南文带空白", "  Sẵn Sàng  ", model.LineStatusReady},
		{"越南文 đ", "đã hủy", model.LineStatusCancelled},
		{"越南文 hoàn thành", "Hoàn Thành", model.LineStatusCompleted},
		{"内部空白压缩", "not    started", model.LineStatusNotStarted},
		{"英文同义词", "pending", model.LineStatusNotStarted},
		{"英文做菜中", "preparing", model.LineStatusCooking},
		{"美式拼写", "canceled", model.LineStatusCancelled},
		{"英式拼写", "Cancelled", model.LineStatusCancelled},
		{"乱码回落", "gibberish", model.LineStatusNotStarted},
		{"空串回落", "", model.LineStatusNotStarted},
		{"纯空白回落", "   ", model.LineStatusNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalStatus(tt.raw)
			if got != tt.want {
				t.Fatalf("CanonicalStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			// 全域性：输出必须永远落在规范集合里
			if !model.IsCanonicalLineStatus(got) {
				t.Fatalf("输出 %q 不在规范集合里", got)
			}
		})
	}
}

func TestCanonicalStatus_Stable(t *testing.T) {
	// 规范值再过一遍不能变
	for _, s := range model.CanonicalLineStatuses {
		if got := CanonicalStatus(s); got != s {
			t.Fatalf("规范值 %q 过一遍成了 %q", s, got)
		}
	}
}
