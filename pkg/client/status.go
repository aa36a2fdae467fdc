package client

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 状态归一化 ====================

// 旧版接口的行状态是自由文本，越南文、英文、错拼都有，
// 这里统一折叠成 model 里的规范枚举。

// synonyms 折叠后的同义词表，键是去掉声调、压缩空白、小写后的形式
var synonyms = map[string]string{
	// 越南文
	"chua lam":   model.LineStatusNotStarted,
	"chua nau":   model.LineStatusNotStarted,
	"dang lam":   model.LineStatusCooking,
	"dang nau":   model.LineStatusCooking,
	"san sang":   model.LineStatusReady,
	"hoan thanh": model.LineStatusCompleted,
	"da xong":    model.LineStatusCompleted,
	"da huy":     model.LineStatusCancelled,
	"huy":        model.LineStatusCancelled,

	// 英文及常见错拼
	"pending":     model.LineStatusNotStarted,
	"notstarted":  model.LineStatusNotStarted,
	"new":         model.LineStatusNotStarted,
	"preparing":   model.LineStatusCooking,
	"in progress": model.LineStatusCooking,
	"done":        model.LineStatusCompleted,
	"complete":    model.LineStatusCompleted,
	"finished":    model.LineStatusCompleted,
	"canceled":    model.LineStatusCancelled,
	"cancel":      model.LineStatusCancelled,
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldStatus 去空白、去声调、小写
func foldStatus(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	// đ 不带组合声调，NFD 拆不掉，单独换
	s = strings.ReplaceAll(s, "đ", "d")
	return s
}

// CanonicalStatus 把任意行状态文本映射到规范枚举。
// 全域函数：无论输入什么都返回规范值，识别不了就告警并回落到 not started。
func CanonicalStatus(raw string) string {
	folded := foldStatus(raw)
	if model.IsCanonicalLineStatus(folded) {
		return folded
	}
	if canon, ok := synonyms[folded]; ok {
		return canon
	}
	if folded != "" {
		zap.L().Warn("未识别的行状态，回落到 not started", zap.String("raw", raw))
	}
	return model.LineStatusNotStarted
}
