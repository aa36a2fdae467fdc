package client

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ==================== 响应归一化 ====================

// 旧版服务端的 JSON 形状漂移过好几版：带 {"$id","$values"} 信封的集合、
// 大小写不统一的键、数字和字符串互串的字段。与其改每个调用点，
// 不如在 HTTP 边界统一整形，所有界面只看一种规范形状。

// intKeys 规范键名 → 整数
var intKeys = map[string]bool{
	"quantity":  true,
	"stock":     true,
	"seatCount": true,
}

// floatKeys 规范键名 → 浮点
var floatKeys = map[string]bool{
	"unitPrice":  true,
	"total":      true,
	"totalFinal": true,
	"discount":   true,
	"payment":    true,
}

var bracketFragment = regexp.MustCompile(`\[[^\]]*\]`)

// Normalize 递归整形一段已解码的 JSON 值。
// 幂等：Normalize(Normalize(v)) == Normalize(v)。
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		// 旧版集合信封 {"$id": "1", "$values": [...]}，拆开取内层
		if inner, ok := val["$values"]; ok {
			return Normalize(inner)
		}
		return normalizeObject(val)
	case []any:
		out := make([]any, 0, len(val))
		for _, el := range val {
			n := Normalize(el)
			// 对象元素必须带可识别字段，否则当引用残根丢掉
			if m, ok := n.(map[string]any); ok && !hasIdentity(m) {
				continue
			}
			out = append(out, n)
		}
		return out
	default:
		return v
	}
}

// normalizeObject 键名规范化 + 按键类型收束值
func normalizeObject(m map[string]any) map[string]any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 状态同义词归一只对订单明细行生效。明细行一定带 foodId
	// （联合主键的一半，嵌套在订单里时 orderId 可能被省掉），
	// 而桌台/订单/账单对象都没有这个键，拿它当判别就够了。
	line := false
	for _, k := range keys {
		if strings.HasPrefix(k, "$") {
			continue
		}
		if CanonicalKey(k) == "foodId" {
			line = true
			break
		}
	}

	out := make(map[string]any, len(m))
	for _, k := range keys {
		if strings.HasPrefix(k, "$") {
			// $id / $ref 之类的线上协议标记，不是数据
			continue
		}
		ck := CanonicalKey(k)
		if ck == "" {
			continue
		}
		// 键名撞车时先到的非空值赢，后来的丢掉
		if prev, exists := out[ck]; exists && !isEmptyValue(prev) {
			continue
		}
		out[ck] = coerce(ck, Normalize(m[k]), line)
	}
	return out
}

// CanonicalKey 把任意来源的键名折到 lowerCamelCase：
// 去掉 $ 标记和 [...] 片段，ID 后缀归一成 Id，分隔符切词再拼驼峰。
func CanonicalKey(k string) string {
	k = strings.ReplaceAll(k, "$", "")
	k = bracketFragment.ReplaceAllString(k, "")
	parts := strings.FieldsFunc(k, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range parts {
		if strings.EqualFold(p, "id") {
			p = "Id"
		} else if strings.HasSuffix(p, "ID") {
			p = p[:len(p)-2] + "Id"
		}
		r := []rune(p)
		if i == 0 {
			r[0] = unicode.ToLower(r[0])
		} else {
			r[0] = unicode.ToUpper(r[0])
		}
		b.WriteString(string(r))
	}
	return b.String()
}

// coerce 按规范键名收束值类型。
// line 为真表示所在对象是订单明细行，status 才走同义词归一，
// 桌台的 free/occupied、订单的 open/paid 等原样放行。
func coerce(key string, v any, line bool) any {
	switch {
	case key == "status":
		if line {
			return CanonicalStatus(asString(v))
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	case key == "id" || strings.HasSuffix(key, "Id"):
		return strings.TrimSpace(asString(v))
	case intKeys[key]:
		return toInt(v)
	case floatKeys[key]:
		return toFloat(v)
	default:
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	}
}

// hasIdentity 数组元素是否带可识别字段
func hasIdentity(m map[string]any) bool {
	for k := range m {
		if k == "id" || k == "name" || strings.HasSuffix(k, "Id") || strings.HasSuffix(k, "Name") {
			return true
		}
	}
	return false
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return ""
	}
}

func toInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
