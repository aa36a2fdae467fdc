package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ==================== 错误分类 ====================

// 服务层只认这几类错误，controller 按类翻译成状态码，
// 其余一律当作未知错误抛 500。
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrConflict           = errors.New("数据冲突")
	ErrBadRequest         = errors.New("请求参数不合法")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

// ==================== 依赖阻断错误 ====================

// DependencyError 删除被引用行时的阻断错误，带各表引用计数
type DependencyError struct {
	Entity     string
	ID         string
	Dependents map[string]int64
}

func (e *DependencyError) Error() string {
	keys := make([]string, 0, len(e.Dependents))
	for k := range e.Dependents {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, e.Dependents[k]))
	}
	return fmt.Sprintf("%s %s 仍被引用，无法删除: %s", e.Entity, e.ID, strings.Join(parts, ", "))
}

// Is 让 errors.Is(err, ErrConflict) 对依赖阻断也成立
func (e *DependencyError) Is(target error) bool {
	return target == ErrConflict
}

// Total 引用总数
func (e *DependencyError) Total() int64 {
	var n int64
	for _, v := range e.Dependents {
		n += v
	}
	return n
}
