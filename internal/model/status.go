package model

// ==================== 餐桌状态常量 ====================

// TableStatus 餐桌状态
const (
	TableStatusFree     = "free"     // 空闲
	TableStatusOccupied = "occupied" // 使用中
)

// ==================== 菜品制作状态常量 ====================

// LineStatus 订单明细（厨房）状态，所有对外输出只允许这几个值
const (
	LineStatusNotStarted = "not started" // 未开始
	LineStatusCooking    = "cooking"     // 制作中
	LineStatusReady      = "ready"       // 可上菜
	LineStatusCompleted  = "completed"   // 已完成
	LineStatusCancelled  = "cancelled"   // 已取消
)

// CanonicalLineStatuses 规范状态全集，客户端归一化时做精确匹配用
var CanonicalLineStatuses = []string{
	LineStatusNotStarted,
	LineStatusCooking,
	LineStatusReady,
	LineStatusCompleted,
	LineStatusCancelled,
}

// IsCanonicalLineStatus 判断是否为规范状态
func IsCanonicalLineStatus(s string) bool {
	for _, v := range CanonicalLineStatuses {
		if s == v {
			return true
		}
	}
	return false
}
