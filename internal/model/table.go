package model

// Table 餐桌
// 结构体上不能再挂 TableName() 方法（和字段重名），建表名走 gorm 默认复数规则
type Table struct {
	TableID   string `gorm:"column:table_id;type:char(10);primaryKey"`
	TableName string `gorm:"size:100;uniqueIndex;not null"`
	SeatCount int    `gorm:"not null;default:0"`
	Status    string `gorm:"size:20;not null;default:free"`
}

// IsFree 是否空闲可用
func (t *Table) IsFree() bool {
	return t.Status != TableStatusOccupied
}
