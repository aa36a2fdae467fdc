package model

// Ingredient 原料（库存按整数计）
type Ingredient struct {
	IngreID         string `gorm:"column:ingre_id;type:char(10);primaryKey"`
	IngreName       string `gorm:"size:100;uniqueIndex;not null"`
	Stock           int    `gorm:"not null;default:0"`
	UnitMeasurement string `gorm:"size:20"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// BelowThreshold 库存是否低于阈值
func (i *Ingredient) BelowThreshold(threshold int) bool {
	return i.Stock < threshold
}
