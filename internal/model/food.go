package model

// FoodInfo 菜品信息
type FoodInfo struct {
	FoodID      string  `gorm:"column:food_id;type:char(10);primaryKey"`
	FoodName    string  `gorm:"size:100;uniqueIndex;not null"`
	UnitPrice   float64 `gorm:"not null;default:0"`
	Description string  `gorm:"type:text"`
	ImageRef    string  `gorm:"size:500"` // 图片引用，由调用方维护，服务端不解释

	CateID string `gorm:"column:cate_id;type:char(10);index;not null"`

	// 关联
	Category *Category `gorm:"foreignKey:CateID;references:CateID"`
}

func (FoodInfo) TableName() string {
	return "food_infos"
}
