package model

// Category 菜品分类
type Category struct {
	CateID      string `gorm:"column:cate_id;type:char(10);primaryKey"`
	CateName    string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`

	// 关联
	Foods []FoodInfo `gorm:"foreignKey:CateID;references:CateID"`
}

func (Category) TableName() string {
	return "categories"
}
