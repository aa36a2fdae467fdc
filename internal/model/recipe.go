package model

// ==================== Recipe 配方主表 ====================

// Recipe 菜品配方
type Recipe struct {
	RecipeID    string `gorm:"column:recipe_id;type:char(10);primaryKey"`
	Description string `gorm:"type:text"`

	FoodID string `gorm:"column:food_id;type:char(10);index;not null"`

	// 关联
	Food    *FoodInfo      `gorm:"foreignKey:FoodID;references:FoodID"`
	Details []RecipeDetail `gorm:"foreignKey:RecipeID;references:RecipeID"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// ==================== RecipeDetail 配方明细 ====================

// RecipeDetail 配方用料，(RecipeID, IngreID) 联合主键
type RecipeDetail struct {
	RecipeID        string `gorm:"column:recipe_id;type:char(10);primaryKey"`
	IngreID         string `gorm:"column:ingre_id;type:char(10);primaryKey"`
	Quantity        int    `gorm:"not null;default:0"`
	UnitMeasurement string `gorm:"size:20"`

	// 关联
	Ingredient *Ingredient `gorm:"foreignKey:IngreID;references:IngreID"`
}

func (RecipeDetail) TableName() string {
	return "recipe_details"
}
