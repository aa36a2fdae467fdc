package dto

// ==================== 配方 ====================

// RecipeVO 配方视图对象
type RecipeVO struct {
	RecipeID    string           `json:"recipeId"`
	Description string           `json:"description,omitempty"`
	FoodID      string           `json:"foodId"`
	FoodName    string           `json:"foodName,omitempty"`
	Details     []RecipeDetailVO `json:"details,omitempty"`
}

// RecipeDetailVO 配方明细视图对象，带冗余的原料名
type RecipeDetailVO struct {
	RecipeID        string `json:"recipeId"`
	IngreID         string `json:"ingreId"`
	IngreName       string `json:"ingreName,omitempty"`
	Quantity        int    `json:"quantity"`
	UnitMeasurement string `json:"unitMeasurement,omitempty"`
}

// RecipeSaveReq 配方创建/覆盖更新请求
type RecipeSaveReq struct {
	RecipeID    string `json:"recipeId" binding:"required"`
	Description string `json:"description"`
	FoodID      string `json:"foodId" binding:"required"`
}

// RecipeDetailSaveReq 配方明细创建/覆盖更新请求
type RecipeDetailSaveReq struct {
	RecipeID        string `json:"recipeId" binding:"required"`
	IngreID         string `json:"ingreId" binding:"required"`
	Quantity        int    `json:"quantity"`
	UnitMeasurement string `json:"unitMeasurement"`
}
