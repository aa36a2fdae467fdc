package dto

// ==================== 原料 ====================

// IngredientVO 原料视图对象
type IngredientVO struct {
	IngreID         string `json:"ingreId"`
	IngreName       string `json:"ingreName"`
	Stock           int    `json:"stock"`
	UnitMeasurement string `json:"unitMeasurement,omitempty"`
}

// IngredientSaveReq 原料创建/覆盖更新请求
type IngredientSaveReq struct {
	IngreID         string `json:"ingreId" binding:"required"`
	IngreName       string `json:"ingreName" binding:"required"`
	Stock           int    `json:"stock"`
	UnitMeasurement string `json:"unitMeasurement"`
}
