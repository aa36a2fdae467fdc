package dto

import "time"

// ==================== 菜品 ====================

// FoodVO 菜品视图对象，带一层冗余的分类名
type FoodVO struct {
	FoodID      string  `json:"foodId"`
	FoodName    string  `json:"foodName"`
	UnitPrice   float64 `json:"unitPrice"`
	Description string  `json:"description,omitempty"`
	ImageRef    string  `json:"imageRef,omitempty"`
	CateID      string  `json:"cateId"`
	CateName    string  `json:"cateName,omitempty"`
}

// FoodSaveReq 菜品创建/覆盖更新请求
type FoodSaveReq struct {
	FoodID      string  `json:"foodId" binding:"required"`
	FoodName    string  `json:"foodName" binding:"required"`
	UnitPrice   float64 `json:"unitPrice"`
	Description string  `json:"description"`
	ImageRef    string  `json:"imageRef"`
	CateID      string  `json:"cateId" binding:"required"`
}

// FoodDeleteResp 菜品删除回执
type FoodDeleteResp struct {
	FoodID    string    `json:"foodId"`
	FoodName  string    `json:"foodName"`
	DeletedAt time.Time `json:"deletedAt"`
}
