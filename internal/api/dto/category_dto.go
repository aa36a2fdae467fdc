package dto

import "time"

// ==================== 分类 ====================

// CategoryVO 分类视图对象
type CategoryVO struct {
	CateID      string `json:"cateId"`
	CateName    string `json:"cateName"`
	Description string `json:"description,omitempty"`
}

// CategorySaveReq 分类创建/覆盖更新请求
type CategorySaveReq struct {
	CateID      string `json:"cateId" binding:"required"`
	CateName    string `json:"cateName" binding:"required"`
	Description string `json:"description"`
}

// CategoryDeleteResp 分类删除回执
type CategoryDeleteResp struct {
	CateID    string    `json:"cateId"`
	CateName  string    `json:"cateName"`
	DeletedAt time.Time `json:"deletedAt"`
}
