package dto

import "time"

// ==================== 餐桌 ====================

// TableVO 餐桌视图对象
type TableVO struct {
	TableID   string `json:"tableId"`
	TableName string `json:"tableName"`
	SeatCount int    `json:"seatCount"`
	Status    string `json:"status"`
}

// TableSaveReq 餐桌创建/覆盖更新请求
type TableSaveReq struct {
	TableID   string `json:"tableId" binding:"required"`
	TableName string `json:"tableName" binding:"required"`
	SeatCount int    `json:"seatCount"`
	Status    string `json:"status"`
}

// TableDeleteResp 餐桌删除回执
type TableDeleteResp struct {
	TableID   string    `json:"tableId"`
	TableName string    `json:"tableName"`
	DeletedAt time.Time `json:"deletedAt"`
}
