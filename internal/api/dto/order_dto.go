package dto

import "time"

// ==================== 订单 ====================

// OrderVO 订单视图对象，拍平一层外键冗余（桌名、操作员名）
type OrderVO struct {
	OrderID       string          `json:"orderId"`
	CreatedTime   time.Time       `json:"createdTime"`
	Status        string          `json:"status"`
	Total         float64         `json:"total"`
	Note          string          `json:"note,omitempty"`
	Discount      float64         `json:"discount"`
	TableID       string          `json:"tableId"`
	TableName     string          `json:"tableName,omitempty"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName,omitempty"`
	ReservationID string          `json:"reservationId,omitempty"`
	Details       []OrderDetailVO `json:"details,omitempty"`
}

// OrderDetailVO 订单明细视图对象
// UnitPrice 是解析后的值：明细自价优先，0 则回退菜品单价
type OrderDetailVO struct {
	FoodID    string  `json:"foodId"`
	OrderID   string  `json:"orderId"`
	FoodName  string  `json:"foodName,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Status    string  `json:"status"`
}

// OrderSaveReq 订单创建/覆盖更新请求
// CreatedTime 由服务端写入，请求里传了也会被覆盖
type OrderSaveReq struct {
	OrderID       string  `json:"orderId" binding:"required"`
	Status        string  `json:"status"`
	Total         float64 `json:"total"`
	Note          string  `json:"note"`
	Discount      float64 `json:"discount"`
	TableID       string  `json:"tableId" binding:"required"`
	UserID        string  `json:"userId" binding:"required"`
	ReservationID string  `json:"reservationId"`
}

// OrderDeleteResp 订单删除回执
type OrderDeleteResp struct {
	OrderID   string    `json:"orderId"`
	TableName string    `json:"tableName,omitempty"`
	DeletedAt time.Time `json:"deletedAt"`
}

// ==================== 订单明细 ====================

// OrderDetailSaveReq 订单明细创建/覆盖更新请求
// Status 缺省时落 "not started"
type OrderDetailSaveReq struct {
	FoodID    string  `json:"foodId" binding:"required"`
	OrderID   string  `json:"orderId" binding:"required"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Status    string  `json:"status"`
}

// OrderDetailDeleteResp 订单明细删除回执
type OrderDetailDeleteResp struct {
	FoodID    string    `json:"foodId"`
	OrderID   string    `json:"orderId"`
	FoodName  string    `json:"foodName,omitempty"`
	DeletedAt time.Time `json:"deletedAt"`
}
