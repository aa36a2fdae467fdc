package dto

import "time"

// ==================== 账单 ====================

// BillVO 账单视图对象
type BillVO struct {
	BillID      string         `json:"billId"`
	Total       float64        `json:"total"`
	Discount    float64        `json:"discount"`
	TotalFinal  float64        `json:"totalFinal"`
	Payment     float64        `json:"payment"`
	CreatedTime time.Time      `json:"createdTime"`
	OrderID     string         `json:"orderId"`
	UserID      string         `json:"userId"`
	UserName    string         `json:"userName,omitempty"`
	Details     []BillDetailVO `json:"details,omitempty"`
}

// BillDetailVO 账单明细视图对象
type BillDetailVO struct {
	OrderID   string  `json:"orderId"`
	BillID    string  `json:"billId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// BillSaveReq 账单创建/覆盖更新请求
// TotalFinal 由调用方给定，服务端不做 Total-Discount 推算
type BillSaveReq struct {
	BillID     string  `json:"billId" binding:"required"`
	Total      float64 `json:"total"`
	Discount   float64 `json:"discount"`
	TotalFinal float64 `json:"totalFinal"`
	Payment    float64 `json:"payment"`
	OrderID    string  `json:"orderId" binding:"required"`
	UserID     string  `json:"userId" binding:"required"`
}

// BillDetailSaveReq 账单明细创建/覆盖更新请求
type BillDetailSaveReq struct {
	OrderID   string  `json:"orderId" binding:"required"`
	BillID    string  `json:"billId" binding:"required"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}
