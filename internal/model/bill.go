package model

import "time"

// ==================== Bill 账单主表 ====================

// Bill 账单
// TotalFinal 由调用方给定，服务端不从 Total/Discount 推算
type Bill struct {
	BillID      string    `gorm:"column:bill_id;type:char(10);primaryKey"`
	Total       float64   `gorm:"not null;default:0"`
	Discount    float64   `gorm:"not null;default:0"`
	TotalFinal  float64   `gorm:"not null;default:0"`
	Payment     float64   `gorm:"not null;default:0"`
	CreatedTime time.Time `gorm:"not null"` // 服务端写入

	OrderID string `gorm:"column:order_id;type:char(10);index;not null"`
	UserID  string `gorm:"column:user_id;type:char(10);index;not null"`

	// 关联
	User    *User        `gorm:"foreignKey:UserID;references:UserID"`
	Details []BillDetail `gorm:"foreignKey:BillID;references:BillID"`
}

func (Bill) TableName() string {
	return "bills"
}

// ==================== BillDetail 账单明细 ====================

// BillDetail 账单明细，(OrderID, BillID) 联合主键
type BillDetail struct {
	OrderID   string  `gorm:"column:order_id;type:char(10);primaryKey"`
	BillID    string  `gorm:"column:bill_id;type:char(10);primaryKey"`
	Quantity  int     `gorm:"not null;default:1"`
	UnitPrice float64 `gorm:"not null;default:0"`
}

func (BillDetail) TableName() string {
	return "bill_details"
}
