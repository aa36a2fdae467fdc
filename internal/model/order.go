package model

import "time"

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
const (
	OrderStatusOpen      = "open"      // 进行中
	OrderStatusPaid      = "paid"      // 已结账
	OrderStatusCancelled = "cancelled" // 已取消
)

// ==================== Order 订单主表 ====================

// Order 订单
type Order struct {
	OrderID     string    `gorm:"column:order_id;type:char(10);primaryKey"`
	CreatedTime time.Time `gorm:"not null"` // 服务端写入，忽略调用方传值
	Status      string    `gorm:"size:30;index;default:open"`
	Total       float64   `gorm:"not null;default:0"`
	Note        string    `gorm:"type:text"`
	Discount    float64   `gorm:"not null;default:0"`

	TableID       string `gorm:"column:table_id;type:char(10);index;not null"`
	UserID        string `gorm:"column:user_id;type:char(10);index;not null"`
	ReservationID string `gorm:"column:reservation_id;type:char(10)"`

	// 关联
	Table   *Table        `gorm:"foreignKey:TableID;references:TableID"`
	User    *User         `gorm:"foreignKey:UserID;references:UserID"`
	Details []OrderDetail `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// ==================== OrderDetail 订单明细 ====================

// OrderDetail 订单明细，(FoodID, OrderID) 联合主键
// UnitPrice 为 0 时读路径回退到菜品单价
type OrderDetail struct {
	FoodID    string  `gorm:"column:food_id;type:char(10);primaryKey"`
	OrderID   string  `gorm:"column:order_id;type:char(10);primaryKey"`
	Quantity  int     `gorm:"not null;default:1"`
	UnitPrice float64 `gorm:"not null;default:0"`
	Status    string  `gorm:"size:30;not null;default:'not started'"`

	// 关联
	Food *FoodInfo `gorm:"foreignKey:FoodID;references:FoodID"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}

// ResolveUnitPrice 统一的单价取值：明细自带单价优先，0 则取菜品单价
func (d *OrderDetail) ResolveUnitPrice() float64 {
	if d.UnitPrice > 0 {
		return d.UnitPrice
	}
	if d.Food != nil {
		return d.Food.UnitPrice
	}
	return 0
}

// LineTotal 明细小计
func (d *OrderDetail) LineTotal() float64 {
	return d.ResolveUnitPrice() * float64(d.Quantity)
}
