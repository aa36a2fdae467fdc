package model

// ==================== 角色常量 ====================

const (
	RoleAdmin   = "admin"   // 管理员
	RoleCashier = "cashier" // 收银
	RoleWaiter  = "waiter"  // 服务员
	RoleKitchen = "kitchen" // 后厨
)

// User 系统用户
// Password 存 bcrypt 哈希，任何读路径都不往外吐
type User struct {
	UserID   string `gorm:"column:user_id;type:char(10);primaryKey"`
	UserName string `gorm:"size:50;uniqueIndex;not null"`
	Password string `gorm:"size:100;not null"`
	Role     string `gorm:"size:20"`
	Right    string `gorm:"size:50"`
	FullName string `gorm:"size:100"`
	Phone    string `gorm:"size:20;uniqueIndex"`
	Email    string `gorm:"size:100;uniqueIndex"`
}

func (User) TableName() string {
	return "users"
}
