package dto

// ==================== 用户 ====================

// UserVO 用户视图对象，不含密码
type UserVO struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Role     string `json:"role,omitempty"`
	Right    string `json:"right,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// UserSaveReq 用户创建/覆盖更新请求
// Password 明文进来，服务端 bcrypt 后落库
type UserSaveReq struct {
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Right    string `json:"right"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// LoginReq 登录请求
type LoginReq struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}
