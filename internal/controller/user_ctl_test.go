package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	env := setupEnv(t)

	w := performRequest(env.router, "POST", "/api/users", map[string]interface{}{
		"userId":   "U1",
		"userName": "waiter01",
		"password": "secret123",
		"role":     "waiter",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	// 任何响应都不能吐密码
	assert.NotContains(t, w.Body.String(), "secret123")
	assert.NotContains(t, w.Body.String(), "password")

	// 凭证正确 → 200 + 完整用户
	w = performRequest(env.router, "POST", "/api/auth/login", map[string]interface{}{
		"userName": "waiter01",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "U1", body["userId"])
	assert.NotContains(t, w.Body.String(), "secret123")

	// 密码错 → 401
	w = performRequest(env.router, "POST", "/api/auth/login", map[string]interface{}{
		"userName": "waiter01",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 用户不存在 → 401
	w = performRequest(env.router, "POST", "/api/auth/login", map[string]interface{}{
		"userName": "ghost",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 缺字段 → 400
	w = performRequest(env.router, "POST", "/api/auth/login", map[string]interface{}{
		"userName": "waiter01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
