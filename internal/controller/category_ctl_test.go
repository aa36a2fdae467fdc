package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==================== 状态码契约 ====================

func TestCategoryRoutes_StatusCodes(t *testing.T) {
	env := setupEnv(t)

	cate := map[string]interface{}{"cateId": "C1", "cateName": "Drinks"}

	// 创建 → 201
	w := performRequest(env.router, "POST", "/api/categories", cate)
	assert.Equal(t, http.StatusCreated, w.Code)

	// 重复创建 → 409
	w = performRequest(env.router, "POST", "/api/categories", cate)
	assert.Equal(t, http.StatusConflict, w.Code)

	// 查详情 → 200
	w = performRequest(env.router, "GET", "/api/categories/C1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Drinks", body["cateName"])

	// 不存在 → 404
	w = performRequest(env.router, "GET", "/api/categories/C9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 路径主键与请求体不一致 → 400
	w = performRequest(env.router, "PUT", "/api/categories/C1",
		map[string]interface{}{"cateId": "C2", "cateName": "Mismatch"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 正常覆盖 → 200
	w = performRequest(env.router, "PUT", "/api/categories/C1",
		map[string]interface{}{"cateId": "C1", "cateName": "Beverages"})
	assert.Equal(t, http.StatusOK, w.Code)

	// 请求体缺必填字段 → 400
	w = performRequest(env.router, "POST", "/api/categories",
		map[string]interface{}{"cateId": "C2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryDelete_DependencyConflict(t *testing.T) {
	env := setupEnv(t)

	performRequest(env.router, "POST", "/api/categories",
		map[string]interface{}{"cateId": "C1", "cateName": "Drinks"})
	performRequest(env.router, "POST", "/api/foods",
		map[string]interface{}{"foodId": "F1", "foodName": "Cola", "unitPrice": 2.5, "cateId": "C1"})

	// 被菜品引用 → 409，响应带引用计数
	w := performRequest(env.router, "DELETE", "/api/categories/C1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	deps, ok := body["dependents"].(map[string]interface{})
	if assert.True(t, ok, "响应应带 dependents 字段: %s", w.Body.String()) {
		assert.Equal(t, float64(1), deps["foodInfos"])
	}

	// 目标行还在
	w = performRequest(env.router, "GET", "/api/categories/C1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 删除不存在的行 → 404
	w = performRequest(env.router, "DELETE", "/api/categories/C9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryDelete_Receipt(t *testing.T) {
	env := setupEnv(t)

	performRequest(env.router, "POST", "/api/categories",
		map[string]interface{}{"cateId": "C1", "cateName": "Drinks"})

	w := performRequest(env.router, "DELETE", "/api/categories/C1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "C1", body["cateId"])
	assert.Equal(t, "Drinks", body["cateName"])
	assert.NotEmpty(t, body["deletedAt"])
}
