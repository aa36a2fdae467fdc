package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/service"
)

// respondErr 服务层错误到状态码的统一翻译
// 依赖阻断带引用计数一起回给调用方，其余只回 code + message
func respondErr(ctx *gin.Context, err error) {
	var depErr *service.DependencyError
	if errors.As(err, &depErr) {
		ctx.JSON(http.StatusConflict, gin.H{
			"code":       409,
			"message":    depErr.Error(),
			"dependents": depErr.Dependents,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"code": 409, "message": err.Error()})
	case errors.Is(err, service.ErrBadRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
	}
}

// badRequest 请求体绑定失败
func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
}
