package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
	"resto_dev_v1_202608/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Category{}, &model.FoodInfo{},
		&model.Ingredient{}, &model.Recipe{}, &model.RecipeDetail{},
		&model.Table{}, &model.User{},
		&model.Order{}, &model.OrderDetail{},
		&model.Bill{}, &model.BillDetail{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	cateSvc := service.NewCategoryService(repository.NewCategoryRepository(db))
	foodSvc := service.NewFoodService(repository.NewFoodRepository(db))
	userSvc := service.NewUserService(repository.NewUserRepository(db))

	cateCtl := NewCategoryController(cateSvc)
	foodCtl := NewFoodController(foodSvc)
	userCtl := NewUserController(userSvc)

	r := gin.New()
	api := r.Group("/api")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", cateCtl.List)
			categories.GET("/:id", cateCtl.Get)
			categories.POST("", cateCtl.Create)
			categories.PUT("/:id", cateCtl.Update)
			categories.DELETE("/:id", cateCtl.Delete)
		}
		foods := api.Group("/foods")
		{
			foods.GET("/:id", foodCtl.Get)
			foods.POST("", foodCtl.Create)
		}
		api.POST("/auth/login", userCtl.Login)
		api.POST("/users", userCtl.Create)
	}
	return &testEnv{db: db, router: r}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("响应不是 JSON 对象: %v\n%s", err, w.Body.String())
	}
	return m
}
