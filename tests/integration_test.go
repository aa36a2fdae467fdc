package tests

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

	"resto_dev_v1_202608/internal/controller"
	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
	"resto_dev_v1_202608/internal/router"
	"resto_dev_v1_202608/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试环境 ====================

func setupServer(t *testing.T) *gin.Engine {
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
	ingreSvc := service.NewIngredientService(repository.NewIngredientRepository(db))
	recipeSvc := service.NewRecipeService(repository.NewRecipeRepository(db))
	tableSvc := service.NewTableService(repository.NewTableRepository(db))
	userSvc := service.NewUserService(repository.NewUserRepository(db))
	orderSvc := service.NewOrderService(repository.NewOrderRepository(db))
	detailSvc := service.NewOrderDetailService(repository.NewOrderDetailRepository(db), repository.NewOrderRepository(db))
	billSvc := service.NewBillService(repository.NewBillRepository(db))
	billDetailSvc := service.NewBillDetailService(repository.NewBillDetailRepository(db), repository.NewBillRepository(db))

	r := gin.New()
	router.InitRoutes(r,
		controller.NewCategoryController(cateSvc),
		controller.NewFoodController(foodSvc),
		controller.NewIngredientController(ingreSvc),
		controller.NewRecipeController(recipeSvc),
		controller.NewTableController(tableSvc),
		controller.NewUserController(userSvc),
		controller.NewOrderController(orderSvc),
		controller.NewOrderDetailController(detailSvc),
		controller.NewBillController(billSvc, billDetailSvc),
	)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) map[string]interface{} {
	t.Helper()
	if w.Code != want {
		t.Fatalf("期望状态码 %d，得到 %d，响应: %s", want, w.Code, w.Body.String())
	}
	var m map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		json.Unmarshal(w.Body.Bytes(), &m)
	}
	return m
}

// ==================== 端到端场景 ====================

// 分类被菜品引用时先阻断，挪开引用后删除放行并回显
func TestScenario_CategoryDeleteLifecycle(t *testing.T) {
	r := setupServer(t)

	mustStatus(t, do(t, r, "POST", "/api/categories",
		map[string]interface{}{"cateId": "C1", "cateName": "Drinks"}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/foods",
		map[string]interface{}{"foodId": "F1", "foodName": "Cola", "unitPrice": 2.5, "cateId": "C1"}), http.StatusCreated)

	// 删 C1 被 F1 阻断
	body := mustStatus(t, do(t, r, "DELETE", "/api/categories/C1", nil), http.StatusConflict)
	deps, _ := body["dependents"].(map[string]interface{})
	if deps["foodInfos"] != float64(1) {
		t.Fatalf("阻断响应应带引用计数，得到: %v", body)
	}

	// C1 还查得到
	mustStatus(t, do(t, r, "GET", "/api/categories/C1", nil), http.StatusOK)

	// 删掉 F1 再删 C1，回显 {cateId, cateName}
	mustStatus(t, do(t, r, "DELETE", "/api/foods/F1", nil), http.StatusOK)
	receipt := mustStatus(t, do(t, r, "DELETE", "/api/categories/C1", nil), http.StatusOK)
	if receipt["cateId"] != "C1" || receipt["cateName"] != "Drinks" {
		t.Fatalf("删除回执不对: %v", receipt)
	}
}

// 开单、加菜，明细带菜品名且状态落缺省值
func TestScenario_OrderWithDetails(t *testing.T) {
	r := setupServer(t)

	mustStatus(t, do(t, r, "POST", "/api/categories",
		map[string]interface{}{"cateId": "C1", "cateName": "Drinks"}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/foods",
		map[string]interface{}{"foodId": "F1", "foodName": "Cola", "unitPrice": 2.5, "cateId": "C1"}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/tables",
		map[string]interface{}{"tableId": "T1", "tableName": "Window 1", "seatCount": 4}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/users",
		map[string]interface{}{"userId": "U1", "userName": "waiter01", "password": "secret123"}), http.StatusCreated)

	order := mustStatus(t, do(t, r, "POST", "/api/orders",
		map[string]interface{}{"orderId": "O1", "tableId": "T1", "userId": "U1"}), http.StatusCreated)
	if order["status"] != "open" {
		t.Fatalf("订单状态缺省应为 open，得到 %v", order["status"])
	}
	if order["tableName"] != "Window 1" || order["userName"] != "waiter01" {
		t.Fatalf("订单应拍平桌名和操作员名: %v", order)
	}
	if order["createdTime"] == nil {
		t.Fatalf("创建时间应由服务端写入")
	}

	// 加菜不传状态
	mustStatus(t, do(t, r, "POST", "/api/order-details",
		map[string]interface{}{"foodId": "F1", "orderId": "O1", "quantity": 2}), http.StatusCreated)

	// 按订单查明细
	w := do(t, r, "GET", "/api/order-details/order/O1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("查明细失败: %d %s", w.Code, w.Body.String())
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("明细应是数组: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("应有 1 条明细，得到 %d", len(rows))
	}
	row := rows[0]
	if row["foodName"] != "Cola" {
		t.Fatalf("明细应带菜品名: %v", row)
	}
	if row["status"] != "not started" {
		t.Fatalf("明细状态缺省应为 not started，得到 %v", row["status"])
	}
	if row["unitPrice"] != float64(2.5) {
		t.Fatalf("明细单价应回退到菜品价: %v", row["unitPrice"])
	}
}

// POST 回读等价、PUT 主键校验、OPTIONS 预检
func TestScenario_WriteContracts(t *testing.T) {
	r := setupServer(t)

	food := map[string]interface{}{
		"foodId": "F1", "foodName": "Cola", "unitPrice": 2.5, "cateId": "C1",
	}
	mustStatus(t, do(t, r, "POST", "/api/categories",
		map[string]interface{}{"cateId": "C1", "cateName": "Drinks"}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/foods", food), http.StatusCreated)

	// POST 完 GET 回来字段一致
	got := mustStatus(t, do(t, r, "GET", "/api/foods/F1", nil), http.StatusOK)
	if got["foodName"] != "Cola" || got["unitPrice"] != float64(2.5) || got["cateId"] != "C1" {
		t.Fatalf("回读字段不一致: %v", got)
	}

	// PUT 主键不一致 → 400 且行不动
	bad := map[string]interface{}{"foodId": "F2", "foodName": "Pepsi", "cateId": "C1"}
	mustStatus(t, do(t, r, "PUT", "/api/foods/F1", bad), http.StatusBadRequest)
	got = mustStatus(t, do(t, r, "GET", "/api/foods/F1", nil), http.StatusOK)
	if got["foodName"] != "Cola" {
		t.Fatalf("400 之后行不该被改动: %v", got)
	}

	// OPTIONS 预检在进业务前短路，带 CORS 头
	req, _ := http.NewRequest(http.MethodOptions, "/api/foods", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("预检应回 204，得到 %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("预检响应缺 CORS 头")
	}

	// 错误响应也要带 CORS 头
	req, _ = http.NewRequest(http.MethodGet, "/api/foods/F9", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("应 404，得到 %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("错误响应缺 CORS 头")
	}
}

// 结账链路：开单、出账单、挂账单明细
func TestScenario_BillLifecycle(t *testing.T) {
	r := setupServer(t)

	mustStatus(t, do(t, r, "POST", "/api/tables",
		map[string]interface{}{"tableId": "T1", "tableName": "Window 1", "seatCount": 4}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/users",
		map[string]interface{}{"userId": "U1", "userName": "cashier01", "password": "secret123"}), http.StatusCreated)
	mustStatus(t, do(t, r, "POST", "/api/orders",
		map[string]interface{}{"orderId": "O1", "tableId": "T1", "userId": "U1", "total": 18.5}), http.StatusCreated)

	bill := mustStatus(t, do(t, r, "POST", "/api/bills", map[string]interface{}{
		"billId": "B1", "orderId": "O1", "userId": "U1",
		"total": 18.5, "discount": 0.5, "totalFinal": 18, "payment": 20,
	}), http.StatusCreated)
	if bill["createdTime"] == nil {
		t.Fatalf("账单出账时间应由服务端写入")
	}

	mustStatus(t, do(t, r, "POST", "/api/bill-details", map[string]interface{}{
		"orderId": "O1", "billId": "B1", "quantity": 1, "unitPrice": 18.5,
	}), http.StatusCreated)

	w := do(t, r, "GET", "/api/bill-details/bill/B1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("查账单明细失败: %d %s", w.Code, w.Body.String())
	}
	var rows []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &rows)
	if len(rows) != 1 {
		t.Fatalf("应有 1 条账单明细，得到 %d", len(rows))
	}
}
