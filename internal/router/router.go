package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resto_dev_v1_202608/internal/controller"
	"resto_dev_v1_202608/internal/middleware"
)

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine,
	categoryCtl *controller.CategoryController,
	foodCtl *controller.FoodController,
	ingreCtl *controller.IngredientController,
	recipeCtl *controller.RecipeController,
	tableCtl *controller.TableController,
	userCtl *controller.UserController,
	orderCtl *controller.OrderController,
	detailCtl *controller.OrderDetailController,
	billCtl *controller.BillController) {

	// 全局中间件：请求 ID + 访问日志 + panic 兜底 + CORS
	r.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())

	// 前端与后端分开部署，放开全部来源；错误响应也要带 CORS 头
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDKey)
	r.Use(cors.New(corsCfg))

	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. API 路由组
	api := r.Group("/api")
	{
		// auth 认证组，只做口令校验，不发 token
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", userCtl.Login)
		}

		// category 菜品分类
		categories := api.Group("/categories")
		{
			categories.GET("", categoryCtl.List)
			categories.GET("/:id", categoryCtl.Get)
			categories.POST("", categoryCtl.Create)
			categories.PUT("/:id", categoryCtl.Update)
			categories.DELETE("/:id", categoryCtl.Delete)
		}

		// food 菜品
		foods := api.Group("/foods")
		{
			foods.GET("", foodCtl.List)
			foods.GET("/:id", foodCtl.Get)
			// GET /api/foods/category/C1
			foods.GET("/category/:cateId", foodCtl.ListByCategory)
			foods.POST("", foodCtl.Create)
			foods.PUT("/:id", foodCtl.Update)
			foods.DELETE("/:id", foodCtl.Delete)
		}

		// ingredient 原料
		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", ingreCtl.List)
			ingredients.GET("/low-stock", ingreCtl.ListBelowStock)
			ingredients.GET("/:id", ingreCtl.Get)
			ingredients.POST("", ingreCtl.Create)
			ingredients.PUT("/:id", ingreCtl.Update)
			ingredients.DELETE("/:id", ingreCtl.Delete)
		}

		// recipe 配方，明细行挂在 /:id/details 下
		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeCtl.List)
			recipes.GET("/:id", recipeCtl.Get)
			recipes.GET("/food/:foodId", recipeCtl.ListByFood)
			recipes.POST("", recipeCtl.Create)
			recipes.PUT("/:id", recipeCtl.Update)
			recipes.DELETE("/:id", recipeCtl.Delete)

			recipes.POST("/:id/details", recipeCtl.AddDetail)
			recipes.PUT("/:id/details/:ingreId", recipeCtl.UpdateDetail)
			recipes.DELETE("/:id/details/:ingreId", recipeCtl.DeleteDetail)
		}

		// table 餐桌
		tables := api.Group("/tables")
		{
			tables.GET("", tableCtl.List)
			tables.GET("/available", tableCtl.ListAvailable)
			tables.GET("/:id", tableCtl.Get)
			tables.POST("", tableCtl.Create)
			tables.PUT("/:id", tableCtl.Update)
			tables.DELETE("/:id", tableCtl.Delete)
		}

		// user 员工
		users := api.Group("/users")
		{
			users.GET("", userCtl.List)
			users.GET("/:id", userCtl.Get)
			users.POST("", userCtl.Create)
			users.PUT("/:id", userCtl.Update)
			users.DELETE("/:id", userCtl.Delete)
		}

		// order 订单
		orders := api.Group("/orders")
		{
			orders.GET("", orderCtl.List)
			orders.GET("/:id", orderCtl.Get)
			orders.GET("/table/:tableId", orderCtl.ListByTable)
			orders.GET("/user/:userId", orderCtl.ListByUser)
			orders.GET("/status/:status", orderCtl.ListByStatus)
			orders.POST("", orderCtl.Create)
			orders.PUT("/:id", orderCtl.Update)
			orders.DELETE("/:id", orderCtl.Delete)
		}

		// order-detail 订单明细，联合键 (foodId, orderId)
		orderDetails := api.Group("/order-details")
		{
			orderDetails.GET("/order/:orderId", detailCtl.ListByOrder)
			orderDetails.GET("/food/:foodId/order/:orderId", detailCtl.Get)
			orderDetails.POST("", detailCtl.Create)
			orderDetails.PUT("/food/:foodId/order/:orderId", detailCtl.Update)
			orderDetails.DELETE("/food/:foodId/order/:orderId", detailCtl.Delete)
		}

		// bill 账单
		bills := api.Group("/bills")
		{
			bills.GET("", billCtl.List)
			bills.GET("/:id", billCtl.Get)
			bills.GET("/order/:orderId", billCtl.ListByOrder)
			bills.POST("", billCtl.Create)
			bills.PUT("/:id", billCtl.Update)
			bills.DELETE("/:id", billCtl.Delete)
		}

		// bill-detail 账单明细，联合键 (orderId, billId)
		billDetails := api.Group("/bill-details")
		{
			billDetails.GET("/bill/:billId", billCtl.ListDetails)
			billDetails.GET("/order/:orderId/bill/:billId", billCtl.GetDetail)
			billDetails.POST("", billCtl.CreateDetail)
			billDetails.PUT("/order/:orderId/bill/:billId", billCtl.UpdateDetail)
			billDetails.DELETE("/order/:orderId/bill/:billId", billCtl.DeleteDetail)
		}
	}
}
