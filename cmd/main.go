package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/controller"
	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
	"resto_dev_v1_202608/internal/router"
	"resto_dev_v1_202608/internal/service"
	"resto_dev_v1_202608/internal/task"
	"resto_dev_v1_202608/pkg/config"
	"resto_dev_v1_202608/pkg/database"
	"resto_dev_v1_202608/pkg/logger"
)

func main() {
	var cfn string
	flag.StringVar(&cfn, "conf", "./conf/config.yaml", "指定配置文件路径")
	flag.Parse()

	// 1. 加载配置
	if err := config.Init(cfn); err != nil {
		panic(err)
	}

	// 2. 加载日志
	if err := logger.Init(config.Conf.Log, config.Conf.Mode); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	// 3. 初始化数据库
	db := initDatabase()

	// 4. 初始化依赖
	deps := initDependencies(db)

	// 5. 启动定时任务
	initTasks(deps)

	// 6. 初始化路由
	if config.Conf.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.InitRoutes(r,
		deps.Controllers.Category,
		deps.Controllers.Food,
		deps.Controllers.Ingredient,
		deps.Controllers.Recipe,
		deps.Controllers.Table,
		deps.Controllers.User,
		deps.Controllers.Order,
		deps.Controllers.OrderDetail,
		deps.Controllers.Bill,
	)

	// 7. 启动服务
	startServer(r, deps)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *Controllers
	StockTask   *task.StockMonitor
}

// Repositories 仓库集合
type Repositories struct {
	Category    repository.CategoryRepository
	Food        repository.FoodRepository
	Ingredient  repository.IngredientRepository
	Recipe      repository.RecipeRepository
	Table       repository.TableRepository
	User        repository.UserRepository
	Order       repository.OrderRepository
	OrderDetail repository.OrderDetailRepository
	Bill        repository.BillRepository
	BillDetail  repository.BillDetailRepository
}

// Services 服务集合
type Services struct {
	Category    *service.CategoryService
	Food        *service.FoodService
	Ingredient  *service.IngredientService
	Recipe      *service.RecipeService
	Table       *service.TableService
	User        *service.UserService
	Order       *service.OrderService
	OrderDetail *service.OrderDetailService
	Bill        *service.BillService
	BillDetail  *service.BillDetailService
}

// Controllers 控制器集合
type Controllers struct {
	Category    *controller.CategoryController
	Food        *controller.FoodController
	Ingredient  *controller.IngredientController
	Recipe      *controller.RecipeController
	Table       *controller.TableController
	User        *controller.UserController
	Order       *controller.OrderController
	OrderDetail *controller.OrderDetailController
	Bill        *controller.BillController
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库并自动建表
func initDatabase() *gorm.DB {
	db, err := database.InitDB(config.Conf.Database,
		&model.Category{}, &model.FoodInfo{},
		&model.Ingredient{}, &model.Recipe{}, &model.RecipeDetail{},
		&model.Table{}, &model.User{},
		&model.Order{}, &model.OrderDetail{},
		&model.Bill{}, &model.BillDetail{},
	)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	repos := initRepositories(db)

	services := &Services{
		Category:    service.NewCategoryService(repos.Category),
		Food:        service.NewFoodService(repos.Food),
		Ingredient:  service.NewIngredientService(repos.Ingredient),
		Recipe:      service.NewRecipeService(repos.Recipe),
		Table:       service.NewTableService(repos.Table),
		User:        service.NewUserService(repos.User),
		Order:       service.NewOrderService(repos.Order),
		OrderDetail: service.NewOrderDetailService(repos.OrderDetail, repos.Order),
		Bill:        service.NewBillService(repos.Bill),
		BillDetail:  service.NewBillDetailService(repos.BillDetail, repos.Bill),
	}

	controllers := &Controllers{
		Category:    controller.NewCategoryController(services.Category),
		Food:        controller.NewFoodController(services.Food),
		Ingredient:  controller.NewIngredientController(services.Ingredient),
		Recipe:      controller.NewRecipeController(services.Recipe),
		Table:       controller.NewTableController(services.Table),
		User:        controller.NewUserController(services.User),
		Order:       controller.NewOrderController(services.Order),
		OrderDetail: controller.NewOrderDetailController(services.OrderDetail),
		Bill:        controller.NewBillController(services.Bill, services.BillDetail),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Category:    repository.NewCategoryRepository(db),
		Food:        repository.NewFoodRepository(db),
		Ingredient:  repository.NewIngredientRepository(db),
		Recipe:      repository.NewRecipeRepository(db),
		Table:       repository.NewTableRepository(db),
		User:        repository.NewUserRepository(db),
		Order:       repository.NewOrderRepository(db),
		OrderDetail: repository.NewOrderDetailRepository(db),
		Bill:        repository.NewBillRepository(db),
		BillDetail:  repository.NewBillDetailRepository(db),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	stockMonitor := task.NewStockMonitor(
		deps.Services.Ingredient,
		config.Conf.Stock.CronSpec,
		config.Conf.Stock.Threshold,
	)
	if err := stockMonitor.Start(); err != nil {
		zap.L().Fatal("库存巡检任务启动失败", zap.Error(err))
	}
	deps.StockTask = stockMonitor
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, deps *Dependencies) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Conf.Port),
		Handler: r,
	}

	// 异步启动服务
	go func() {
		zap.L().Info("服务启动", zap.Int("port", config.Conf.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("正在关闭服务...")

	// 先停定时任务，等在途巡检跑完
	if deps.StockTask != nil {
		deps.StockTask.Stop()
	}

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("服务强制关闭", zap.Error(err))
	}

	zap.L().Info("服务已退出")
}
