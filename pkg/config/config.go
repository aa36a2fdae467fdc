package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Conf 全局配置，Init 之后可用
var Conf = new(AppConfig)

// AppConfig 应用配置
type AppConfig struct {
	Name string `mapstructure:"name"`
	Mode string `mapstructure:"mode"`
	Port int    `mapstructure:"port"`

	Database *DatabaseConfig `mapstructure:"database"`
	Log      *LogConfig      `mapstructure:"log"`
	Stock    *StockConfig    `mapstructure:"stock"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN             string `mapstructure:"dsn"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxAge     int    `mapstructure:"max_age"`  // 天
	MaxBackups int    `mapstructure:"max_backups"`
}

// StockConfig 库存巡检配置
type StockConfig struct {
	Threshold int    `mapstructure:"threshold"`
	CronSpec  string `mapstructure:"cron_spec"`
}

// Init 加载配置文件，环境变量 RESTO_ 前缀可覆盖同名项
func Init(path string) error {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("RESTO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 缺省值，本地起服务不带配置文件也能跑
	viper.SetDefault("name", "resto")
	viper.SetDefault("mode", "dev")
	viper.SetDefault("port", 8080)
	viper.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=resto port=5432 sslmode=disable")
	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.conn_max_lifetime", 3600)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.filename", "logs/resto.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_age", 30)
	viper.SetDefault("log.max_backups", 7)
	viper.SetDefault("stock.threshold", 10)
	viper.SetDefault("stock.cron_spec", "0 0/30 * * * *")

	if err := viper.ReadInConfig(); err != nil {
		// 配置文件可以不存在，全走缺省值和环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return err
		}
	}
	return viper.Unmarshal(Conf)
}
