// file: config/config.go
package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Load 初始化全局配置
// 优先级：环境变量 > 工作目录下的 config.yaml > 默认值
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("mysql.dsn", "root:123456@tcp(localhost:3306)/cyberrange?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "change-me-in-config-yaml")
	viper.SetDefault("jwt.expire_hours", 168)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn("config.yaml not found, using defaults and environment variables")
		} else {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	if level, err := log.ParseLevel(viper.GetString("log.level")); err == nil {
		log.SetLevel(level)
	}
}
