// file: main.go
package main

import (
	"cyberrange/config"
	"cyberrange/database"
	"cyberrange/routes"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	config.Load()

	database.Connect()
	database.InitRedis()

	// 禁用自动迁移，表结构由 SQL 脚本管理；需要时手动调用
	// database.MigrateTables()

	r := routes.SetupRouter()

	addr := viper.GetString("server.addr")
	log.Infof("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
