// file: database/connect.go
package database

import (
	"cyberrange/models"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	dsn := viper.GetString("mysql.dsn")
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB: ", err)
	}

	// 连接池配置，ConnMaxLifetime 用于规避 MySQL 的 wait_timeout 断连
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Database connection successfully established and connection pool configured.")
}

// MigrateTables 自动迁移（生产环境默认禁用，表结构由 SQL 脚本管理）
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Scenario{},
		&models.ScenarioPhase{},
		&models.ScenarioFlag{},
		&models.ScenarioMilestone{},
		&models.ActiveScenario{},
		&models.ActiveParticipant{},
		&models.ParticipantItem{},
		&models.ScoreAdjustment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Info("Database migration completed.")
}
