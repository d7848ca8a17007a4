package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"chat-backend/config/common"
	"chat-backend/config/logger"
	"chat-backend/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

// Migrate creates the schema for every record type, including the
// cascade constraints the delete semantics depend on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.ChatRoom{},
		&entity.Message{},
		&entity.Reaction{},
		&entity.Reply{},
	)
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to connect to database")
		panic("failed to connect database")
	}

	conn, err := db.DB()
	if err != nil {
		panic("failed to connect database")
	}

	if err := Migrate(db); err != nil {
		panic("failed run migration")
	}

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))
	return db
}
