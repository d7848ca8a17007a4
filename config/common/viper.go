package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	config.SetDefault("APP_NAME", "chat-backend")
	config.SetDefault("SERVER_PORT", "8000")

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		// environment variables alone are fine
		log.Warnf("no .env file found: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerPort() string {
	return c.Viper.GetString("SERVER_PORT")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}
