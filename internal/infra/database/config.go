package database

import (
	"fmt"

	"census-etl/pkg/resource"
)

// Config holds the warehouse connection settings.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
	SSLMode  string
}

// ConfigFromProperties reads the app.db.* properties.
func ConfigFromProperties() Config {
	return Config{
		Host:     resource.GetString("app.db.host"),
		Port:     resource.GetString("app.db.port"),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetString("app.db.schema"),
		SSLMode:  resource.GetString("app.db.ssl-mode"),
	}
}

// DSN renders the libpq key/value connection string.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, sslMode)
	if c.Schema != "" {
		dsn += " search_path=" + c.Schema
	}
	return dsn
}
