package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"hotel-ops-backend/utils"
)

// Store drivers
const (
	DriverFile   = "file"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Port        string
	StoreDriver string

	// file driver
	DataDir string

	// mysql driver
	MySQLDSN string

	// redis driver
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          utils.EnvOrDefault("PORT", "8080"),
		StoreDriver:   strings.ToLower(utils.EnvOrDefault("STORE_DRIVER", DriverFile)),
		DataDir:       utils.EnvOrDefault("DATA_DIR", "./data"),
		RedisAddr:     utils.EnvOrDefault("REDIS_URL", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	switch cfg.StoreDriver {
	case DriverFile, DriverRedis, DriverMemory:
	case DriverMySQL:
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		cfg.MySQLDSN = dsn
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_ops")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}
