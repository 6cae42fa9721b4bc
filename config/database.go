package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// localHosts are the hosts we allow plaintext connections to. Any other
// target gets tls=true forced onto the DSN.
var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"::1":       true,
}

// NormalizeDatabaseURL turns a DATABASE_URL value into a canonical MySQL
// driver DSN. Both mysql:// URLs and raw driver DSNs are accepted.
// parseTime is always enforced, and tls=true is enforced when the target
// host is not local.
func NormalizeDatabaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty database url")
	}

	var userinfo, host, dbname string
	params := url.Values{}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("invalid database url: %w", err)
		}
		if u.Scheme != "mysql" {
			return "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
		}
		if u.User != nil {
			userinfo = u.User.String()
		}
		host = u.Host
		dbname = strings.TrimPrefix(u.Path, "/")
		params = u.Query()
	} else {
		// Raw driver DSN: user:pass@tcp(host:port)/dbname?params
		rest := raw
		if at := strings.LastIndex(rest, "@"); at >= 0 {
			userinfo = rest[:at]
			rest = rest[at+1:]
		}
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "", fmt.Errorf("invalid dsn %q: missing database name", raw)
		}
		host = rest[:slash]
		host = strings.TrimPrefix(host, "tcp(")
		host = strings.TrimSuffix(host, ")")
		dbname = rest[slash+1:]
		if q := strings.Index(dbname, "?"); q >= 0 {
			parsed, err := url.ParseQuery(dbname[q+1:])
			if err != nil {
				return "", fmt.Errorf("invalid dsn params: %w", err)
			}
			params = parsed
			dbname = dbname[:q]
		}
	}

	if host == "" {
		host = "127.0.0.1:3306"
	}
	if !strings.Contains(host, ":") {
		host += ":3306"
	}
	if dbname == "" {
		return "", fmt.Errorf("database name missing from %q", raw)
	}

	params.Set("parseTime", "True")
	if params.Get("charset") == "" {
		params.Set("charset", "utf8mb4")
	}

	bareHost := host
	if i := strings.LastIndex(bareHost, ":"); i >= 0 {
		bareHost = bareHost[:i]
	}
	if !localHosts[strings.ToLower(bareHost)] && params.Get("tls") == "" {
		params.Set("tls", "true")
	}

	dsn := fmt.Sprintf("tcp(%s)/%s?%s", host, dbname, params.Encode())
	if userinfo != "" {
		dsn = userinfo + "@" + dsn
	}
	return dsn, nil
}

// databaseDSN resolves the connection string from the environment. DATABASE_URL
// wins; otherwise the DSN is assembled from the individual DB_* variables with
// local defaults.
func databaseDSN() (string, error) {
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		return NormalizeDatabaseURL(raw)
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbDatabase := os.Getenv("DB_DATABASE")
	if dbDatabase == "" {
		dbDatabase = "inspections"
	}
	dbUsername := os.Getenv("DB_USERNAME")
	if dbUsername == "" {
		dbUsername = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	raw := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUsername, dbPassword, dbHost, dbPort, dbDatabase)
	return NormalizeDatabaseURL(raw)
}

func InitDB() {
	dsn, err := databaseDSN()
	if err != nil {
		log.Fatal("Invalid database configuration:", err)
	}

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	config := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	DB, err = gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connected successfully")
}
