package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

const DefaultPath = "config/config.dev.json"

type Config struct {
	AppConfig  AppConfig  `env:"APPCONFIG"`
	DBConfig   DBConfig   `env:"DBCONFIG"`
	AuthConfig AuthConfig `env:"AUTHCONFIG"`
	SeedConfig SeedConfig `env:"SEEDCONFIG"`
}

type AppConfig struct {
	APPName     string `default:"ecochat"`
	Version     string `default:"x.x.x" env:"VERSION"`
	Port        int    `default:"5000" env:"APP_PORT"`
	LogLevel    string `default:"info" env:"LOG_LEVEL"`
	LogFormat   string `default:"json" env:"LOG_FORMAT"`
	CORSOrigins string `default:"http://localhost:*" env:"CORS_ORIGINS"` // comma separated
}

func (c AppConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

type DBConfig struct {
	Driver      string `default:"postgres" env:"DBDRIVER"`
	Host        string `default:"localhost" env:"DBHOST"`
	DataBase    string `default:"ecochat" env:"DBNAME"`
	User        string `default:"postgres" env:"DBUSERNAME"`
	Password    string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port        uint   `default:"5432" env:"DBPORT"`
	SSLMode     string `default:"disable" env:"DBSSL"`
	SQLitePath  string `default:"ecochat.db" env:"DBSQLITEPATH"`
	AutoMigrate bool   `default:"false" env:"DBAUTOMIGRATE"`
}

// DSN returns the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DataBase, c.Port, c.SSLMode)
}

// MigrationURL is the URL form golang-migrate expects.
func (c DBConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DataBase, c.SSLMode)
}

type AuthConfig struct {
	// No default. serve refuses secrets shorter than app.MinJWTSecretLength.
	JWTSecret         string `env:"JWT_SECRET"`
	AccessTokenTTLSec int    `default:"86400" env:"JWT_ACCESS_DURATION"` // seconds
	BcryptCost        int    `default:"10" env:"BCRYPT_COST"`
}

func (c AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSec) * time.Second
}

type SeedConfig struct {
	SeedCatalog     bool   `default:"true" env:"SEED_CATALOG"`
	DefaultEmail    string `default:"teste@eco.com" env:"SEED_USER_EMAIL"`
	DefaultPassword string `default:"123456" env:"SEED_USER_PASSWORD"`
	DefaultName     string `default:"Usuário Teste" env:"SEED_USER_NAME"`
}

// Load reads .env (if any) and then the given config files. Missing files are ignored.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load()

	if len(files) == 0 {
		files = []string{DefaultPath}
	}

	var cfg = Config{}
	if err := configor.New(&configor.Config{Silent: true}).Load(&cfg, files...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func LoadConfigOrPanic(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(err)
	}
	return cfg
}
