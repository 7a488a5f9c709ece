package config

import (
	"fmt"
	"os"
	"time"

	"github.com/LaryssaGabi/StudyFlow/pkg/validator"
	"github.com/spf13/viper"
)

const (
	DriverPostgres     = "postgres"
	DriverSQLite       = "sqlite"
	DriverGormPostgres = "gorm-postgres"
)

type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Env    string       `mapstructure:"env" validate:"oneof=development production staging"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Bot    BotConfig    `mapstructure:"bot"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Review ReviewConfig `mapstructure:"review"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type StoreConfig struct {
	Driver string       `mapstructure:"driver" validate:"oneof=postgres sqlite gorm-postgres"`
	DB     DBConfig     `mapstructure:"db" validate:"-"`
	SQLite SQLiteConfig `mapstructure:"sqlite" validate:"-"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type BotConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token" validate:"required_if=Enabled true"`
}

type HTTPConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	Addr           string   `mapstructure:"addr" validate:"required_if=Enabled true"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	JWTSecret      string   `mapstructure:"jwt_secret" validate:"required_if=Enabled true"`
}

type ReviewConfig struct {
	MasteryThreshold  int  `mapstructure:"mastery_threshold" validate:"min=1"`
	KeepMasteryOnMiss bool `mapstructure:"keep_mastery_on_miss"`
}

func Init() (*Config, error) {
	v := viper.New()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.AutomaticEnv()

	bindings := map[string]string{
		"env":                    "APP_ENV",
		"store.driver":           "STORE_DRIVER",
		"store.db.conn.host":     "DB_HOST",
		"store.db.conn.port":     "DB_PORT",
		"store.db.conn.user":     "DB_USER",
		"store.db.conn.password": "DB_PASSWORD",
		"store.db.conn.name":     "DB_NAME",
		"store.db.conn.ssl":      "DB_SSL",
		"store.sqlite.path":      "SQLITE_PATH",
		"bot.token":              "BOT_TOKEN",
		"http.addr":              "HTTP_ADDR",
		"http.jwt_secret":        "JWT_SECRET",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	// only the settings of the selected driver are required
	var err error
	if cfg.Store.Driver == DriverSQLite {
		err = validator.ValidateStruct(cfg.Store.SQLite)
	} else {
		err = validator.ValidateStruct(cfg.Store.DB)
	}
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", cfg.Store.Driver, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("store.driver", DriverPostgres)
	v.SetDefault("store.db.conn.ssl", "disable")
	v.SetDefault("store.db.cfg.max_open_conns", 10)
	v.SetDefault("store.db.cfg.max_idle_conns", 5)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("review.mastery_threshold", 3)
	v.SetDefault("review.keep_mastery_on_miss", false)
}
