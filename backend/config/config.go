package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Redis struct {
	Addr string
	Pass string
}

type Upload struct {
	Dir       string
	MaxSizeMB int64
}

type Config struct {
	HTTP   HTTP
	DB     DB
	Redis  Redis
	Upload Upload
	JWT    struct {
		Secret string
		Issuer string
		ExpMin int
	}
	LoginRatePerMin int
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.db.driver", "sqlite")
	v.SetDefault("server.db.path", "database/lost_and_found.db")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "lost_and_found")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.upload.dir", "uploads/items")
	v.SetDefault("server.upload.max_size_mb", 5)
	v.SetDefault("server.login_rate_per_min", 30)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	v.WatchConfig()

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Path:   v.GetString("server.db.path"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
		},
		Redis:           Redis{Addr: v.GetString("server.redis.addr"), Pass: v.GetString("server.redis.pass")},
		Upload:          Upload{Dir: v.GetString("server.upload.dir"), MaxSizeMB: v.GetInt64("server.upload.max_size_mb")},
		LoginRatePerMin: v.GetInt("server.login_rate_per_min"),
	}
	cfg.JWT.Secret = v.GetString("server.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("server.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "lost-and-found"
	}
	cfg.JWT.ExpMin = v.GetInt("server.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 24 * 60
	}
	return cfg, nil
}
