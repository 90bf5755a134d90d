package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"gin-i18n/pkg/logging"
)

// EnvPrefix 环境变量前缀，例如 I18N_SERVER_ADDR 覆盖 server.addr
const EnvPrefix = "I18N"

type Config struct {
	Server ServerConfig    `mapstructure:"server"`
	Log    logging.Options `mapstructure:"log"`
	DB     DBConfig        `mapstructure:"db"`
	Redis  RedisConfig     `mapstructure:"redis"`
	I18n   I18nConfig      `mapstructure:"i18n"`
	Jobs   JobsConfig      `mapstructure:"jobs"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	Templates       string        `mapstructure:"templates" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn" validate:"required"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr" validate:"required,hostname_port"`
	Password    string        `mapstructure:"password"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"gte=0"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// I18nConfig 插件与路径前缀中间件配置
type I18nConfig struct {
	Domain    string `mapstructure:"domain" validate:"required"`
	LocaleDir string `mapstructure:"locale_dir" validate:"required"`
	Default   string `mapstructure:"default" validate:"required"`
	LangCode  string `mapstructure:"lang_code"`
	Keyword   string `mapstructure:"keyword"`
	// Redirect 对无语言前缀的请求返回 302
	Redirect bool `mapstructure:"redirect"`
	// Negotiate 无语言前缀时按 Accept-Language 协商，而不是固定为默认语言
	Negotiate bool     `mapstructure:"negotiate"`
	External  []string `mapstructure:"external_keys"`
}

type JobsConfig struct {
	FlushMissing  string `mapstructure:"flush_missing" validate:"required"`
	RescanLocales string `mapstructure:"rescan_locales"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.templates", "templates")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "logs/i18n.log")
	v.SetDefault("log.console", true)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.max_idle", 10)
	v.SetDefault("redis.idle_timeout", 240*time.Second)

	v.SetDefault("i18n.domain", "messages")
	v.SetDefault("i18n.locale_dir", "locale")
	v.SetDefault("i18n.default", "en")
	v.SetDefault("i18n.keyword", "i18n")

	v.SetDefault("jobs.flush_missing", "*/10 * * * *")
	v.SetDefault("jobs.rescan_locales", "@every 1m")
}

// Load 读取配置文件（path 为空时在当前目录查找 config.yaml），并应用 I18N_* 环境变量覆盖
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
