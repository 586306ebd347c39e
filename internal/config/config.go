package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort string

	NewsBaseURL         string
	NewsUserAgent       string
	NewsTimeout         time.Duration
	NewsDefaultCount    int
	NewsDefaultCategory string

	CronSpec string

	BasicAuthUser string
	BasicAuthPass string

	LogLevel  string
	LogFormat string
}

// Load 读取环境变量（可选 .env 文件），未设置的项使用默认值
func Load() *Config {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		AppPort:             v.GetString("APP_PORT"),
		NewsBaseURL:         v.GetString("NEWS_BASE_URL"),
		NewsUserAgent:       v.GetString("NEWS_USER_AGENT"),
		NewsTimeout:         v.GetDuration("NEWS_TIMEOUT"),
		NewsDefaultCount:    v.GetInt("NEWS_DEFAULT_COUNT"),
		NewsDefaultCategory: v.GetString("NEWS_DEFAULT_CATEGORY"),
		CronSpec:            v.GetString("CRON_SPEC"),
		BasicAuthUser:       v.GetString("APP_BASIC_USER"),
		BasicAuthPass:       v.GetString("APP_BASIC_PASS"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "9000")
	v.SetDefault("NEWS_BASE_URL", "https://news.baidu.com")
	// 为空时由 collector 使用内置的浏览器 UA
	v.SetDefault("NEWS_USER_AGENT", "")
	v.SetDefault("NEWS_TIMEOUT", 10*time.Second)
	v.SetDefault("NEWS_DEFAULT_COUNT", 10)
	v.SetDefault("NEWS_DEFAULT_CATEGORY", "综合")
	v.SetDefault("CRON_SPEC", "*/30 * * * *")
	v.SetDefault("APP_BASIC_USER", "")
	v.SetDefault("APP_BASIC_PASS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}
