package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	RateLimit    RateLimit    `mapstructure:",squash"`
	PostDispatch PostDispatch `mapstructure:",squash"`
	CacheJanitor CacheJanitor `mapstructure:",squash"`
	Insights     Insights     `mapstructure:",squash"`
	Scheduling   Scheduling   `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type RateLimit struct {
	Enabled  bool          `mapstructure:"rate_limit_enabled"`
	Requests int           `mapstructure:"rate_limit_requests"`
	Window   time.Duration `mapstructure:"rate_limit_window"`
}

type PostDispatch struct {
	CronSchedule string `mapstructure:"post_dispatch_cron"`
	Enabled      bool   `mapstructure:"post_dispatch_enabled"`
}

type CacheJanitor struct {
	CronSchedule string `mapstructure:"cache_janitor_cron"`
	Enabled      bool   `mapstructure:"cache_janitor_enabled"`
}

type Insights struct {
	CacheTTL time.Duration `mapstructure:"insights_cache_ttl"`
}

type Scheduling struct {
	RandomSeed      int64  `mapstructure:"random_seed"` // 0 usa o relógio
	DefaultTimezone string `mapstructure:"default_timezone"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "info")

	// 100 requisições por hora por cliente
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1h")

	viper.SetDefault("POST_DISPATCH_CRON", "*/1 * * * *") // A cada minuto
	viper.SetDefault("POST_DISPATCH_ENABLED", true)

	viper.SetDefault("CACHE_JANITOR_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CACHE_JANITOR_ENABLED", true)

	viper.SetDefault("INSIGHTS_CACHE_TTL", "15m")

	viper.SetDefault("RANDOM_SEED", 0)
	viper.SetDefault("DEFAULT_TIMEZONE", "UTC")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

// normalize corrige valores que invalidariam os componentes
func (c *Config) normalize() {
	origins := make([]string, 0, len(c.Server.CORSAllowedOrigins))
	for _, origin := range c.Server.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.CORSAllowedOrigins = origins

	if c.RateLimit.Requests <= 0 {
		logrus.WithField("rate_limit_requests", c.RateLimit.Requests).Warn("RATE_LIMIT_REQUESTS inválido, usando 100")
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = time.Hour
	}

	if c.Insights.CacheTTL <= 0 {
		c.Insights.CacheTTL = 15 * time.Minute
	}

	if _, err := time.LoadLocation(c.Scheduling.DefaultTimezone); err != nil || c.Scheduling.DefaultTimezone == "" {
		logrus.WithField("timezone", c.Scheduling.DefaultTimezone).Warn("DEFAULT_TIMEZONE inválido, usando UTC")
		c.Scheduling.DefaultTimezone = "UTC"
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
