package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Matcher  MatcherConfig
	Search   SearchConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// QuestionsPath is the JSON question database.
	QuestionsPath string
	// HistoryPath is the SQLite file holding lookup history.
	HistoryPath string
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
}

type MatcherConfig struct {
	// Threshold is the minimum fuzzy similarity for a confident
	// company match.
	Threshold float64
}

type SearchConfig struct {
	// Enabled turns the supplementary question provider on.
	Enabled bool
	// MaxResults bounds how many supplementary questions are
	// merged into a result.
	MaxResults int
	// CacheTTL is how long supplementary results stay cached.
	CacheTTL time.Duration
	// DefaultRole seeds the templated questions when the caller
	// does not say what role is being interviewed for.
	DefaultRole string
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.questions_path", "data/questions.json")
	viper.SetDefault("database.history_path", "data/history.db")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("matcher.threshold", 0.7)
	viper.SetDefault("search.enabled", true)
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.cache_ttl", 168) // hours; seven days
	viper.SetDefault("search.default_role", "automation tester")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults plus env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Database: DatabaseConfig{
			QuestionsPath: viper.GetString("database.questions_path"),
			HistoryPath:   viper.GetString("database.history_path"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Matcher: MatcherConfig{
			Threshold: viper.GetFloat64("matcher.threshold"),
		},
		Search: SearchConfig{
			Enabled:     viper.GetBool("search.enabled"),
			MaxResults:  viper.GetInt("search.max_results"),
			CacheTTL:    viper.GetDuration("search.cache_ttl") * time.Hour,
			DefaultRole: viper.GetString("search.default_role"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	return config, nil
}
