package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// LoadConfig 从 ./configs/config.yaml 与环境变量加载配置
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	// EXERCISE_MONGO_URL 这类变量可覆盖任意配置项
	v.SetEnvPrefix("EXERCISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 兼容部署平台注入的变量名
	_ = v.BindEnv("mongo.url", "MONGO_URI", "EXERCISE_MONGO_URL")
	_ = v.BindEnv("server.port", "PORT", "EXERCISE_SERVER_PORT")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.views_path", "./views")
	v.SetDefault("server.public_path", "./public")
	v.SetDefault("server.time_zone", "UTC")

	v.SetDefault("mongo.url", "")
	v.SetDefault("mongo.database", "exercise_tracker")
	v.SetDefault("mongo.collection", "exercisetrackers")
	v.SetDefault("mongo.timeout", 10)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.users_ttl", 60)

	v.SetDefault("logstash.address", "")
	v.SetDefault("logstash.index", "logstash-exercise-tracker")
	v.SetDefault("logstash.token", "")

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.sasl.enable", false)
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")
	v.SetDefault("kafka.producer.timeout", 5)
	v.SetDefault("kafka.producer.retry_max", 3)
	v.SetDefault("kafka.exercise_topic", "exercise.logged")

	v.SetDefault("logs.legacy_to_default", false)

	v.SetDefault("audit.schedule", "@daily")
	v.SetDefault("audit.timeout", 60)
}
