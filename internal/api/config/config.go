package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Logs     LogsConfig     `mapstructure:"logs"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port       int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	ViewsPath  string `mapstructure:"views_path"`
	PublicPath string `mapstructure:"public_path"`
	TimeZone   string `mapstructure:"time_zone"`
}

// MongoConfig MongoDB配置，URL 即连接串
type MongoConfig struct {
	URL        string `mapstructure:"url" validate:"required"`
	Database   string `mapstructure:"database" validate:"required"`
	Collection string `mapstructure:"collection" validate:"required"`
	Timeout    int    `mapstructure:"timeout"`
}

// RedisConfig Addr 为空时不启用缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	UsersTTL int    `mapstructure:"users_ttl"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// KafkaConfig Brokers 为空时不发布运动事件
type KafkaConfig struct {
	Brokers       []string       `mapstructure:"brokers"`
	Sasl          SaslConfig     `mapstructure:"sasl"`
	Producer      ProducerConfig `mapstructure:"producer"`
	ExerciseTopic string         `mapstructure:"exercise_topic"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ProducerConfig struct {
	Timeout  int `mapstructure:"timeout"`
	RetryMax int `mapstructure:"retry_max"`
}

// LogsConfig 日志查询配置
type LogsConfig struct {
	// LegacyToDefault 为 true 时，缺省的 to 按 1970-01-01 处理（只给 from 时结果为空）
	LegacyToDefault bool `mapstructure:"legacy_to_default"`
}

// AuditConfig 计数巡检任务，Schedule 为空时不注册
type AuditConfig struct {
	Schedule string `mapstructure:"schedule"`
	Timeout  int    `mapstructure:"timeout"`
}
