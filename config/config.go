package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment   string
	ServicePort   string
	MetricsPort   string
	MongoDBConfig MongoDBConfig
	JWTSecret     string
	KafkaConfig   KafkaConfig
	SMTPConfig    SMTPConfig
	WeatherConfig WeatherConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type WeatherConfig struct {
	GeocodingHost string
	ForecastHost  string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment: os.Getenv("ENVIRONMENT"),
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGO_URI"),
			DBName: os.Getenv("MONGO_DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		WeatherConfig: WeatherConfig{
			GeocodingHost: os.Getenv("GEOCODING_HOST"),
			ForecastHost:  os.Getenv("FORECAST_HOST"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "5000"
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "travelmate"
	}

	if conf.WeatherConfig.GeocodingHost == "" {
		conf.WeatherConfig.GeocodingHost = "https://geocoding-api.open-meteo.com"
	}

	if conf.WeatherConfig.ForecastHost == "" {
		conf.WeatherConfig.ForecastHost = "https://api.open-meteo.com"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}
