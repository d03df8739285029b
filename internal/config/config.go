package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of database.driver
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Port     string         `mapstructure:"port"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	S3       S3Config       `mapstructure:"s3"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URI    string `mapstructure:"uri"`
	Name   string `mapstructure:"name"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// Enabled reports whether log exports to object storage are configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// ListenAddress returns the address the HTTP server binds to.
// A bare PORT (as set by most hosting platforms) wins over server.address.
func (c Config) ListenAddress() string {
	if c.Port != "" {
		return ":" + strings.TrimPrefix(c.Port, ":")
	}
	return c.Server.Address
}

// LoadConfig reads configuration from <path>/.env, <path>/config.yaml and
// environment variables, in increasing order of precedence.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, err
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	// MONGOOSE_KEY is the connection string name used by existing deployments
	if err = v.BindEnv("database.uri", "DATABASE_URI", "MONGOOSE_KEY"); err != nil {
		return config, err
	}
	if err = v.BindEnv("port", "PORT"); err != nil {
		return config, err
	}

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return config, err
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, err
	}

	if err = config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3000")
	v.SetDefault("port", "")
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_tracker")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.presign_expiry", "15m")
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" {
			return errors.New("database.uri is required for the mongo driver")
		}
	case DriverMemory:
	default:
		return errors.New("database.driver must be one of: mongo, memory")
	}
	if c.ListenAddress() == "" {
		return errors.New("server.address or PORT is required")
	}
	return nil
}
