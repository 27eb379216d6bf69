package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"forgekit/internal/pkg/validators"
)

// RestConfig aggregates every setting the REST application needs
type RestConfig struct {
	Environment string           `mapstructure:"environment"`
	Port        string           `mapstructure:"port" validate:"required,numeric"`
	Database    DatabaseSettings `mapstructure:"database"`
	Logger      LoggerSettings   `mapstructure:"logger"`
	Auth        AuthSettings     `mapstructure:"auth"`
	CORS        CorsSettings     `mapstructure:"cors"`
}

// InitializeRestConfig loads the REST application configuration. The YAML file
// at configPath is optional; values from an existing .env file and from process
// environment variables override it. The environment profile is applied before
// validation, so a testing run always ends up on an in-memory database.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	// Honor the `cp .env.example .env` workflow before reading the environment.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnvVars(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvironmentProfile(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("port", "8080")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "app.db")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("auth.secret", DefaultDevSecret)
	v.SetDefault("auth.access_token_ttl", "1h")
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "Authorization"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", "12h")
}

// bindEnvVars maps the flat variable names of .env.example onto config keys.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("environment", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("database.type", "DATABASE_TYPE")
	_ = v.BindEnv("database.dsn", "DATABASE_DSN")
	_ = v.BindEnv("database.name", "DATABASE_NAME")
	_ = v.BindEnv("logger.log_level", "LOG_LEVEL")
	_ = v.BindEnv("auth.secret", "SECRET_KEY")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET_KEY")
}

// applyEnvironmentProfile normalizes the environment name and applies the
// per-environment overrides. Unknown names fall back to development rather
// than failing, and the testing profile pins the database to SQLite memory.
func applyEnvironmentProfile(cfg *RestConfig) {
	switch cfg.Environment {
	case EnvDevelopment, EnvProduction, EnvTesting:
	default:
		cfg.Environment = EnvDevelopment
	}

	if cfg.Environment == EnvTesting {
		cfg.Database = DatabaseSettings{
			Type: SqliteDbType,
			DSN:  SqliteMemoryDSN,
		}
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = cfg.Auth.Secret
	}
}

// Validate checks the aggregate configuration and every settings struct
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("dsnValidation", validators.DSNValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.CORS.Validate(); err != nil {
		return err
	}

	if c.Environment == EnvProduction && c.Auth.Secret == DefaultDevSecret {
		return fmt.Errorf("refusing to start in production with the default development secret")
	}

	return nil
}
