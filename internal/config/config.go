package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type App struct {
	ConnectionString      string        `env:"CONNECTION_STRING,required" validate:"required"`
	DBName                string        `env:"DB_NAME" envDefault:"pollingpairDB" validate:"required"`
	Port                  string        `env:"API_PORT" envDefault:"8000" validate:"numeric"`
	LogLevel              string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	PasswordHashAlgorithm string        `env:"PASSWORD_HASH_ALGORITHM" envDefault:"argon2id" validate:"oneof=argon2id bcrypt"`
	SubmitFirstAnswerOnly bool          `env:"SUBMIT_FIRST_ANSWER_ONLY" envDefault:"false"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	StoreConnectTimeout   time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// NewApp reads the configuration from the environment, after loading the
// .env file of the working directory when there is one.
func NewApp() (App, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	var app App
	if err = env.Parse(&app); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	if err = validator.New().Struct(app); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}
