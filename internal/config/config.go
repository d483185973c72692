// Package config loads process configuration from the environment.
//
// Values come from the process environment, optionally seeded from .env
// files. Existing environment variables always win over file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ia4it/landing/internal/client"
	"github.com/ia4it/landing/pkg/logger"
	"github.com/ia4it/landing/pkg/mailer"
	"github.com/ia4it/landing/pkg/mailer/postmark"
	"github.com/ia4it/landing/pkg/mailer/resend"
)

var (
	// ErrParsingConfig wraps failures decoding environment variables.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrLoadingEnv wraps failures reading a .env file.
	ErrLoadingEnv    = errors.New("failed to load env file")
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer    = errors.New("nil pointer provided to config loader")
)

// Server configures cmd/server.
type Server struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Logger   logger.Config
	Mailer   mailer.Config
	Resend   resend.Config
	Postmark postmark.Config
}

// CLI configures cmd/contact.
type CLI struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Client   client.Config
}

// Load fills v from the environment. With no files it reads ./.env when
// present; explicitly named files must exist.
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnv, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
