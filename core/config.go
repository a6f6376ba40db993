package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug        bool
		TestMode     bool
		Env          string
		AppName      string
		Build        string
		SecretKey    string
		RollbarToken string

		Server   ServerConfig
		Database DatabaseConfig
		Workout  WorkoutConfig
	}

	ServerConfig struct {
		Host               string
		Port               string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		Host          string
		Port          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	WorkoutConfig struct {
		// HintPenalty is the score deduction applied per hint used on a
		// correct answer. The awarded score never goes below 0.
		HintPenalty int
		// RecentActivityLimit caps the recent-activity feed returned with
		// a learner's progress summary.
		RecentActivityLimit int
	}
)

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

var Conf *Config

func init() {
	Conf = newConfig()
}

func newConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Mazoezi")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "w3!rd-k3y-ch4ng3-m3-1n-pr0d")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "")
	conf.SetDefault("server.port", "8000")
	conf.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("database.engine", "postgres")
	conf.SetDefault("database.name", "mazoezi")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", "5432")
	conf.SetDefault("database.user", "")
	conf.SetDefault("database.password", "")
	conf.SetDefault("database.adminUser", "")
	conf.SetDefault("database.adminPassword", "")
	conf.SetDefault("database.disableTLS", true)
	conf.SetDefault("workout.hintPenalty", 10)
	conf.SetDefault("workout.recentActivityLimit", 10)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	c := new(Config)
	if err := conf.Unmarshal(c); err != nil {
		log.Fatalf("config.Unmarshal: %v", err)
	}
	c.Env = env
	return c
}
