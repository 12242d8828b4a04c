package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	Dsn       string `env:"DSN"`
	JwtSecret string `env:"JWT_SECRET"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Matching tunables. Score = base + weight * overlap ratio, clamped
	// to [0, 100].
	ScoreBase   float64 `env:"SCORE_BASE" envDefault:"10"`
	ScoreWeight float64 `env:"SCORE_WEIGHT" envDefault:"90"`

	DefaultMaxDistanceKm float64 `env:"DEFAULT_MAX_DISTANCE_KM" envDefault:"50"`
	DiscoveryPageSize    int     `env:"DISCOVERY_PAGE_SIZE" envDefault:"20"`

	// ResurfacePassed controls whether profiles the user passed on can
	// reappear in discovery. Off by default.
	ResurfacePassed bool `env:"DISCOVERY_RESURFACE_PASSED" envDefault:"false"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
