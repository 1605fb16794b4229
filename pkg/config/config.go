package config

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	location *time.Location
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		tz := os.Getenv("REFERENCE_TIMEZONE")
		if tz == "" {
			tz = "UTC"
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatal("loading reference timezone error: ", err)
		}
		instance = &Config{
			location: loc,
		}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// Location is the reference timezone used for calendar day boundaries platform-wide
func (c *Config) Location() *time.Location {
	return c.location
}
