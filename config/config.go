package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	// secrets never live in the config file
	if c.JWTSecret = os.Getenv("JWT_SECRET"); c.JWTSecret == "" {
		if c.Sandbox {
			c.JWTSecret = "sandbox-signing-key"
		} else {
			return nil, ErrMissingSecret
		}
	}

	if c.Bucket.User == "" || c.Bucket.Login == "" || c.Bucket.Campaign == "" || c.Bucket.CampaignName == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	Sandbox bool `json:"sandbox"`

	JWTSecret string `json:"-"`

	Bucket struct {
		User         string   `json:"user"`
		Login        string   `json:"login"`
		Campaign     string   `json:"campaign"`
		CampaignName string   `json:"campaignName"`
		All          []string `json:"all"`
	} `json:"bucket"`
}

// AllBuckets returns every bucket the server needs at boot, including the
// index bucket used for auto-increment ids.
func (c *Config) AllBuckets() []string {
	if len(c.Bucket.All) != 0 {
		return c.Bucket.All
	}
	return []string{"index", c.Bucket.User, c.Bucket.Login, c.Bucket.Campaign, c.Bucket.CampaignName}
}
