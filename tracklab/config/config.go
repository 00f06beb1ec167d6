package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/database"
	"github.com/Astemirdum/tracklab-service/pkg/kafka"
	"github.com/Astemirdum/tracklab-service/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `envconfig:"TRACKLAB_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"TRACKLAB_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Scheduler struct {
	OverdueScan string `envconfig:"OVERDUE_SCAN" default:"@every 1h"`
}

type Config struct {
	Server    HTTPServer
	Database  database.DB
	Kafka     kafka.Config
	Auth      auth.Config
	Scheduler Scheduler
	Log       logger.Log
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	redacted := *cfg
	redacted.Database.Password = "***"
	redacted.Auth.Secret = "***"
	redacted.Auth.AdminPassword = "***"
	jscfg, _ := json.MarshalIndent(redacted, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
