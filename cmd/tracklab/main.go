package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/database"
	"github.com/Astemirdum/tracklab-service/tracklab/app"
	"github.com/Astemirdum/tracklab-service/tracklab/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithDatabaseDriver(database.DriverPostgres),
	)

	app.Run(cfg)
}
