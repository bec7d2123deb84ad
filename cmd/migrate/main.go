package main

import (
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/dsn"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()
	rep, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	defer rep.Close()

	// Migrate the schema
	if err := rep.AutoMigrate(); err != nil {
		logrus.Fatalf("cant migrate db: %v", err)
	}
	logrus.Info("schema migrated")
}
