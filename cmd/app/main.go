package main

import (
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/config"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/dsn"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/handler"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/middleware"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/pkg/auth"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/repository"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/service"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.ConfigureLogger()

	rep, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer rep.Close()

	redisClient, err := auth.NewRedisClient(conf.Redis.Host, conf.Redis.Port, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		logrus.Fatalf("error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	jwtService := auth.NewJWTService(conf.JWT.Secret, conf.JWT.TTL, auth.NewRevocations(redisClient))
	receiver := service.NewReceiverService(rep, rep, jwtService, logrus.StandardLogger())
	hand := handler.NewHandler(receiver, rep)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logrus.StandardLogger()))
	router.Use(middleware.CORS(conf.CORS.AllowOrigins))

	application := pkg.NewApp(conf, router, hand)
	if err := application.RunApp(); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}
