package main

import (
	"context"
	"fmt"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/config"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/dsn"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/pkg/auth"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	defer rep.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("hash password: %v", err)
	}

	users := []ds.User{
		{Email: "receiver@example.com", Role: ds.RoleReceiver, BloodGroup: "B+"},
		{Email: "donor.opos@example.com", Role: ds.RoleDonor, BloodGroup: "O+"},
		{Email: "donor.aneg@example.com", Role: ds.RoleDonor, BloodGroup: "A-"},
		{Email: "donor.bpos@example.com", Role: ds.RoleDonor, BloodGroup: "B+"},
		{Email: "admin@example.com", Role: ds.RoleAdmin},
	}

	ctx := context.Background()
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := rep.UpsertUser(ctx, &users[i]); err != nil {
			logrus.Fatalf("seed user %s: %v", users[i].Email, err)
		}
		fmt.Printf("Создан пользователь: %s (%s)\n", users[i].Email, users[i].Role)
	}

	// Токен без отзыва: redis для сида не нужен
	token, err := auth.NewJWTService(conf.JWT.Secret, conf.JWT.TTL, nil).Generate(users[0].Email, users[0].Role)
	if err != nil {
		logrus.Fatalf("generate token: %v", err)
	}

	fmt.Println("\nЗаполнение данных завершено!")
	fmt.Printf("Пароль для всех пользователей: %s\n", demoPassword)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
