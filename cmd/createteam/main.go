package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/zhukovvlad/estimator-go/cmd/internal/config"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/auth"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

func main() {
	logger := logging.GetLogger()
	logger.Info("Create Team Tool")

	// Загружаем .env файл
	err := godotenv.Load()
	if err != nil {
		logger.Warnf("Warning: error loading .env file: %v", err)
	}

	cfg := config.GetConfig()

	conn, err := sql.Open(cfg.Database.Driver, cfg.Database.Source)
	if err != nil {
		logger.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		logger.Fatalf("error pinging database: %v", err)
	}

	logger.Info("Database connection established")

	store := db.NewStore(conn)
	authService := auth.NewService(store, cfg, logger)
	ctx := context.Background()

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter team name: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		logger.Fatalf("failed to read team name: %v", err)
	}
	name = strings.TrimSpace(name)

	// Запрашиваем код доступа (без отображения на экране)
	fmt.Print("Enter team passcode: ")
	passcodeBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		logger.Fatalf("failed to read passcode: %v", err)
	}
	fmt.Println()

	fmt.Print("Confirm team passcode: ")
	confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		logger.Fatalf("failed to read passcode confirmation: %v", err)
	}
	fmt.Println()

	if string(passcodeBytes) != string(confirmBytes) {
		logger.Fatal("passcodes do not match")
	}

	team, err := authService.CreateTeam(ctx, name, string(passcodeBytes))
	if err != nil {
		var validationErr *apierrors.ValidationError
		var conflictErr *apierrors.ConflictError
		if errors.As(err, &validationErr) || errors.As(err, &conflictErr) {
			logger.Fatal(err.Error())
		}
		logger.Fatalf("failed to create team: %v", err)
	}

	logger.Infof("✓ Team created successfully!")
	logger.Infof("  ID: %d", team.ID)
	logger.Infof("  Name: %s", team.Name)
	logger.Infof("  Created: %s", team.CreatedAt.Format("2006-01-02 15:04:05"))
}
