// Command createadmin seeds a dashboard admin account.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"flowerdecor/config"
	"flowerdecor/database"
	adminRepo "flowerdecor/database/repository/admin"
	"flowerdecor/services/admin"
	"flowerdecor/utils"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (defaults to $ADMIN_PASSWORD)")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.InitDB(config.AppConfig, logger)
	if err != nil {
		log.Fatalf("createadmin: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	defer database.MongoClient.Disconnect(ctx)

	repo := adminRepo.NewMongoAdminRepo(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("createadmin: %v", err)
	}

	svc := admin.NewAdminService(repo, nil, logger)
	created, err := svc.CreateAdmin(ctx, *username, *password)
	switch {
	case errors.Is(err, admin.ErrAdminExists):
		fmt.Printf("Admin %q already exists\n", *username)
	case err != nil:
		log.Fatalf("createadmin: %v", err)
	default:
		fmt.Printf("Admin %q created (id %s)\n", created.Username, created.ID.Hex())
	}
}
