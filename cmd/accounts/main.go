package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/config"
	"github.com/2beens/fitconnect/internal/db"
	"github.com/2beens/fitconnect/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// creates trainer and member accounts; the password is read from FITCONNECT_NEW_ACCOUNT_PASS
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	username := flag.String("username", "", "username of the new account")
	role := flag.String("role", string(auth.RoleMember), "account role [TRAINER | MEMBER]")
	trainerID := flag.Int("trainer", 0, "assign the new member to this trainer id")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugln("no .env file found")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	password := os.Getenv("FITCONNECT_NEW_ACCOUNT_PASS")
	if password == "" {
		log.Fatalln("new account password not set. use FITCONNECT_NEW_ACCOUNT_PASS")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITCONNECT_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	account, err := auth.NewAccountsRepo(dbPool).Create(ctx, *username, password, auth.Role(*role))
	if err != nil {
		log.Fatalf("create account [%s]: %s", *username, err)
	}
	log.Infof("account created: id=%d username=%s role=%s", account.ID, account.Username, account.Role)

	if *trainerID <= 0 {
		return
	}
	if account.Role != auth.RoleMember {
		log.Fatalf("only members can be assigned to a trainer")
	}
	assignment, err := auth.NewAssignmentsRepo(dbPool).Assign(ctx, *trainerID, account.ID, pkg.Today())
	if err != nil {
		log.Fatalf("assign trainer %d: %s", *trainerID, err)
	}
	log.Infof("member %d assigned to trainer %d", assignment.MemberID, assignment.TrainerID)
}
