// Command issue-token prints a signed access token for a user ID. It is a
// development aid for calling the API without the identity service.
//
// Usage:
//
//	issue-token --user=3f1e0b9a-...   (omit --user for a random ID)
//
// Requires AUTH_JWT_SECRET (and DATABASE_DSN for config validation).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/auth"
	"github.com/alhidayah/hidayah-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "user ID to put in the token subject")
	flag.Parse()

	userID := uuid.New()
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid>")
			os.Exit(1)
		}
		userID = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := tokens.IssueToken(userID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}
