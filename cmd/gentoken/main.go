// Dev helper that mints a JWT for exercising protected endpoints with curl.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eventdesk/server/internal/auth"
)

func main() {
	var (
		subject  = flag.String("sub", "1", "user ID for the token subject")
		email    = flag.String("email", "dev@example.com", "email claim")
		fullName = flag.String("name", "Dev User", "fullName claim")
		expiry   = flag.Duration("expiry", time.Hour, "token lifetime")
	)
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "Error: JWT_SECRET is not set")
		os.Exit(1)
	}

	manager := auth.NewJWTManager(secret, *expiry, "eventdesk")
	token, err := manager.Generate(*subject, *email, *fullName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "\nTest with:\ncurl -H 'Authorization: Bearer %s' http://localhost:8080/api/v1/auth/me\n", token)
}
