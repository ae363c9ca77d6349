package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"cepcache/config"
	"cepcache/internal/delivery/api/middleware"
	"cepcache/internal/infra/auth"
)

func main() {
	subject := flag.String("subject", "", "Token subject, usually the calling service name")
	scopes := flag.String("scopes", middleware.ScopeAddressRead, "Comma-separated scopes to grant")
	flag.Parse()

	if strings.TrimSpace(*subject) == "" {
		fmt.Fprintln(os.Stderr, "Error: -subject is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// A token is only useful when it is signed.
	cfg.Auth.Enabled = true

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	token, err := tokenSvc.GenerateToken(*subject, splitScopes(*scopes))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func splitScopes(raw string) []string {
	var scopes []string
	for _, scope := range strings.Split(raw, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			scopes = append(scopes, scope)
		}
	}

	return scopes
}
