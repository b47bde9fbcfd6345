// Command fx_token mints a signed bearer token for local development using
// the JWT_SECRET and JWT_ISSUER of the service configuration.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/SscSPs/fx_service/internal/platform/config"
	"github.com/SscSPs/fx_service/internal/utils"
)

func main() {
	userID := flag.String("user", "dev-user", "subject of the token")
	role := flag.String("role", string(domain.RoleViewer), "viewer, accountant or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	parsedRole := domain.ParseUserRole(*role)
	if parsedRole == "" {
		logger.Error("Invalid role", slog.String("role", *role))
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*userID, parsedRole, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
