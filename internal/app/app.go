package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/marketauth/internal/config"
	httpx "github.com/you/marketauth/internal/http"
	"github.com/you/marketauth/internal/http/handlers"
	"github.com/you/marketauth/internal/http/middleware"
	"github.com/you/marketauth/internal/infrastructure/auth"
)

// Run wires the service together and serves it.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(container.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	sessH := handlers.NewSessionHandlers(container.AuthSvc)
	regH := handlers.NewRegionHandlers(container.RegionRepo)

	jwtMW := middleware.NewAuthMW(container.TokenSvc)
	rbacMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, sessH, regH, jwtMW, rbacMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/auth/register-admin", "POST")
		cas.E.AddPolicy("role_superadmin", "/auth/register-admin", "POST")
		cas.E.AddPolicy("role_admin", "/regions", "POST")
		cas.E.AddPolicy("role_superadmin", "/regions", "POST")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
