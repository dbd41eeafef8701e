package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/marketauth/internal/http/handlers"
	"github.com/you/marketauth/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, sh *handlers.SessionHandlers, rh *handlers.RegionHandlers, jwtmw *middleware.AuthMW, rbac middleware.RBACMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/activate", ah.Activate)
	auth.POST("/login", ah.Login)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/forget-password", ah.ForgetPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/refresh-token", ah.RefreshToken)

	r.GET("/regions", rh.List)

	v := r.Group("/").Use(jwtmw.WithJWT())
	v.GET("/auth/profile", ah.Profile)
	v.GET("/sessions", sh.List)

	adm := r.Group("/").Use(jwtmw.WithJWT(), rbac.Enforce())
	adm.POST("/auth/register-admin", ah.RegisterAdmin)
	adm.POST("/regions", rh.Create)

	return r
}
