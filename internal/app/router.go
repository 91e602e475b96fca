// Package app assembles repositories, services and handlers into the HTTP
// router.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studioreserve/internal/middleware"
	"studioreserve/internal/modules/access"
	"studioreserve/internal/modules/auth"
	"studioreserve/internal/modules/reservation"
	"studioreserve/internal/modules/studio"
	"studioreserve/internal/pkg/jwt"
	"studioreserve/internal/pkg/lock"
	"studioreserve/internal/pkg/response"
	"studioreserve/internal/repository"
)

type Deps struct {
	DB             *gorm.DB
	Tokens         *jwt.Service
	Locker         lock.Locker
	DefaultMaxDay  int
	AllowedOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	userRepo := repository.NewUserRepository(d.DB)
	studioRepo := repository.NewStudioRepository(d.DB)
	employeeRepo := repository.NewStudioEmployeeRepository(d.DB)
	reservationRepo := repository.NewReservationRepository(d.DB)

	partitioner := access.NewPartitioner(studioRepo, employeeRepo, userRepo, reservationRepo)
	guard := reservation.NewGuard(d.DB, d.Locker)

	authHandler := auth.NewHandler(auth.NewService(userRepo, d.Tokens))
	studioHandler := studio.NewHandler(studio.NewService(studioRepo, employeeRepo, partitioner, d.DefaultMaxDay))
	reservationHandler := reservation.NewHandler(
		reservation.NewService(partitioner, guard, reservationRepo, userRepo),
	)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(d.AllowedOrigins),
	)

	r.GET("/health", health(d.DB))

	v1 := r.Group("/api/v1")

	// public
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(d.Tokens))
	{
		authHandler.RegisterProtectedRoutes(protected)
		studioHandler.RegisterRoutes(protected)
		reservationHandler.RegisterRoutes(protected)
	}

	return r
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
