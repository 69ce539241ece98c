package bootstrap

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/anirudhASAWA/Time-Motion-Study/internal/api/http"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/api/http/middleware"
	projectshttp "github.com/anirudhASAWA/Time-Motion-Study/internal/projects/http"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DataDir        string
	AllowedOrigins string
	RateLimitRPS   int
	RateLimitBurst int
	DB             *pgxpool.Pool // nil for the file backend
	Projects       *service.ProjectService
}

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Time-Motion Study</title></head>
<body>
<h1>Time-Motion Study App is Running!</h1>
<p>Submit timed task records to /api/save-project and export them as spreadsheets from /api/export/{filename}.</p>
</body>
</html>`

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.SecureHeaders())
	r.Use(middleware.RequestID())
	if dep.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	corsConfig := cors.DefaultConfig()
	origins := strings.Split(dep.AllowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-Id"}
	r.Use(cors.New(corsConfig))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DataDir, dep.DB)
	healthHandler.RegisterRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
	})

	api := r.Group("/api")
	projectshttp.Register(api, dep.Projects)

	return r
}
