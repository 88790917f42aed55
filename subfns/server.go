package subfns

import (
	"fmt"
	"time"

	"github.com/cf-containers/container-api/intertypes"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func CreateServer(env *intertypes.Env) *gin.Engine {
	if !env.IS_DEV {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetTrustedProxies(nil)

	return r
}
func AddMiddleware(r *gin.Engine, env *intertypes.Env, logger *zap.Logger) {
	if !env.DISABLE_REQUEST_LOGS {
		r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	}
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowOrigins: env.CORS_ALLOWED_ORIGINS,
		MaxAge:       5 * time.Minute,
	}))
}
func StartServer(r *gin.Engine, env *intertypes.Env, logger *zap.Logger) error {
	addr := fmt.Sprintf("%v:%v", env.HOST, env.PORT)
	logger.Info("starting server", zap.String("url", fmt.Sprintf("http://%v", addr)))

	return r.Run(addr)
}
