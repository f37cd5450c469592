package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"contact_admin_server/internal/config"
	dao "contact_admin_server/internal/dao/mysql"
	"contact_admin_server/internal/handler"
	"contact_admin_server/internal/http_server"
	"contact_admin_server/internal/infrastructure/logger"
	"contact_admin_server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}

	if conf.MainConfig.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Japanese validator translations and the custom tel rule must be
	// registered before the first request binds.
	if err := handler.InitTrans("ja"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	repos := dao.Init()
	zap.L().Info("database initialized")

	services := service.NewServices(repos)
	handlers := handler.NewHandlers(services)
	engine := http_server.Init(handlers)

	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server run failed", zap.Error(err))
		}
	}()
	zap.L().Info("server started",
		zap.String("app", conf.MainConfig.AppName),
		zap.String("host", host),
		zap.Int("port", port),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("server stopped")
}
