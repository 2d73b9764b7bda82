package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/coleta-app/coleta-api/docs"
	v1 "github.com/coleta-app/coleta-api/internal/api/handler/v1"
	"github.com/coleta-app/coleta-api/internal/api/middleware"
	"github.com/coleta-app/coleta-api/internal/config"
	"github.com/coleta-app/coleta-api/internal/repository"
	"github.com/coleta-app/coleta-api/internal/repository/dao"
	"github.com/coleta-app/coleta-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	pointHandler := s.initPointHandler(db)
	itemHandler := s.initItemHandler(db)
	s.MountHandlers(pointHandler, itemHandler)

	return s
}

func (s *Server) initPointHandler(db *gorm.DB) *v1.PointHandler {
	pointDAO := dao.NewPointDAO(db)
	repo := repository.NewPointRepository(pointDAO)
	svc := service.NewPointService(repo)
	handler := v1.NewPointHandler(svc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewItemService(repo, s.Config.API.UploadsBaseURL)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(pointHandler *v1.PointHandler, itemHandler *v1.ItemHandler) {
	items := s.Router.Group("/items")
	{
		items.GET("", itemHandler.HandleGetItems)
	}

	points := s.Router.Group("/points")
	{
		points.GET("", pointHandler.HandleListPoints)
		points.GET("/:id", pointHandler.HandleGetPoint)
		points.POST("", pointHandler.HandleCreatePoint)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Collection Point API"
	docs.SwaggerInfo.Description = "REST API for registering and finding recycling collection points."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
