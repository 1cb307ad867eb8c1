package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rafflehq/raffle-sales-api/docs"
	v1 "github.com/rafflehq/raffle-sales-api/internal/api/handler/v1"
	"github.com/rafflehq/raffle-sales-api/internal/api/middleware"
	"github.com/rafflehq/raffle-sales-api/internal/config"
	"github.com/rafflehq/raffle-sales-api/internal/repository"
	"github.com/rafflehq/raffle-sales-api/internal/repository/dao"
	"github.com/rafflehq/raffle-sales-api/internal/service"
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

	authHandler := s.initAuthHandler(db)
	raffleHandler := s.initRaffleHandler(db)
	ticketHandler := s.initTicketHandler(db)
	s.MountHandlers(authHandler, raffleHandler, ticketHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initRaffleHandler(db *gorm.DB) *v1.RaffleHandler {
	raffleDAO := dao.NewRaffleDAO(db)
	repo := repository.NewRaffleRepository(raffleDAO)
	svc := service.NewRaffleService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewRaffleHandler(svc, uSvc)

	return handler
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketDAO := dao.NewTicketDAO(db)
	raffleRepo := repository.NewRaffleRepository(dao.NewRaffleDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewTicketService(repository.NewTicketRepository(ticketDAO), raffleRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewTicketHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.ParseCORSDomains()))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, raffleHandler *v1.RaffleHandler, ticketHandler *v1.TicketHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	raffles := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		raffles.GET("/raffles", raffleHandler.HandleGetRaffles)
		raffles.GET("/raffles/:raffleID/tickets", ticketHandler.HandleListTickets)
		raffles.POST("/raffles/:raffleID/tickets", ticketHandler.HandleCreateTicket)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Raffle ticket sales API"
	docs.SwaggerInfo.Description = "Sell raffle tickets and query sales totals."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
