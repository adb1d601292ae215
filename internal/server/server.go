package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teawork/internal/config"
	"teawork/internal/handler"
	"teawork/internal/logger"
	"teawork/internal/middleware"
	"teawork/internal/model"
	"teawork/internal/repository"
	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *logger.Logger
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Conversation{},
		&model.ConversationMember{},
		&model.ToDoList{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Invitation{},
		&model.ProjectTask{},
		&model.TaskDistribution{},
		&model.TaskComment{},
		&model.Notification{},
		&model.DesignConcept{},
	); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to init logger: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	conceptRepo := repository.NewDesignConceptRepository(db)

	// Initialize services
	identity := service.NewContextIdentity(userRepo)
	conversationSvc := service.NewConversationService(conversationRepo, userRepo, identity, zl.With("service", "conversation"))
	projectSvc := service.NewProjectService(db, projectRepo, conversationRepo, taskRepo, invitationRepo,
		conversationSvc, conversationSvc, identity, zl.With("service", "project"))
	invitationSvc := service.NewInvitationService(db, invitationRepo, projectRepo, conversationRepo,
		projectSvc, conversationSvc, identity, zl.With("service", "invitation"))
	taskSvc := service.NewTaskService(taskRepo, projectRepo, identity, zl.With("service", "task"))
	notificationSvc := service.NewNotificationService(notificationRepo, identity, zl.With("service", "notification"))
	userSvc := service.NewUserService(userRepo, identity, zl.With("service", "user"))
	conceptSvc := service.NewDesignConceptService(conceptRepo, projectRepo, identity, zl.With("service", "design_concept"))

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	projectHandler := handler.NewProjectHandler(projectSvc)
	invitationHandler := handler.NewInvitationHandler(invitationSvc, notificationSvc, userSvc)
	conversationHandler := handler.NewConversationHandler(conversationSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	conceptHandler := handler.NewDesignConceptHandler(conceptSvc)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects", projectHandler.GetMy)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.GET("/projects/:id/members", projectHandler.GetMembers)
		authorized.DELETE("/projects/:id/members/:user_id", projectHandler.RemoveMember)

		// Invitation routes
		authorized.POST("/invitations", invitationHandler.Send)
		authorized.GET("/invitations", invitationHandler.GetMy)
		authorized.POST("/invitations/:id/accept", invitationHandler.Accept)
		authorized.POST("/invitations/:id/decline", invitationHandler.Decline)

		// Conversation routes
		authorized.GET("/conversations/:id/name", conversationHandler.GetName)

		// Task routes
		authorized.POST("/projects/:id/tasks", taskHandler.Create)
		authorized.GET("/todolists/:id/tasks", taskHandler.GetByToDoList)
		authorized.GET("/todolists/:id/project", taskHandler.GetProjectOfList)
		authorized.GET("/my-tasks", taskHandler.GetMy)
		authorized.POST("/tasks/:id/distribute", taskHandler.Distribute)
		authorized.POST("/tasks/:id/priority", taskHandler.ChangePriority)
		authorized.POST("/tasks/:id/comments", taskHandler.AddComment)
		authorized.GET("/tasks/:id/comments", taskHandler.GetComments)

		// Notification routes
		authorized.GET("/notifications", notificationHandler.GetMyNew)
		authorized.POST("/notifications/:id/displayed", notificationHandler.Displayed)

		// Design concept routes
		authorized.POST("/projects/:id/design-concepts", conceptHandler.Create)
		authorized.GET("/projects/:id/design-concepts", conceptHandler.GetByProject)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    zl,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	s.Log.Sync()
	log.Println("✅ Server exited properly")
}
