package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"taskflow/config"
	assistHTTP "taskflow/internal/assist/delivery/http"
	assistUC "taskflow/internal/assist/usecase"
	"taskflow/internal/checklist"
	"taskflow/internal/middleware"
	taskHTTP "taskflow/internal/task/delivery/http"
	taskRepo "taskflow/internal/task/repository"
	taskFirestore "taskflow/internal/task/repository/firestore"
	taskMongo "taskflow/internal/task/repository/mongo"
	taskUC "taskflow/internal/task/usecase"
	"taskflow/internal/user"
	userHTTP "taskflow/internal/user/delivery/http"
	userRepo "taskflow/internal/user/repository"
	userFirestore "taskflow/internal/user/repository/firestore"
	userMongo "taskflow/internal/user/repository/mongo"
	userUC "taskflow/internal/user/usecase"
)

// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.mongoDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)

// setupUserDomain registers /api/user and returns the use case for other domains.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (user.UseCase, error) {
	repo, err := srv.userRepository(ctx)
	if err != nil {
		return nil, err
	}

	uc := userUC.New(srv.l, repo, srv.scopeManager)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/user"), h, mw)

	srv.l.Infof(ctx, "User domain registered (driver=%s)", srv.databaseDriver)
	return uc, nil
}

// setupTaskDomain registers /api/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, users user.UseCase) error {
	repo, err := srv.taskRepository(ctx)
	if err != nil {
		return err
	}

	cl := checklist.New()
	uc := taskUC.New(srv.l, repo, users, cl, srv.dateMath)
	h := taskHTTP.New(srv.l, uc, cl)
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)

	srv.l.Infof(ctx, "Task domain registered (driver=%s)", srv.databaseDriver)
	return nil
}

// setupAssistDomain registers /api/ai.
func (srv HTTPServer) setupAssistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := assistUC.New(srv.l, srv.llm, srv.dateMath)
	h := assistHTTP.New(srv.l, uc)
	assistHTTP.RegisterRoutes(api.Group("/ai"), h, mw)

	provider := srv.llm.Provider()
	srv.l.Infof(ctx, "AI domain registered (provider=%s model=%s)", provider.Name(), provider.Model())
	return nil
}

func (srv HTTPServer) userRepository(ctx context.Context) (userRepo.Repository, error) {
	switch srv.databaseDriver {
	case config.DatabaseDriverMongo:
		if err := userMongo.EnsureIndexes(ctx, srv.mongoDB); err != nil {
			return nil, err
		}
		return userMongo.New(srv.mongoDB, srv.l), nil
	case config.DatabaseDriverFirestore:
		return userFirestore.New(srv.firestore, srv.l), nil
	}
	return nil, fmt.Errorf("unknown database driver: %s", srv.databaseDriver)
}

func (srv HTTPServer) taskRepository(ctx context.Context) (taskRepo.Repository, error) {
	switch srv.databaseDriver {
	case config.DatabaseDriverMongo:
		if err := taskMongo.EnsureIndexes(ctx, srv.mongoDB); err != nil {
			return nil, err
		}
		return taskMongo.New(srv.mongoDB, srv.l), nil
	case config.DatabaseDriverFirestore:
		return taskFirestore.New(srv.firestore, srv.l), nil
	}
	return nil, fmt.Errorf("unknown database driver: %s", srv.databaseDriver)
}
