package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"perkly/api"
	"perkly/internal/logger"
	"perkly/internal/repository"
	"perkly/internal/service"
	"perkly/internal/util"

	_ "github.com/lib/pq"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	cardRepository := repository.NewCardRepository(dbConn)
	recommendationService := service.NewRecommendationService(cardRepository)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		Logger:                logger.New(),
		CardRepository:        cardRepository,
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		RecommendationService: recommendationService,
		AdminJwtSecret:        secrets.AdminJwtSecret,
	}

	return apiHandler, nil
}

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}
