// @title LumiPath Challenges API
// @description Daily challenge assignment, progress tracking and history for the LumiPath education platform
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/lumipath/challenges/internal/api"
	"github.com/lumipath/challenges/internal/repository"
	"github.com/lumipath/challenges/internal/service"
	"github.com/lumipath/challenges/pkg/cleanup"
	"github.com/lumipath/challenges/pkg/config"
	jwtservice "github.com/lumipath/challenges/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	childrenRepo := repository.NewChildrenRepo(&dbCfg)
	parentService := service.NewParentService(repository.NewParentsRepo(&dbCfg))
	childrenService := service.NewChildrenService(childrenRepo)
	challengeService := service.NewChallengeService(
		childrenRepo,
		repository.NewChallengesRepo(&dbCfg),
		service.DefaultCatalog(),
		cfg.Location(),
	)
	serv := api.New(&api.ServicesList{
		ParentService:    parentService,
		ChildrenService:  childrenService,
		ChallengeService: challengeService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
