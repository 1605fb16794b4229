package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumipath/challenges/internal/service"
)

type Server struct {
	mx               *chi.Mux
	parentService    service.ParentServiceI
	childrenService  service.ChildrenServiceI
	challengeService service.ChallengesServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	ParentService    service.ParentServiceI
	ChildrenService  service.ChildrenServiceI
	ChallengeService service.ChallengesServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		parentService:    servicesOptions.ParentService,
		childrenService:  servicesOptions.ChildrenService,
		challengeService: servicesOptions.ChallengeService,
		jwtService:       servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Post("/children", s.CreateChild)
			r.Get("/children", s.GetChildren)
			r.Get("/children/{id}/challenges", s.GetChallenges)
			r.Post("/children/{id}/challenges/progress", s.RecordProgress)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
