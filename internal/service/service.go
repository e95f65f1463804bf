package service

import (
	"blogql/internal/config"
	"blogql/internal/repository"
	"blogql/internal/validation"
)

type Service struct {
	Auth AuthService
	Post PostService
	User UserService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	validate := validation.New()

	return &Service{
		Auth: NewAuthService(rep.User, validate, cfg),
		Post: NewPostService(rep.Post, rep.User, validate),
		User: NewUserService(rep.User, rep.Post),
	}
}
