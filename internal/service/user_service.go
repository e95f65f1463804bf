package service

import (
	"context"
	"errors"

	"blogql/internal/apperr"
	"blogql/internal/models"
	"blogql/internal/repository"
)

type UserService interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Posts(ctx context.Context, userID string) ([]*models.Post, error)
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}

	return user, nil
}

// Posts resolves the user's denormalized post-id list. Ids that no longer
// resolve are skipped, the list is a convenience index and may briefly
// disagree with the posts table.
func (s *userService) Posts(ctx context.Context, userID string) ([]*models.Post, error) {
	ids, err := s.userRepo.PostIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(ids))
	for _, id := range ids {
		post, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}
