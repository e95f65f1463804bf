package service

import (
	"context"
	"errors"

	"blogql/internal/apperr"
	"blogql/internal/models"
	"blogql/internal/repository"
	"blogql/internal/validation"
)

type PostInput struct {
	Title    string
	Content  string
	ImageURL string
}

type PostService interface {
	Create(ctx context.Context, input PostInput, ownerID string) (*models.Post, error)
	Get(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Post, int, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, postID string, input PostInput, requesterID string) (*models.Post, error)
	Delete(ctx context.Context, postID string, requesterID string) error
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	validate *validation.Validator
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, validate *validation.Validator) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		validate: validate,
	}
}

func (s *postService) Create(ctx context.Context, input PostInput, ownerID string) (*models.Post, error) {
	if err := s.validate.PostInput(input.Title, input.Content); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Unauthenticated("User not found.")
		}
		return nil, err
	}

	post := &models.Post{
		Title:     input.Title,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		CreatorID: user.UserID,
	}

	err = s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	// second write, not guarded by a transaction: a crash between the two
	// leaves a post missing from the user's list, posts.creator_id stays
	// the source of truth
	err = s.userRepo.AppendPostID(ctx, user.UserID, post.PostID)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) Get(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("No post found!")
		}
		return nil, err
	}

	return post, nil
}

func (s *postService) List(ctx context.Context, page, pageSize int) ([]*models.Post, int, error) {
	posts, err := s.postRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (s *postService) Count(ctx context.Context) (int, error) {
	return s.postRepo.Count(ctx)
}

func (s *postService) Update(ctx context.Context, postID string, input PostInput, requesterID string) (*models.Post, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.CreatorID != requesterID {
		return nil, apperr.NotAuthorized()
	}

	if err := s.validate.PostInput(input.Title, input.Content); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	// no new image supplied means the stored one is retained
	if input.ImageURL != "" && input.ImageURL != "undefined" {
		post.ImageURL = input.ImageURL
	}

	err = s.postRepo.Update(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("No post found!")
		}
		return nil, err
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, postID string, requesterID string) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	if post.CreatorID != requesterID {
		return apperr.NotAuthorized()
	}

	err = s.postRepo.Delete(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("No post found!")
		}
		return err
	}

	// second write of the delete sequence, see Create
	return s.userRepo.RemovePostID(ctx, requesterID, postID)
}
