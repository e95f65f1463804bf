package graph

import (
	"blogql/internal/apperr"
	"blogql/internal/service"

	"github.com/graphql-go/graphql"
)

// postsPageSize is the GraphQL page size; the REST feed pages by 4 at its own
// call site.
const postsPageSize = 2

// AuthData is the login payload.
type AuthData struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type Resolver struct {
	auth  service.AuthService
	posts service.PostService
	users service.UserService
}

func NewResolver(services *service.Service) *Resolver {
	return &Resolver{
		auth:  services.Auth,
		posts: services.Post,
		users: services.User,
	}
}

// requireAuth reports the request identity or the 401 every auth-requiring
// operation raises itself (the middleware never rejects).
func (r *Resolver) requireAuth(p graphql.ResolveParams) (*service.Identity, error) {
	identity, ok := service.IdentityFromContext(p.Context)
	if !ok {
		return nil, apperr.NotAuthenticated()
	}
	return identity, nil
}

func (r *Resolver) CreateUser(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["userInput"].(map[string]interface{})
	if !ok {
		return nil, apperr.Invalid("Invalid input.", nil)
	}

	email, _ := input["email"].(string)
	name, _ := input["name"].(string)
	password, _ := input["password"].(string)

	return r.auth.Register(p.Context, email, name, password)
}

func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	token, userID, err := r.auth.Login(p.Context, email, password)
	if err != nil {
		return nil, err
	}

	return &AuthData{Token: token, UserID: userID}, nil
}

func (r *Resolver) CreatePost(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}

	input, ok := p.Args["postInput"].(map[string]interface{})
	if !ok {
		return nil, apperr.Invalid("Invalid input.", nil)
	}

	title, _ := input["title"].(string)
	content, _ := input["content"].(string)
	imageURL, _ := input["imageUrl"].(string)

	return r.posts.Create(p.Context, service.PostInput{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}, identity.UserID)
}

func (r *Resolver) Posts(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}

	page, _ := p.Args["page"].(int)
	if page < 1 {
		return nil, apperr.Invalid("Invalid page number.", nil)
	}

	posts, _, err := r.posts.List(p.Context, page, postsPageSize)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *Resolver) TotalPostCount(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}

	return r.posts.Count(p.Context)
}

func (r *Resolver) Post(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}

	id, _ := p.Args["id"].(string)

	return r.posts.Get(p.Context, id)
}

func (r *Resolver) UpdatePost(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}

	id, _ := p.Args["id"].(string)

	input, ok := p.Args["postInput"].(map[string]interface{})
	if !ok {
		return nil, apperr.Invalid("Invalid input.", nil)
	}

	title, _ := input["title"].(string)
	content, _ := input["content"].(string)
	imageURL, _ := input["imageUrl"].(string)

	return r.posts.Update(p.Context, id, service.PostInput{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}, identity.UserID)
}

func (r *Resolver) DeletePost(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}

	id, _ := p.Args["id"].(string)

	err = r.posts.Delete(p.Context, id, identity.UserID)
	if err != nil {
		return false, err
	}

	return true, nil
}
