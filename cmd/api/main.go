package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"blogql/cmd/app"
	"blogql/internal/config"
	"blogql/internal/graph"
	handlers "blogql/internal/handler"

	"github.com/gorilla/mux"
	gqlhandler "github.com/graphql-go/handler"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, store, cfg)

	schema, err := graph.NewSchema(graph.NewResolver(services))
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	graphqlHandler := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	// setting up routes
	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.Handle("/graphql", graphqlHandler)

	router.HandleFunc("/post/post-image", handler.UploadImage).Methods(http.MethodPut)

	router.HandleFunc("/feed/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/feed/post", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/feed/post/{postID}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/feed/post/{postID}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/feed/post/{postID}", handler.DeletePost).Methods(http.MethodDelete)

	// uploaded images are public
	router.PathPrefix("/images/").Handler(http.StripPrefix("/images/",
		http.FileServer(http.Dir(filepath.Join(cfg.PublicDir, "images")))))

	handlerChain := handlers.Chain(
		router,
		handlers.LoggingMiddleware,
		handlers.CORSMiddleware,
		handlers.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server is running on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
