package main

import (
	"log"
	"net/http"
	"time"

	_ "github.com/AbdulMoiz2493/Movie-Recommendation-System/docs" // swagger docs

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/cache"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/config"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/db"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/handler"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Catalog API
// @version 1.0
// @description API de catálogo de películas (reviews, wishlists, comunidades, noticias)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	if cfg.WriteGuard {
		repository.EnableWriteGuard()
		log.Println("[main] write guard habilitado")
	}

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	actorRepo := repository.NewActorRepository()
	directorRepo := repository.NewDirectorRepository()
	communityRepo := repository.NewCommunityRepository()
	newsRepo := repository.NewNewsRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo, actorRepo, directorRepo, userRepo)
	reviewSvc := service.NewReviewService(movieRepo, userRepo)
	wishlistSvc := service.NewWishlistService(userRepo, movieRepo)
	communitySvc := service.NewCommunityService(communityRepo)
	newsSvc := service.NewNewsService(newsRepo)
	notificationSvc := service.NewNotificationService(userRepo, movieRepo)
	adminSvc := service.NewAdminService(movieRepo, userRepo, communityRepo)
	catalogSvc := service.NewCatalogService(actorRepo, directorRepo, movieRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	wishlistH := handler.NewWishlistHandler(wishlistSvc)
	communityH := handler.NewCommunityHandler(communitySvc)
	newsH := handler.NewNewsHandler(newsSvc)
	notificationH := handler.NewNotificationHandler(notificationSvc)
	adminH := handler.NewAdminHandler(adminSvc, catalogSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(100, time.Minute))

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Películas (públicas). Las rutas fijas van antes que /{id}.
	r.Get("/movies", movieH.List)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/advanced-filter", movieH.AdvancedFilter)
	r.Get("/movies/trending", movieH.Trending)
	r.Get("/movies/top-rated", movieH.TopRated)
	r.Get("/movies/top-month", movieH.TopOfMonth)
	r.Get("/movies/top-genre", movieH.TopByGenre)
	r.Get("/movies/{id}", movieH.Get)
	r.Get("/movies/{id}/cast", movieH.Cast)
	r.Get("/movies/{id}/trivia", movieH.Trivia)
	r.Get("/movies/{id}/goofs", movieH.Goofs)
	r.Get("/movies/{id}/soundtracks", movieH.Soundtrack)
	r.Get("/movies/{id}/awards", movieH.Awards)
	r.Get("/movies/{id}/box-office", movieH.BoxOffice)
	r.Get("/movies/similar/{id}", movieH.Similar)
	r.Get("/movies/{id}/reviews", reviewH.List)
	r.Get("/movies/{id}/reviews/highlights", reviewH.Highlights)
	r.Get("/movies/{id}/reviews/average", reviewH.Average)

	// Perfiles públicos de actores y directores
	r.Get("/actors/{id}", adminH.GetActor)
	r.Get("/directors/{id}", adminH.GetDirector)

	// Comunidades (lectura pública)
	r.Get("/communities", communityH.List)
	r.Get("/communities/{id}", communityH.Get)
	r.Get("/communities/{id}/posts", communityH.ListPosts)
	r.Get("/communities/{id}/posts/{postId}/replies", communityH.ListReplies)

	// Noticias (lectura pública)
	r.Get("/news", newsH.List)
	r.Get("/news/{id}", newsH.Get)

	r.Get("/notifications/upcoming-movies", notificationH.UpcomingMovies)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// perfil propio
		r.Get("/users/me", authH.Me)
		r.Put("/users/me", authH.UpdateProfile)

		// reviews
		r.Post("/movies/{id}/reviews", reviewH.Add)
		r.Put("/movies/{id}/reviews", reviewH.Update)
		r.Delete("/movies/{id}/reviews", reviewH.Delete)

		// recomendaciones personalizadas
		r.Get("/movies/recommendations", movieH.Recommendations)

		// wishlist y listas personalizadas
		r.Get("/users/wishlist", wishlistH.Get)
		r.Post("/users/wishlist", wishlistH.Add)
		r.Delete("/users/wishlist/{movieId}", wishlistH.Remove)
		r.Get("/users/lists", wishlistH.Lists)
		r.Post("/users/lists", wishlistH.CreateList)

		// comunidades (escritura)
		r.Post("/communities", communityH.Create)
		r.Post("/communities/{id}/posts", communityH.CreatePost)
		r.Post("/communities/{id}/posts/{postId}/replies", communityH.Reply)

		// notificaciones
		r.Get("/notifications", notificationH.List)
		r.Put("/notifications/preferences", notificationH.SetPreference)

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// gestión de películas
			r.Post("/movies", movieH.Create)
			r.Put("/movies/{id}", movieH.Update)
			r.Delete("/movies/{id}", movieH.Delete)

			// altas de actores y directores
			r.Post("/admin/actors", adminH.AddActor)
			r.Post("/admin/directors", adminH.AddDirector)

			// gestión de usuarios
			r.Get("/admin/users", authH.ListUsers)
			r.Get("/admin/users/{id}", authH.GetUserByID)
			r.Delete("/admin/users/{id}", authH.DeleteUser)

			// noticias
			r.Post("/news", newsH.Create)
			r.Put("/news/{id}", newsH.Update)
			r.Delete("/news/{id}", newsH.Delete)

			// tablero
			r.Get("/admin/stats", adminH.Stats)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
