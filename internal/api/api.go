// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"fmt"
	"net/http"

	_ "github.com/annsokol/foodbook/docs"
	"github.com/annsokol/foodbook/internal/api/metrics"
	"github.com/annsokol/foodbook/internal/api/middleware"
	"github.com/annsokol/foodbook/internal/api/routes/auth"
	"github.com/annsokol/foodbook/internal/api/routes/ingredients"
	"github.com/annsokol/foodbook/internal/api/routes/ping"
	"github.com/annsokol/foodbook/internal/api/routes/recipes"
	"github.com/annsokol/foodbook/internal/api/routes/tags"
	"github.com/annsokol/foodbook/internal/api/routes/users"
	"github.com/annsokol/foodbook/internal/env"
	"github.com/annsokol/foodbook/internal/role"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func addDocs(r *chi.Mux, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router *chi.Mux) {
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/auth/token", func(r chi.Router) {
			r.Post("/login", auth.HandleLogin)
			r.Post("/logout", auth.HandleLogout)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tags.HandleListTags)
			r.Get("/{tagID}", tags.HandleGetTag)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.HandleSearchIngredients)
			r.Get("/{ingredientID}", ingredients.HandleGetIngredient)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", users.HandleCreateUser)
			r.With(middleware.OptionalUser).Get("/", users.HandleListUsers)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser(role.RoleUser))

				r.Get("/me", users.HandleMe)
				r.Post("/set_password", users.HandleSetPassword)
				r.Get("/subscriptions", users.HandleListSubscriptions)
				r.Post("/{userID}/subscribe", users.HandleSubscribe)
				r.Delete("/{userID}/subscribe", users.HandleUnsubscribe)
			})

			r.With(middleware.OptionalUser).Get("/{userID}", users.HandleGetUser)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.With(middleware.OptionalUser).Get("/", recipes.HandleListRecipes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser(role.RoleUser))

				r.Post("/", recipes.HandleCreateRecipe)
				// Registered before /{recipeID} so chi does not treat
				// the path as a recipe id.
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)
				r.Patch("/{recipeID}", recipes.HandleUpdateRecipe)
				r.Delete("/{recipeID}", recipes.HandleDeleteRecipe)
				r.Post("/{recipeID}/favorite", recipes.HandleFavorite)
				r.Delete("/{recipeID}/favorite", recipes.HandleUnfavorite)
				r.Post("/{recipeID}/shopping_cart", recipes.HandleAddToCart)
				r.Delete("/{recipeID}/shopping_cart", recipes.HandleRemoveFromCart)
			})

			r.With(middleware.OptionalUser).Get("/{recipeID}", recipes.HandleGetRecipe)
		})
	})
}

// Start godoc
//
//	@title						Foodbook API
//	@version					1.0
//	@description				API Server for the Foodbook application.
//
//	@securityDefinitions.apikey	AccessTokenCookie
//	@in							header
//	@name						Authorization
//
//	@host						localhost:8080
//	@BasePath					/api
func Start(env *env.Env) error {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)
	router.Use(metrics.Middleware)

	addRoutes(router)
	addDocs(router, fmt.Sprintf("0.0.0.0:%d", env.Config.Port))

	env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", env.Config.Port))
	env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", env.Config.Port))
	return http.ListenAndServe(fmt.Sprintf(":%d", env.Config.Port), router)
}
