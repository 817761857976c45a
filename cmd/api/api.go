package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizlist/docs" //this is required to generate swagger docs
	"bizlist/internal/auth"
	"bizlist/internal/mailer"
	"bizlist/internal/notifications"
	"bizlist/internal/ratelimiter"
	"bizlist/internal/sharecode"
	"bizlist/internal/store"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	push          notifications.PushSender
	shareCodes    *sharecode.Codec
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	refreshSecret   string
	secret          string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user     string
	passHash string
}

type mailConfig struct {
	fromEmail string
	mailtrap  mailTrapConfig
}

type mailTrapConfig struct {
	apiKey string
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/businesses", func(r chi.Router) {
			r.Get("/", app.listBusinessesHandler)
			r.Get("/popular", app.popularBusinessesHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Use(app.CheckBannedMiddleware)
				r.Post("/", app.createBusinessHandler)
				r.Get("/mine", app.myBusinessesHandler)
			})

			r.Route("/{businessID}", func(r chi.Router) {
				r.Get("/", app.getBusinessHandler)
				r.Get("/reviews", app.getReviewsHandler)

				r.Group(func(r chi.Router) {
					r.Use(app.AuthTokenMiddleware)
					r.Use(app.CheckBannedMiddleware)
					r.Patch("/", app.updateBusinessHandler)
					r.Delete("/", app.deleteBusinessHandler)

					r.Post("/image", app.uploadBusinessImageHandler)
					r.Delete("/image", app.deleteBusinessImageHandler)

					r.Post("/reviews", app.createReviewHandler)
					r.Patch("/reviews", app.updateReviewHandler)
					r.Delete("/reviews", app.deleteReviewHandler)
				})
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", app.getCategoriesHandler)
			r.Get("/suggestions", app.suggestCategoriesHandler)
		})

		r.Get("/share/{code}", app.resolveShareCodeHandler)

		r.Route("/push-tokens", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.CheckBannedMiddleware)
			r.Post("/", app.savePushTokenHandler)
			r.Delete("/", app.removePushTokenHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.BasicAuthMiddleware())
			r.Get("/businesses", app.adminListBusinessesHandler)
			r.Delete("/businesses/{businessID}", app.adminDeleteBusinessHandler)
			r.Get("/bans", app.listBansHandler)
			r.Post("/bans", app.banUserHandler)
			r.Delete("/bans/{email}", app.unbanUserHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
