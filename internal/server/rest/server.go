// Package rest exposes the marketplace operations over HTTP/JSON. It is
// thin glue: requests are parsed and authenticated here, results and
// sentinel errors are translated into status codes, and everything else
// happens in the services.
package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/gophmarket/internal/logging"
	"github.com/dmitrijs2005/gophmarket/internal/server/services"
)

type RestServer struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	posts        *services.PostService
	transactions *services.TransactionService
	jwtSecret    []byte
	corsOrigins  []string
}

func NewRestServer(a string, l logging.Logger, us *services.UserService, ps *services.PostService, ts *services.TransactionService, secretKey, corsOrigins string) *RestServer {
	return &RestServer{
		address:      a,
		logger:       l.With("module", "rest_server"),
		users:        us,
		posts:        ps,
		transactions: ts,
		jwtSecret:    []byte(secretKey),
		corsOrigins:  strings.Split(corsOrigins, ","),
	}
}

// Handler builds the route tree. Everything owner-scoped sits behind the
// bearer-token middleware; the catalog and the user directory are public.
func (s *RestServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/users", s.listUsers)
	r.Post("/users/register", s.register)
	r.Post("/users/login", s.login)
	r.Post("/token", s.refreshToken)
	r.Delete("/logout", s.logout)

	r.Get("/products/posts", s.listPosts)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Put("/users/me", s.updateProfile)

		r.Post("/products/add", s.addPost)
		r.Get("/products/mine", s.listOwnPosts)
		r.Put("/products/{postID}", s.editPost)
		r.Delete("/products/{postID}", s.removePost)
		r.Post("/products/{postID}/purchase", s.purchase)

		r.Get("/transactions", s.listTransactions)
		r.Get("/transactions/{postID}/code", s.verificationCode)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *RestServer) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
