package http

import (
	"net/http"

	gql "github.com/garisonmike/alx-backend-graphql-crm/internal/delivery/v1/graphql"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init вешает GraphQL-эндпоинт и health-проверку.
// GraphiQL включён: схема одновременно служит документацией API.
func (r *Router) Init(resolver *gql.Resolver) error {
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		return err
	}

	r.router.Use(middleware.Recoverer)

	r.router.Handle("/graphql", newGraphQLHandler(&schema))
	r.router.Get("/health", healthHandler)

	return nil
}

func newGraphQLHandler(schema *graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
