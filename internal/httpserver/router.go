package httpserver

import (
	"context"
	"errors"
	"time"

	"ethela-storefront/internal/domain"
	identitysvc "ethela-storefront/internal/service/identity"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type catalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type blogService interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	GetPublished(ctx context.Context, id string) (*domain.BlogPost, error)
	Create(ctx context.Context, b domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, b domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type identityService interface {
	SignUp(ctx context.Context, in identitysvc.SignUpInput) (*domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	Current(ctx context.Context, token string) (*domain.Principal, error)
	SignOut(ctx context.Context, token string) error
}

type verificationService interface {
	Verify(ctx context.Context, code string) (*domain.Certificate, error)
}

type contactService interface {
	Submit(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error)
}

// Deps are the services the router dispatches to. Verification and Contact are optional.
type Deps struct {
	Catalog      catalogService
	Blogs        blogService
	Identity     identityService
	Verification verificationService
	Contact      contactService
}

// Options tune router behaviour.
type Options struct {
	CORSAllowOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Blogs == nil || deps.Identity == nil {
		return nil, errors.New("httpserver: catalog, blog and identity services are required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.CustomRecovery(recoveryHandler(logger)), cors.New(corsConfig(opts.CORSAllowOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	api.Use(h.authenticate())

	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/blogs", h.listPublishedBlogs)
	api.GET("/blogs/:id", h.getPublishedBlog)

	auth := api.Group("/auth")
	auth.POST("/signup", h.signUp)
	auth.POST("/signin", h.signIn)
	auth.POST("/signout", h.signOut)
	auth.GET("/session", requirePrincipal(), h.currentSession)

	admin := api.Group("/admin", requirePrincipal(), requireAdmin())
	admin.GET("/products", h.adminListProducts)
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	admin.GET("/blogs", h.adminListBlogs)
	admin.GET("/blogs/:id", h.adminGetBlog)
	admin.POST("/blogs", h.createBlog)
	admin.PUT("/blogs/:id", h.updateBlog)
	admin.DELETE("/blogs/:id", h.deleteBlog)

	if deps.Verification != nil {
		api.GET("/verify/:code", h.verify)
	}
	if deps.Contact != nil {
		api.POST("/contact", h.contact)
	}

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

type handlers struct {
	deps   Deps
	logger *zap.Logger
}
