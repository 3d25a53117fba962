package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatorder/internal/handler/api"
	"chatorder/internal/handler/middleware"
	"chatorder/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	chatHandler *api.ChatHandler,
	fulfillmentHandler *api.FulfillmentHandler,
	ingredientHandler *api.IngredientHandler,
	catalogHandler *api.CatalogHandler,
	menuHandler *api.MenuHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, chatHandler, fulfillmentHandler, ingredientHandler, catalogHandler, menuHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CommerceCredentials())
}

func setupRoutes(
	engine *gin.Engine,
	chatHandler *api.ChatHandler,
	fulfillmentHandler *api.FulfillmentHandler,
	ingredientHandler *api.IngredientHandler,
	catalogHandler *api.CatalogHandler,
	menuHandler *api.MenuHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		chats := apiGroup.Group("/chat")
		{
			addRoutes(chats, []route{
				{Method: http.MethodPost, Path: "/sessions", Handler: chatHandler.StartSession},
				{Method: http.MethodPost, Path: "/sessions/:id/turns", Handler: chatHandler.AppendTurn},
				{Method: http.MethodGet, Path: "/sessions/:id/transcript", Handler: chatHandler.Transcript},
			})
		}

		fulfillments := apiGroup.Group("/fulfillment")
		{
			addRoutes(fulfillments, []route{
				{Method: http.MethodPost, Path: "/sessions/:id/begin", Handler: fulfillmentHandler.Begin},
				{Method: http.MethodPost, Path: "/sessions/:id/confirm", Handler: fulfillmentHandler.Confirm},
				{Method: http.MethodPost, Path: "/sessions/:id/customer", Handler: fulfillmentHandler.SubmitCustomer},
				{Method: http.MethodGet, Path: "/sessions/:id", Handler: fulfillmentHandler.State},
			})
		}

		ingredients := apiGroup.Group("/ingredients")
		{
			addRoutes(ingredients, []route{
				{Method: http.MethodPost, Path: "", Handler: ingredientHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: ingredientHandler.List},
				{Method: http.MethodGet, Path: "/:name", Handler: ingredientHandler.Get},
				{Method: http.MethodPut, Path: "/:name", Handler: ingredientHandler.Update},
				{Method: http.MethodPatch, Path: "/:name/quantity", Handler: ingredientHandler.UpdateQuantity},
				{Method: http.MethodPatch, Path: "/:name/shelf-life", Handler: ingredientHandler.UpdateShelfLife},
				{Method: http.MethodDelete, Path: "/:name", Handler: ingredientHandler.Delete},
			})
		}

		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.List},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.Upsert},
			})
		}

		menu := apiGroup.Group("/menu")
		{
			addRoutes(menu, []route{
				{Method: http.MethodPost, Path: "/recommend", Handler: menuHandler.Recommend},
				{Method: http.MethodPost, Path: "/reengineer", Handler: menuHandler.ReengineerDish},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
