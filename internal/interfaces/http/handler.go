// @title           Stock Screener API
// @version         1.0
// @description     Two-stage market screen over the Eastmoney quote API

// @host      localhost:8080
// @BasePath  /api/v1

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appinterfaces "stockscreener/internal/application/interfaces"
	"stockscreener/internal/application/service/screener"
	"stockscreener/internal/domain/interfaces"
	"stockscreener/internal/infrastructure/eastmoney"
)

const apiBasePath = "/api/v1"

var (
	errMissingCode    = errors.New("code query param required")
	errUnknownSource  = errors.New("unknown source, want em or ak")
	errNoSecondary    = errors.New("secondary source not configured")
	errLimitNegative  = errors.New("limit must not be negative")
	errBoundsInverted = errors.New("pct_min must be below pct_max")
)

type Handler struct {
	router    *gin.Engine
	screener  *screener.Service
	secondary interfaces.SecondaryQuote
	defaults  screener.Params
	cache     *redis.Client
	cacheTTL  time.Duration
	log       *logrus.Logger
}

var _ appinterfaces.HTTPHandler = (*Handler)(nil)

// Options wires the optional collaborators of the handler.
type Options struct {
	Secondary      interfaces.SecondaryQuote
	Cache          *redis.Client
	CacheTTL       time.Duration
	AllowedOrigins []string
}

func NewHandler(svc *screener.Service, defaults screener.Params, log *logrus.Logger, opts Options) *Handler {
	if log == nil {
		log = logrus.New()
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	if len(opts.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = opts.AllowedOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	h := &Handler{
		router:    router,
		screener:  svc,
		secondary: opts.Secondary,
		defaults:  defaults,
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		log:       log,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.router.GET("/health", h.health)
	h.router.GET("/", h.root)
	h.router.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	api := h.router.Group(apiBasePath)
	stock := api.Group("/stock")
	if h.cache != nil {
		stock.Use(h.cacheMiddleware())
	}
	stock.GET("", h.getStock)

	api.GET("/screen", h.screen)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "stock screener API is running"})
}

// screen runs the two-stage market screen
// @Summary      Screen the market
// @Description  Fetch the full listing, filter by percent-change bounds, volume ratio and turnover rate, then enrich survivors and filter by bid/ask imbalance
// @Tags         screen
// @Produce      json
// @Param        pct_min        query  number  false  "strict lower percent-change bound"  default(2)
// @Param        pct_max        query  number  false  "strict upper percent-change bound"  default(5)
// @Param        vol_ratio_min  query  number  false  "strict volume-ratio minimum"        default(5)
// @Param        turnover_min   query  number  false  "strict turnover-rate minimum"       default(1)
// @Param        wb_min         query  number  false  "imbalance minimum"                  default(20)
// @Param        concurrency    query  int     false  "max in-flight upstream requests (1-64)"
// @Param        limit          query  int     false  "max candidates enriched, 0 = all"
// @Param        page_size      query  int     false  "listing page size (100-5000)"
// @Success      200  {object}  market.ScreenResult
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /screen [get]
func (h *Handler) screen(c *gin.Context) {
	params, err := h.screenParams(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	result, err := h.screener.Screen(c.Request.Context(), params)
	if err != nil {
		writeError(c, upstreamStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) screenParams(c *gin.Context) (screener.Params, error) {
	p := h.defaults
	var err error
	if p.PctMin, err = floatQuery(c, "pct_min", p.PctMin); err != nil {
		return p, err
	}
	if p.PctMax, err = floatQuery(c, "pct_max", p.PctMax); err != nil {
		return p, err
	}
	if p.VolRatioMin, err = floatQuery(c, "vol_ratio_min", p.VolRatioMin); err != nil {
		return p, err
	}
	if p.TurnoverMin, err = floatQuery(c, "turnover_min", p.TurnoverMin); err != nil {
		return p, err
	}
	if p.WbMin, err = floatQuery(c, "wb_min", p.WbMin); err != nil {
		return p, err
	}
	if p.Concurrency, err = intQuery(c, "concurrency", p.Concurrency); err != nil {
		return p, err
	}
	if p.Limit, err = intQuery(c, "limit", p.Limit); err != nil {
		return p, err
	}
	if p.PageSize, err = intQuery(c, "page_size", p.PageSize); err != nil {
		return p, err
	}
	if p.Limit < 0 {
		return p, errLimitNegative
	}
	if p.PctMin >= p.PctMax {
		return p, errBoundsInverted
	}
	return p, nil
}

// getStock looks up a single symbol
// @Summary      Get one stock
// @Description  Single-symbol passthrough lookup against the primary (em) or secondary (ak) source
// @Tags         stock
// @Produce      json
// @Param        code      query  string  true   "symbol, e.g. 600519"
// @Param        source    query  string  false  "em or ak"  default(em)
// @Param        raw_only  query  bool    false  "return the raw provider payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /stock [get]
func (h *Handler) getStock(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		writeError(c, http.StatusBadRequest, errMissingCode)
		return
	}
	source := c.DefaultQuery("source", "em")
	rawOnly := c.Query("raw_only") == "true" || c.Query("raw_only") == "1"

	switch source {
	case "em":
		if rawOnly {
			raw, err := h.screener.LookupRaw(c.Request.Context(), code)
			if err != nil {
				writeError(c, upstreamStatus(err), err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"source": "em", "code": code, "data": raw})
			return
		}
		detail, err := h.screener.Lookup(c.Request.Context(), code)
		if err != nil {
			writeError(c, upstreamStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"source": "em", "code": code, "data": detail})
	case "ak":
		if h.secondary == nil {
			writeError(c, http.StatusBadRequest, errNoSecondary)
			return
		}
		data, err := h.secondary.Quote(c.Request.Context(), code)
		if err != nil {
			writeError(c, http.StatusBadGateway, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"source": "ak", "code": code, "data": data})
	default:
		writeError(c, http.StatusBadRequest, errUnknownSource)
	}
}

// Helpers

func upstreamStatus(err error) int {
	if errors.Is(err, eastmoney.ErrUpstream) || errors.Is(err, eastmoney.ErrMalformed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func floatQuery(c *gin.Context, key string, fallback float64) (float64, error) {
	value := c.Query(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, value)
	}
	return parsed, nil
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	value := c.Query(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, value)
	}
	return parsed, nil
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
