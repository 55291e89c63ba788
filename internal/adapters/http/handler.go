package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dabron/scythe/internal/adapters/random"
	"github.com/dabron/scythe/internal/adapters/render"
	"github.com/dabron/scythe/internal/app"
	"github.com/dabron/scythe/internal/domain"
)

const defaultPlayers = 5

type Handler struct {
	svc     *app.SetupService
	metrics http.Handler
}

// NewHandler builds the routes. metrics may be nil to skip /metrics.
func NewHandler(svc *app.SetupService, metrics http.Handler) *Handler {
	return &Handler{svc: svc, metrics: metrics}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/setup", h.Setup)
	if h.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.metrics))
	}
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Setup(c echo.Context) error {
	req := app.SetupRequest{Players: defaultPlayers}

	if raw := c.QueryParam("players"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "players must be an integer"})
		}
		req.Players = n
	}

	flags := []struct {
		param string
		dst   *bool
	}{
		{"invaders", &req.Features.InvadersFromAfar},
		{"wind_gambit", &req.Features.WindGambit},
		{"fenris", &req.Features.RiseOfFenris},
		{"modular", &req.Features.ModularBoard},
	}
	for _, f := range flags {
		raw := c.QueryParam(f.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("%s must be a boolean", f.param)})
		}
		*f.dst = v
	}

	var (
		seed *uint64
		rng  domain.RNG = random.New()
	)
	if raw := c.QueryParam("seed"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seed must be an unsigned integer"})
		}
		seed = &v
		rng = random.NewSeeded(v)
	}

	start := time.Now()
	setup, err := h.svc.Generate(c.Request().Context(), req, rng)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, SetupResponse{
		Setup: render.NewDocument(setup),
		Meta: MetaResp{
			RequestID: requestID,
			Seed:      seed,
			LatencyMS: time.Since(start).Milliseconds(),
		},
	})
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidPlayerCount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
