package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shorty/internal/domain"
	"shorty/internal/service"
	"shorty/internal/validation"
)

const notFoundBody = "Not found."

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

var (
	errInvalidBody   = errorResponse{Error: true, Message: "Invalid request body."}
	errInvalidURL    = errorResponse{Error: true, Message: "Invalid URL."}
	errInvalidStatus = errorResponse{Error: true, Message: "Invalid status."}
	errInvalidSlug   = errorResponse{Error: true, Message: "Invalid slug."}
	respHealthOK     = healthResponse{Status: "ok"}
	respUnavailable  = healthResponse{Status: "unavailable"}
)

type Handler struct {
	links        LinkService
	validator    LinkValidator
	health       HealthChecker
	logger       *slog.Logger
	publicOrigin string
}

// New builds the HTTP handler. When publicOrigin is empty the short URL is
// built from the scheme and host of each request.
func New(
	links LinkService,
	validator LinkValidator,
	health HealthChecker,
	logger *slog.Logger,
	publicOrigin string,
) *Handler {
	return &Handler{
		links:        links,
		validator:    validator,
		health:       health,
		logger:       logger,
		publicOrigin: strings.TrimRight(publicOrigin, "/"),
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	e.POST("/links", h.CreateLink)
	e.GET("/:slug", h.Resolve)
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		h.logger.Warn("store ping failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, respUnavailable)
	}
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	// The body is JSON whatever Content-Type says; browsers send string
	// bodies as text/plain.
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		h.logger.Debug("failed to decode request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	in, err := h.validator.Validate(req)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.links.Create(c.Request().Context(), in, h.origin(c))
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, errInvalidSlug)
		}
		h.logger.Error("failed to create link", slog.String("error", err.Error()))
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Resolve(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return c.String(http.StatusNotFound, notFoundBody)
	}

	link, err := h.links.Resolve(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.String(http.StatusNotFound, notFoundBody)
		}
		h.logger.Error("failed to resolve link",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		return err
	}

	return c.Redirect(link.Status, link.URL)
}

func (h *Handler) origin(c echo.Context) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}
	return c.Scheme() + "://" + c.Request().Host
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrInvalidURL):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, errInvalidStatus)
	case errors.Is(err, validation.ErrInvalidSlug):
		return c.JSON(http.StatusBadRequest, errInvalidSlug)
	default:
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
}
