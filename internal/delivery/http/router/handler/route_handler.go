package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kaelo/internal/delivery/http/response"
	"kaelo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// RouteHandler holds dependencies for route lifecycle and reading handlers.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler, injected by Fx.
func NewRouteHandler(routeUC usecase.RouteUsecase, logger *slog.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

type routeRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Path        [][]float64 `json:"path" validate:"required,min=2"`
	DistanceKm  float64     `json:"distance_km"`
	Difficulty  string      `json:"difficulty"`
	Tags        []string    `json:"tags"`
	Price       float64     `json:"price"`
	IsFree      bool        `json:"is_free"`
}

type waypointRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Location    []float64 `json:"location" validate:"required,len=2"`
}

// lineString converts a raw [lon, lat] coordinate list to geometry.
// Pairs with the wrong arity are dropped rather than guessed at.
func lineString(coords [][]float64) orb.LineString {
	path := make(orb.LineString, 0, len(coords))
	for _, coord := range coords {
		if len(coord) != 2 {
			continue
		}
		path = append(path, orb.Point{coord[0], coord[1]})
	}

	return path
}

// CreateRoute creates a new draft route owned by the caller.
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	creatorID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req routeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	route, err := h.routeUC.CreateRoute(c.Request().Context(), &usecase.CreateRouteInput{
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		Path:        lineString(req.Path),
		DistanceKm:  req.DistanceKm,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Price:       req.Price,
		IsFree:      req.IsFree,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, route, "Route created successfully")
}

// UpdateRoute modifies a draft route owned by the caller.
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	creatorID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req routeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	route, err := h.routeUC.UpdateRoute(c.Request().Context(), &usecase.UpdateRouteInput{
		RouteID:     routeID,
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		Path:        lineString(req.Path),
		DistanceKm:  req.DistanceKm,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Price:       req.Price,
		IsFree:      req.IsFree,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "Route updated successfully")
}

// SubmitForReview moves the caller's draft route into moderation.
func (h *RouteHandler) SubmitForReview(c echo.Context) error {
	creatorID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.routeUC.SubmitForReview(c.Request().Context(), routeID, creatorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Route submitted for review")
}

// Publish approves an in-review route onto the marketplace.
func (h *RouteHandler) Publish(c echo.Context) error {
	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.routeUC.Publish(c.Request().Context(), routeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Route published")
}

// Reject turns down an in-review route.
func (h *RouteHandler) Reject(c echo.Context) error {
	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.routeUC.Reject(c.Request().Context(), routeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Route rejected")
}

// Archive withdraws the caller's published route from the marketplace.
func (h *RouteHandler) Archive(c echo.Context) error {
	creatorID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.routeUC.Archive(c.Request().Context(), routeID, creatorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Route archived")
}

// GetRoute returns the route as the viewer is allowed to see it. Anonymous
// viewers and non-buyers get metadata only.
func (h *RouteHandler) GetRoute(c echo.Context) error {
	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.routeUC.GetRoute(c.Request().Context(), routeID, viewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Route retrieved successfully")
}

// ListPublished returns marketplace listings, newest first.
func (h *RouteHandler) ListPublished(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	routes, err := h.routeUC.ListPublished(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, routes, "Routes retrieved successfully")
}

// ListMine returns all routes authored by the caller, drafts included.
func (h *RouteHandler) ListMine(c echo.Context) error {
	creatorID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	routes, err := h.routeUC.ListByCreator(c.Request().Context(), creatorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, routes, "Routes retrieved successfully")
}

// AppendWaypoint adds a waypoint to the end of the caller's route.
func (h *RouteHandler) AppendWaypoint(c echo.Context) error {
	creatorID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req waypointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid waypoint input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	waypoint, err := h.routeUC.AppendWaypoint(c.Request().Context(), &usecase.AppendWaypointInput{
		RouteID:     routeID,
		CreatorID:   creatorID,
		Name:        req.Name,
		Description: req.Description,
		Location:    orb.Point{req.Location[0], req.Location[1]},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, waypoint, "Waypoint added successfully")
}

// ShareQR renders a QR code PNG deep-linking to a published route.
func (h *RouteHandler) ShareQR(c echo.Context) error {
	routeID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.routeUC.GenerateShareQR(c.Request().Context(), routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
