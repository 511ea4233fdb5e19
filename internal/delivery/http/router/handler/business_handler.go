package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kaelo/internal/delivery/http/response"
	"kaelo/internal/domain/entity"
	"kaelo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business listing handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(businessUC usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
		logger:     logger,
	}
}

type createBusinessRequest struct {
	Name               string                 `json:"name" validate:"required"`
	Description        string                 `json:"description"`
	Category           string                 `json:"category" validate:"required"`
	Location           []float64              `json:"location" validate:"required,len=2"`
	FullAddress        string                 `json:"full_address"`
	Hours              []entity.BusinessHours `json:"hours"`
	MinOrderAmount     float64                `json:"min_order_amount"`
	AdvanceNoticeHours int                    `json:"advance_notice_hours"`
}

// CreateBusiness lists a new business owned by the caller.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	ownerID, err := requireUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), &usecase.CreateBusinessInput{
		OwnerID:            ownerID,
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Location:           orb.Point{req.Location[0], req.Location[1]},
		FullAddress:        req.FullAddress,
		Hours:              req.Hours,
		MinOrderAmount:     req.MinOrderAmount,
		AdvanceNoticeHours: req.AdvanceNoticeHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// GetBusiness returns a single business listing.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	businessID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// ListActive returns active businesses, newest first.
func (h *BusinessHandler) ListActive(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	businesses, err := h.businessUC.ListActive(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "Businesses retrieved successfully")
}

// FindNearby returns active businesses within a radius of a point.
func (h *BusinessHandler) FindNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lat parameter")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lon parameter")
	}
	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)

	businesses, err := h.businessUC.FindNearby(c.Request().Context(), &usecase.NearbyBusinessInput{
		Lat:          lat,
		Lon:          lon,
		RadiusMeters: radius,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "Businesses retrieved successfully")
}
