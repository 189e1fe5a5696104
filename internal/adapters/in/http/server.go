// Package http exposes the freight operations over REST. Identity
// arrives as headers (X-Driver-ID, X-Shipper-ID, X-User-ID) set by the
// gateway in front of this service; the server trusts them as-is.
package http

import (
	"errors"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerDriverID  = "X-Driver-ID"
	headerShipperID = "X-Shipper-ID"
	headerUserID    = "X-User-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAnnouncementHandler   commands.CreateAnnouncementCommandHandler
	startAnnouncementHandler    commands.StartAnnouncementCommandHandler
	completeAnnouncementHandler commands.CompleteAnnouncementCommandHandler
	deleteAnnouncementHandler   commands.DeleteAnnouncementCommandHandler
	createDemandHandler         commands.CreateDemandCommandHandler
	updateDemandPackagesHandler commands.UpdateDemandPackagesCommandHandler
	changeDemandStatusHandler   commands.ChangeDemandStatusCommandHandler
	cancelDemandHandler         commands.CancelDemandCommandHandler

	// Query handlers
	getAllAnnouncementsHandler    queries.GetAllAnnouncementsQueryHandler
	getDriverAnnouncementsHandler queries.GetDriverAnnouncementsQueryHandler
	getShipperDemandsHandler      queries.GetShipperDemandsQueryHandler
	getDemandsByAnnouncement      queries.GetDemandsByAnnouncementQueryHandler
	getHistoryHandler             queries.GetHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createAnnouncementHandler commands.CreateAnnouncementCommandHandler,
	startAnnouncementHandler commands.StartAnnouncementCommandHandler,
	completeAnnouncementHandler commands.CompleteAnnouncementCommandHandler,
	deleteAnnouncementHandler commands.DeleteAnnouncementCommandHandler,
	createDemandHandler commands.CreateDemandCommandHandler,
	updateDemandPackagesHandler commands.UpdateDemandPackagesCommandHandler,
	changeDemandStatusHandler commands.ChangeDemandStatusCommandHandler,
	cancelDemandHandler commands.CancelDemandCommandHandler,
	getAllAnnouncementsHandler queries.GetAllAnnouncementsQueryHandler,
	getDriverAnnouncementsHandler queries.GetDriverAnnouncementsQueryHandler,
	getShipperDemandsHandler queries.GetShipperDemandsQueryHandler,
	getDemandsByAnnouncement queries.GetDemandsByAnnouncementQueryHandler,
	getHistoryHandler queries.GetHistoryQueryHandler,
) *Server {
	return &Server{
		createAnnouncementHandler:     createAnnouncementHandler,
		startAnnouncementHandler:      startAnnouncementHandler,
		completeAnnouncementHandler:   completeAnnouncementHandler,
		deleteAnnouncementHandler:     deleteAnnouncementHandler,
		createDemandHandler:           createDemandHandler,
		updateDemandPackagesHandler:   updateDemandPackagesHandler,
		changeDemandStatusHandler:     changeDemandStatusHandler,
		cancelDemandHandler:           cancelDemandHandler,
		getAllAnnouncementsHandler:    getAllAnnouncementsHandler,
		getDriverAnnouncementsHandler: getDriverAnnouncementsHandler,
		getShipperDemandsHandler:      getShipperDemandsHandler,
		getDemandsByAnnouncement:      getDemandsByAnnouncement,
		getHistoryHandler:             getHistoryHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/announcements", s.GetAnnouncements)
	api.POST("/announcements", s.CreateAnnouncement)
	api.GET("/announcements/mine", s.GetMyAnnouncements)
	api.POST("/announcements/:id/start", s.StartAnnouncement)
	api.POST("/announcements/:id/complete", s.CompleteAnnouncement)
	api.DELETE("/announcements/:id", s.DeleteAnnouncement)
	api.GET("/announcements/:id/demands", s.GetAnnouncementDemands)

	api.POST("/demands", s.CreateDemand)
	api.GET("/demands/mine", s.GetMyDemands)
	api.PUT("/demands/:id/packages", s.UpdateDemandPackages)
	api.POST("/demands/:id/status", s.ChangeDemandStatus)
	api.POST("/demands/:id/cancel", s.CancelDemand)

	api.GET("/history", s.GetHistory)
}

// ErrorDTO is the wire shape for failures.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DimensionsDTO is the wire shape for a length/width/height triple.
type DimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewAnnouncementDTO is the request body for publishing an offer.
type NewAnnouncementDTO struct {
	StartPoint    string        `json:"startPoint"`
	Waypoints     []string      `json:"waypoints"`
	Destination   string        `json:"destination"`
	MaxDimensions DimensionsDTO `json:"maxDimensions"`
	PackageTypes  []string      `json:"packageTypes"`
	Capacity      float64       `json:"capacity"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       *time.Time    `json:"endDate,omitempty"`
}

// NewPackageDTO is the wire shape for one manifest item.
type NewPackageDTO struct {
	Title       string  `json:"title"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	PackageType string  `json:"packageType"`
}

// NewDemandDTO is the request body for submitting a demand.
type NewDemandDTO struct {
	AnnouncementID string          `json:"announcementId"`
	Packages       []NewPackageDTO `json:"packages"`
}

// UpdatePackagesDTO is the request body for replacing a manifest.
type UpdatePackagesDTO struct {
	Packages []NewPackageDTO `json:"packages"`
}

// ChangeStatusDTO is the request body for a driver-side demand
// transition: "accepted", "in-transit" or "delivered".
type ChangeStatusDTO struct {
	Status string `json:"status"`
}

// IDResponseDTO echoes the identifier assigned to a created resource.
type IDResponseDTO struct {
	ID string `json:"id"`
}

// CreateAnnouncement handles POST /api/v1/announcements.
func (s *Server) CreateAnnouncement(ctx echo.Context) error {
	driverID, err := identityHeader(ctx, headerDriverID)
	if err != nil {
		return err
	}

	var body NewAnnouncementDTO
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	route, err := kernel.NewRoute(body.StartPoint, body.Waypoints, body.Destination)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	maxDims, err := kernel.NewDimensions(
		body.MaxDimensions.Length, body.MaxDimensions.Width, body.MaxDimensions.Height)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	announcementID := kernel.NewUUID()
	cmd, err := commands.NewCreateAnnouncementCommand(
		announcementID, driverID, route, maxDims,
		body.PackageTypes, body.Capacity, body.StartDate, body.EndDate)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.createAnnouncementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponseDTO{ID: announcementID.String()})
}

// StartAnnouncement handles POST /api/v1/announcements/:id/start.
func (s *Server) StartAnnouncement(ctx echo.Context) error {
	driverID, err := identityHeader(ctx, headerDriverID)
	if err != nil {
		return err
	}

	announcementID, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartAnnouncementCommand(announcementID, driverID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.startAnnouncementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAnnouncement handles POST /api/v1/announcements/:id/complete.
func (s *Server) CompleteAnnouncement(ctx echo.Context) error {
	driverID, err := identityHeader(ctx, headerDriverID)
	if err != nil {
		return err
	}

	announcementID, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteAnnouncementCommand(announcementID, driverID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.completeAnnouncementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAnnouncement handles DELETE /api/v1/announcements/:id. Every
// live demand against the offer is cancelled and refunded before the
// row disappears.
func (s *Server) DeleteAnnouncement(ctx echo.Context) error {
	driverID, err := identityHeader(ctx, headerDriverID)
	if err != nil {
		return err
	}

	announcementID, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteAnnouncementCommand(announcementID, driverID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.deleteAnnouncementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDemand handles POST /api/v1/demands.
func (s *Server) CreateDemand(ctx echo.Context) error {
	shipperID, err := identityHeader(ctx, headerShipperID)
	if err != nil {
		return err
	}

	var body NewDemandDTO
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	announcementID, err := kernel.UUIDFromString(body.AnnouncementID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid announcement id: "+err.Error())
	}

	packages, err := packagesFromDTO(body.Packages)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	demandID := kernel.NewUUID()
	cmd, err := commands.NewCreateDemandCommand(demandID, shipperID, announcementID, packages)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.createDemandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponseDTO{ID: demandID.String()})
}

// UpdateDemandPackages handles PUT /api/v1/demands/:id/packages.
func (s *Server) UpdateDemandPackages(ctx echo.Context) error {
	shipperID, err := identityHeader(ctx, headerShipperID)
	if err != nil {
		return err
	}

	demandID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body UpdatePackagesDTO
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	packages, err := packagesFromDTO(body.Packages)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	cmd, err := commands.NewUpdateDemandPackagesCommand(demandID, shipperID, packages)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.updateDemandPackagesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDemandStatus handles POST /api/v1/demands/:id/status.
func (s *Server) ChangeDemandStatus(ctx echo.Context) error {
	driverID, err := identityHeader(ctx, headerDriverID)
	if err != nil {
		return err
	}

	demandID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body ChangeStatusDTO
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	transition, err := commands.DemandTransitionFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeDemandStatusCommand(demandID, driverID, transition)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.changeDemandStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDemand handles POST /api/v1/demands/:id/cancel.
func (s *Server) CancelDemand(ctx echo.Context) error {
	shipperID, err := identityHeader(ctx, headerShipperID)
	if err != nil {
		return err
	}

	demandID, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelDemandCommand(demandID, shipperID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	if err := s.cancelDemandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAnnouncements handles GET /api/v1/announcements.
func (s *Server) GetAnnouncements(ctx echo.Context) error {
	query := queries.NewGetAllAnnouncementsQuery()

	offers, err := s.getAllAnnouncementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve announcements")
	}

	return ctx.JSON(http.StatusOK, announcementsToDTO(offers))
}

// GetMyAnnouncements handles GET /api/v1/announcements/mine.
func (s *Server) GetMyAnnouncements(ctx echo.Context) error {
	driverID, err := identityHeader(ctx, headerDriverID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDriverAnnouncementsQuery(driverID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	offers, err := s.getDriverAnnouncementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve announcements")
	}

	return ctx.JSON(http.StatusOK, announcementsToDTO(offers))
}

// GetMyDemands handles GET /api/v1/demands/mine.
func (s *Server) GetMyDemands(ctx echo.Context) error {
	shipperID, err := identityHeader(ctx, headerShipperID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipperDemandsQuery(shipperID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	demands, err := s.getShipperDemandsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve demands")
	}

	return ctx.JSON(http.StatusOK, demandsToDTO(demands))
}

// GetAnnouncementDemands handles GET /api/v1/announcements/:id/demands.
func (s *Server) GetAnnouncementDemands(ctx echo.Context) error {
	announcementID, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDemandsByAnnouncementQuery(announcementID)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	demands, err := s.getDemandsByAnnouncement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve demands")
	}

	return ctx.JSON(http.StatusOK, demandsToDTO(demands))
}

// GetHistory handles GET /api/v1/history?role=driver|shipper.
func (s *Server) GetHistory(ctx echo.Context) error {
	userID, err := identityHeader(ctx, headerUserID)
	if err != nil {
		return err
	}

	role, err := queries.HistoryRoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid role: "+err.Error())
	}

	query, err := queries.NewGetHistoryQuery(userID, role)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	demands, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve history")
	}

	return ctx.JSON(http.StatusOK, demandsToDTO(demands))
}

// identityHeader parses a UUID identity header, answering 401 when it is
// missing or malformed. The returned error is an echo.HTTPError, ready
// to bubble out of the handler.
func identityHeader(ctx echo.Context, header string) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(header)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, header+" header is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid "+header+" header")
	}

	return id, nil
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid id: "+err.Error())
	}

	return id, nil
}

// packagesFromDTO builds the package value objects from their wire shape.
func packagesFromDTO(dtos []NewPackageDTO) ([]demand.Package, error) {
	packages := make([]demand.Package, 0, len(dtos))
	for _, dto := range dtos {
		dims, err := kernel.NewDimensions(dto.Length, dto.Width, dto.Height)
		if err != nil {
			return nil, err
		}

		p, err := demand.NewPackage(dto.Title, dims, dto.Weight, dto.PackageType)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

// AnnouncementDTO is the wire shape for a transport offer.
type AnnouncementDTO struct {
	ID                string        `json:"id"`
	DriverID          string        `json:"driverId"`
	StartPoint        string        `json:"startPoint"`
	Waypoints         []string      `json:"waypoints"`
	Destination       string        `json:"destination"`
	MaxDimensions     DimensionsDTO `json:"maxDimensions"`
	PackageTypes      []string      `json:"packageTypes"`
	DeclaredCapacity  float64       `json:"declaredCapacity"`
	ReservedCapacity  float64       `json:"reservedCapacity"`
	AvailableCapacity float64       `json:"availableCapacity"`
	StartDate         time.Time     `json:"startDate"`
	EndDate           *time.Time    `json:"endDate,omitempty"`
	Status            string        `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
}

func announcementsToDTO(offers []queries.AnnouncementResponse) []AnnouncementDTO {
	response := make([]AnnouncementDTO, len(offers))
	for i, offer := range offers {
		response[i] = AnnouncementDTO{
			ID:          offer.ID.String(),
			DriverID:    offer.DriverID.String(),
			StartPoint:  offer.StartPoint,
			Waypoints:   offer.Waypoints,
			Destination: offer.Destination,
			MaxDimensions: DimensionsDTO{
				Length: offer.MaxLength,
				Width:  offer.MaxWidth,
				Height: offer.MaxHeight,
			},
			PackageTypes:      offer.PackageTypes,
			DeclaredCapacity:  offer.DeclaredCapacity,
			ReservedCapacity:  offer.ReservedCapacity,
			AvailableCapacity: offer.AvailableCapacity,
			StartDate:         offer.StartDate,
			EndDate:           offer.EndDate,
			Status:            offer.Status,
			CreatedAt:         offer.CreatedAt,
		}
	}

	return response
}

// PackageDTO is the wire shape for a manifest item in responses.
type PackageDTO struct {
	Title       string  `json:"title"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	PackageType string  `json:"packageType"`
	Volume      float64 `json:"volume"`
}

// DemandDTO is the wire shape for a capacity demand.
type DemandDTO struct {
	ID             string       `json:"id"`
	ShipperID      string       `json:"shipperId"`
	AnnouncementID string       `json:"announcementId"`
	StartPoint     string       `json:"startPoint"`
	Destination    string       `json:"destination"`
	Status         string       `json:"status"`
	Volume         float64      `json:"volume"`
	Packages       []PackageDTO `json:"packages"`
	CreatedAt      time.Time    `json:"createdAt"`
	DeliveredAt    *time.Time   `json:"deliveredAt,omitempty"`
}

func demandsToDTO(demands []queries.DemandResponse) []DemandDTO {
	response := make([]DemandDTO, len(demands))
	for i, d := range demands {
		packages := make([]PackageDTO, len(d.Packages))
		for j, p := range d.Packages {
			packages[j] = PackageDTO{
				Title:       p.Title,
				Length:      p.Length,
				Width:       p.Width,
				Height:      p.Height,
				Weight:      p.Weight,
				PackageType: p.PackageType,
				Volume:      p.Volume,
			}
		}

		response[i] = DemandDTO{
			ID:             d.ID.String(),
			ShipperID:      d.ShipperID.String(),
			AnnouncementID: d.AnnouncementID.String(),
			StartPoint:     d.StartPoint,
			Destination:    d.Destination,
			Status:         d.Status,
			Volume:         d.Volume,
			Packages:       packages,
			CreatedAt:      d.CreatedAt,
			DeliveredAt:    d.DeliveredAt,
		}
	}

	return response
}

// mapCommandError translates domain and application failures into HTTP
// statuses. Ledger conflicts that survive the handler's retries surface
// as 409 so the client re-reads and resubmits.
func mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrNotOwner):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, ports.ErrVersionConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, announcement.ErrInsufficientCapacity),
		errors.Is(err, announcement.ErrAnnouncementClosed),
		errors.Is(err, demand.ErrAlreadyCancelled),
		errors.Is(err, demand.ErrAlreadyDelivered),
		errors.Is(err, demand.ErrManifestIsFrozen),
		errors.Is(err, commands.ErrPackageDoesNotFit):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err.Error())
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorDTO{Code: code, Message: message})
}
