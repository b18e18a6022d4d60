// Package http exposes the application's use cases over an echo HTTP API.
// Handlers translate requests into commands and queries; all business rules
// live behind them.
package http

import (
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateParcel   commands.CreateParcelCommandHandler
	AssignRider    commands.AssignRiderCommandHandler
	PickupParcel   commands.PickupParcelCommandHandler
	DeliverParcel  commands.DeliverParcelCommandHandler
	CashoutParcel  commands.CashoutParcelCommandHandler
	DeleteParcel   commands.DeleteParcelCommandHandler
	RecordPayment  commands.RecordPaymentCommandHandler
	ApplyRider     commands.ApplyRiderCommandHandler
	SetRiderStatus commands.SetRiderStatusCommandHandler
	RegisterUser   commands.RegisterUserCommandHandler
	SetUserRole    commands.SetUserRoleCommandHandler
	AppendTracking commands.AppendTrackingCommandHandler
}

// QueryHandlers bundles the read-side handlers.
type QueryHandlers struct {
	GetParcels            queries.GetParcelsQueryHandler
	GetParcel             queries.GetParcelQueryHandler
	DeliveryStatusCounts  queries.GetDeliveryStatusCountsQueryHandler
	PaymentStatusCounts   queries.GetPaymentStatusCountsQueryHandler
	RidersByStatus        queries.GetRidersByStatusQueryHandler
	AvailableRiders       queries.GetAvailableRidersQueryHandler
	RiderParcels          queries.GetRiderParcelsQueryHandler
	RiderCompletedParcels queries.GetRiderCompletedParcelsQueryHandler
	GetPayments           queries.GetPaymentsQueryHandler
	TrackingHistory       queries.GetTrackingHistoryQueryHandler
	UserRole              queries.GetUserRoleQueryHandler
	SearchUsers           queries.SearchUsersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	verifier ports.TokenVerifier
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(verifier ports.TokenVerifier, commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		verifier: verifier,
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes attaches all routes to the echo instance. The authenticate
// middleware resolves a bearer token when present; per-route guards decide
// whether an identity or the admin role is required.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", s.authenticate)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.GetParcels)
	api.GET("/parcels/delivery-status-counts", s.GetDeliveryStatusCounts)
	api.GET("/parcels/delivery-status-counts/:email", s.GetDeliveryStatusCounts)
	api.GET("/parcels/payment-status-counts/:email", s.GetPaymentStatusCounts)
	api.GET("/parcels/:id", s.GetParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.POST("/parcels/:id/assign", s.AssignRider)
	api.POST("/parcels/:id/pickup", s.PickupParcel)
	api.POST("/parcels/:id/deliver", s.DeliverParcel)
	api.POST("/parcels/:id/cashout", s.CashoutParcel)

	api.POST("/riders", s.ApplyRider)
	api.GET("/riders/pending", s.GetPendingRiders, s.requireAdmin)
	api.GET("/riders/active", s.GetActiveRiders, s.requireAdmin)
	api.GET("/riders/available", s.GetAvailableRiders, s.requireAdmin)
	api.PATCH("/riders/:id/status", s.SetRiderStatus, s.requireAdmin)
	api.GET("/riders/:email/parcels", s.GetRiderParcels, s.requireIdentity)
	api.GET("/riders/:email/parcels/completed", s.GetRiderCompletedParcels, s.requireIdentity)

	api.POST("/payments", s.RecordPayment)
	api.GET("/payments", s.GetPayments, s.requireIdentity)

	api.POST("/users", s.RegisterUser)
	api.GET("/users/search", s.SearchUsers, s.requireAdmin)
	api.GET("/users/:email/role", s.GetUserRole)
	api.PATCH("/users/:email/role", s.SetUserRole, s.requireAdmin)

	api.POST("/tracking", s.AppendTracking)
	api.GET("/tracking/:trackingId", s.GetTrackingHistory)
}
