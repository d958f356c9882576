// Package http exposes the marketplace operations over a JSON REST API built
// on Echo. Handlers translate between wire DTOs and commands/queries and map
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ruralcart/internal/core/application/usecases/commands"
	"ruralcart/internal/core/application/usecases/queries"
	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	transferOrderHandler      commands.TransferOrderCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler
	registerDriverHandler     commands.RegisterDriverCommandHandler
	declareAvailability       commands.DeclareAvailabilityCommandHandler
	removeAvailability        commands.RemoveAvailabilityCommandHandler

	// Query handlers
	getBuyerOrdersHandler   queries.GetBuyerOrdersQueryHandler
	getSellerOrdersHandler  queries.GetSellerOrdersQueryHandler
	getDriverOrdersHandler  queries.GetDriverOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getDriverHandler        queries.GetDriverQueryHandler
	getAvailabilityHandler  queries.GetAvailabilityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	transferOrderHandler commands.TransferOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	declareAvailability commands.DeclareAvailabilityCommandHandler,
	removeAvailability commands.RemoveAvailabilityCommandHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
	getDriverOrdersHandler queries.GetDriverOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getDriverHandler queries.GetDriverQueryHandler,
	getAvailabilityHandler queries.GetAvailabilityQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		transferOrderHandler:    transferOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		registerDriverHandler:   registerDriverHandler,
		declareAvailability:     declareAvailability,
		removeAvailability:      removeAvailability,
		getBuyerOrdersHandler:   getBuyerOrdersHandler,
		getSellerOrdersHandler:  getSellerOrdersHandler,
		getDriverOrdersHandler:  getDriverOrdersHandler,
		getOrderHandler:         getOrderHandler,
		getDriverHandler:        getDriverHandler,
		getAvailabilityHandler:  getAvailabilityHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:order_id", s.GetOrder)
	api.POST("/orders/:service/:order_id/accept", s.AcceptOrder)
	api.POST("/orders/:order_id/transfer", s.TransferOrder)
	api.POST("/orders/:service/:order_id/complete", s.CompleteOrder)

	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers/:driver_id", s.GetDriver)
	api.GET("/drivers/user/:user_id", s.GetDriverByUser)
	api.GET("/drivers/phone/:phone", s.GetDriverByPhone)

	api.POST("/drivers/times", s.DeclareAvailability)
	api.GET("/drivers/times", s.GetAvailability)
	api.GET("/drivers/:driver_id/times", s.GetDriverAvailability)
	api.DELETE("/drivers/times/:id", s.RemoveAvailability)

	e.GET("/health", s.Health)
}

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PartyRequest identifies a buyer or seller in a request body.
type PartyRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ItemRequest is one line item of an order-creation request.
type ItemRequest struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Pickup   string  `json:"pickup"`
	Drop     string  `json:"drop"`
	Category string  `json:"category"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Service  string        `json:"service"`
	Buyer    PartyRequest  `json:"buyer"`
	Seller   *PartyRequest `json:"seller,omitempty"`
	Location string        `json:"location"`
	IsUrgent bool          `json:"is_urgent"`
	Note     string        `json:"note"`
	Items    []ItemRequest `json:"items"`
}

// CreatedResponse carries the identifier assigned to a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// AcceptOrderRequest is the body of POST /orders/:service/:order_id/accept.
type AcceptOrderRequest struct {
	DriverID int64 `json:"driver_id"`
}

// TransferOrderRequest is the body of POST /orders/:order_id/transfer.
type TransferOrderRequest struct {
	CurrentDriverID int64  `json:"current_driver_id"`
	NewDriverPhone  string `json:"new_driver_phone"`
}

// CompleteOrderRequest is the body of POST /orders/:service/:order_id/complete.
type CompleteOrderRequest struct {
	DriverID int64 `json:"driver_id"`
}

// RegisterDriverRequest is the body of POST /drivers.
type RegisterDriverRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

// DeclareAvailabilityRequest is the body of POST /drivers/times.
type DeclareAvailabilityRequest struct {
	DriverID  int64    `json:"driver_id"`
	Date      string   `json:"date"` // "2006-01-02"
	StartTime string   `json:"start_time"`
	Locations []string `json:"locations"`
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Place a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to place"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	service, err := order.ParseService(req.Service)
	if err != nil {
		return respondError(ctx, err)
	}

	var seller *order.Party
	if req.Seller != nil {
		seller = &order.Party{ID: req.Seller.ID, Name: req.Seller.Name, Phone: req.Seller.Phone}
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
			Pickup:   item.Pickup,
			Drop:     item.Drop,
			Category: item.Category,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		service,
		order.Party{ID: req.Buyer.ID, Name: req.Buyer.Name, Phone: req.Buyer.Phone},
		seller,
		req.Location,
		req.IsUrgent,
		req.Note,
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetOrders handles GET /api/v1/orders - role-scoped order projections.
//
//	@Summary	List orders for a role
//	@Tags		orders
//	@Produce	json
//	@Param		role		query		string	true	"buyer, seller, or driver"
//	@Param		buyer_id	query		int		false	"Buyer id (role=buyer)"
//	@Param		seller_id	query		int		false	"Seller id (role=seller)"
//	@Param		driver_id	query		int		false	"Driver id (role=driver)"
//	@Param		service		query		string	false	"Optional service filter (role=driver)"
//	@Success	200			{array}		queries.OrderView
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/v1/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	switch ctx.QueryParam("role") {
	case "buyer":
		buyerID, err := parseID(ctx.QueryParam("buyer_id"))
		if err != nil {
			return badRequest(ctx, "Invalid buyer_id")
		}
		query, err := queries.NewGetBuyerOrdersQuery(buyerID)
		if err != nil {
			return respondError(ctx, err)
		}
		views, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, views)

	case "seller":
		sellerID, err := parseID(ctx.QueryParam("seller_id"))
		if err != nil {
			return badRequest(ctx, "Invalid seller_id")
		}
		query, err := queries.NewGetSellerOrdersQuery(sellerID)
		if err != nil {
			return respondError(ctx, err)
		}
		views, err := s.getSellerOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, views)

	case "driver":
		driverID, err := parseID(ctx.QueryParam("driver_id"))
		if err != nil {
			return badRequest(ctx, "Invalid driver_id")
		}
		var service *order.Service
		if raw := ctx.QueryParam("service"); raw != "" {
			parsed, parseErr := order.ParseService(raw)
			if parseErr != nil {
				return respondError(ctx, parseErr)
			}
			service = &parsed
		}
		query, err := queries.NewGetDriverOrdersQuery(driverID, service)
		if err != nil {
			return respondError(ctx, err)
		}
		views, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, views)

	default:
		return badRequest(ctx, "role must be buyer, seller, or driver")
	}
}

// GetOrder handles GET /api/v1/orders/:order_id.
//
//	@Summary	Get one order with its custody history
//	@Tags		orders
//	@Produce	json
//	@Param		order_id	path		int	true	"Order id"
//	@Success	200			{object}	queries.GetOrderQueryResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/api/v1/orders/{order_id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// AcceptOrder handles POST /api/v1/orders/:service/:order_id/accept.
//
//	@Summary	Accept an unclaimed order
//	@Tags		orders
//	@Accept		json
//	@Param		service		path	string				true	"Order service"
//	@Param		order_id	path	int					true	"Order id"
//	@Param		body		body	AcceptOrderRequest	true	"Claiming driver"
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/v1/orders/{service}/{order_id}/accept [post]
func (s *Server) AcceptOrder(ctx echo.Context) error {
	service, err := order.ParseService(ctx.Param("service"))
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AcceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, req.DriverID, service)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// TransferOrder handles POST /api/v1/orders/:order_id/transfer.
//
//	@Summary	Hand custody of an accepted order to another driver
//	@Tags		orders
//	@Accept		json
//	@Param		order_id	path	int						true	"Order id"
//	@Param		body		body	TransferOrderRequest	true	"Transfer details"
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/v1/orders/{order_id}/transfer [post]
func (s *Server) TransferOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransferOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransferOrderCommand(orderID, req.CurrentDriverID, req.NewDriverPhone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transferOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles POST /api/v1/orders/:service/:order_id/complete.
//
//	@Summary	Complete an accepted order
//	@Tags		orders
//	@Accept		json
//	@Param		service		path	string					true	"Order service"
//	@Param		order_id	path	int						true	"Order id"
//	@Param		body		body	CompleteOrderRequest	true	"Completing driver"
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/v1/orders/{service}/{order_id}/complete [post]
func (s *Server) CompleteOrder(ctx echo.Context) error {
	service, err := order.ParseService(ctx.Param("service"))
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CompleteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, req.DriverID, service)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterDriver handles POST /api/v1/drivers.
//
//	@Summary	Register a driver profile
//	@Tags		drivers
//	@Accept		json
//	@Produce	json
//	@Param		driver	body		RegisterDriverRequest	true	"Driver to register"
//	@Success	201		{object}	CreatedResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/v1/drivers [post]
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterDriverCommand(req.UserID, req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetDriver handles GET /api/v1/drivers/:driver_id.
//
//	@Summary	Get a driver by id
//	@Tags		drivers
//	@Produce	json
//	@Param		driver_id	path		int	true	"Driver id"
//	@Success	200			{object}	queries.GetDriverQueryResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/api/v1/drivers/{driver_id} [get]
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("driver_id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetDriverQueryByID(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetDriverByUser handles GET /api/v1/drivers/user/:user_id.
//
//	@Summary	Get the driver profile owned by a user
//	@Tags		drivers
//	@Produce	json
//	@Param		user_id	path		int	true	"Owning user id"
//	@Success	200		{object}	queries.GetDriverQueryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/drivers/user/{user_id} [get]
func (s *Server) GetDriverByUser(ctx echo.Context) error {
	userID, err := parseID(ctx.Param("user_id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetDriverQueryByUserID(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetDriverByPhone handles GET /api/v1/drivers/phone/:phone.
//
//	@Summary	Resolve a driver by phone number
//	@Tags		drivers
//	@Produce	json
//	@Param		phone	path		string	true	"Driver phone"
//	@Success	200		{object}	queries.GetDriverQueryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/drivers/phone/{phone} [get]
func (s *Server) GetDriverByPhone(ctx echo.Context) error {
	query, err := queries.NewGetDriverQueryByPhone(ctx.Param("phone"))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// DeclareAvailability handles POST /api/v1/drivers/times.
//
//	@Summary	Publish a delivery window
//	@Tags		drivers
//	@Accept		json
//	@Produce	json
//	@Param		window	body		DeclareAvailabilityRequest	true	"Window to publish"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/drivers/times [post]
func (s *Server) DeclareAvailability(ctx echo.Context) error {
	var req DeclareAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	cmd, err := commands.NewDeclareAvailabilityCommand(req.DriverID, date, req.StartTime, req.Locations)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.declareAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetAvailability handles GET /api/v1/drivers/times.
//
//	@Summary	Browse the availability board
//	@Tags		drivers
//	@Produce	json
//	@Success	200	{array}	queries.GetAvailabilityQueryResponse
//	@Router		/api/v1/drivers/times [get]
func (s *Server) GetAvailability(ctx echo.Context) error {
	query, err := queries.NewGetAvailabilityQuery(nil)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetDriverAvailability handles GET /api/v1/drivers/:driver_id/times.
//
//	@Summary	List one driver's delivery windows
//	@Tags		drivers
//	@Produce	json
//	@Param		driver_id	path	int	true	"Driver id"
//	@Success	200	{array}	queries.GetAvailabilityQueryResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/api/v1/drivers/{driver_id}/times [get]
func (s *Server) GetDriverAvailability(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("driver_id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetAvailabilityQuery(&driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// RemoveAvailability handles DELETE /api/v1/drivers/times/:id.
//
//	@Summary	Withdraw a delivery window
//	@Tags		drivers
//	@Param		id	path	int	true	"Window id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/drivers/times/{id} [delete]
func (s *Server) RemoveAvailability(ctx echo.Context) error {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid window id")
	}

	cmd, err := commands.NewRemoveAvailabilityCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto HTTP status codes. Anything
// outside the known taxonomy is a 500 with a generic message so internals do
// not leak to callers.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
