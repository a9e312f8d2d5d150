// Package http exposes the order service REST API.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for placing and tracking orders.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	trackOrderHandler  queries.TrackOrderQueryHandler
	validate           *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		trackOrderHandler:  trackOrderHandler,
		validate:           validator.New(),
	}
}

// RegisterRoutes attaches the order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:trackingId", s.TrackOrder)
}

// OrderItemRequest is one requested line item of an order placement request.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
	Price     string `json:"price"      validate:"required"`
	SubTotal  string `json:"sub_total"  validate:"required"`
}

// AddressRequest is the delivery destination of an order placement request.
type AddressRequest struct {
	Street     string `json:"street"      validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	City       string `json:"city"        validate:"required"`
}

// CreateOrderRequest is the payload of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"   validate:"required,uuid4"`
	RestaurantID string             `json:"restaurant_id" validate:"required,uuid4"`
	Address      AddressRequest     `json:"address"       validate:"required"`
	Price        string             `json:"price"         validate:"required"`
	Items        []OrderItemRequest `json:"items"         validate:"required,min=1,dive"`
}

// CreateOrderResponse is the payload returned to a successfully placed order.
type CreateOrderResponse struct {
	OrderID    string `json:"order_id"`
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
}

// TrackOrderResponse is the payload of GET /api/v1/orders/:trackingId.
// FailureMessages is always present, as an empty array for orders that
// never took a cancellation path.
type TrackOrderResponse struct {
	TrackingID      string   `json:"tracking_id"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failure_messages"`
}

// ErrorResponse is the error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.validate.Struct(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := toCreateOrderCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, ports.ErrRestaurantNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Restaurant not found",
			})
		}

		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Failed to place order: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:    result.OrderID.String(),
		TrackingID: result.TrackingID.String(),
		Status:     result.Status.String(),
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId - returns the order status.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id",
		})
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id",
		})
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, ports.ErrOrderNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to track order",
		})
	}

	return ctx.JSON(http.StatusOK, toTrackOrderResponse(response))
}

func toTrackOrderResponse(response queries.TrackOrderQueryResponse) TrackOrderResponse {
	failureMessages := response.FailureMessages
	if failureMessages == nil {
		failureMessages = []string{}
	}

	return TrackOrderResponse{
		TrackingID:      response.TrackingID.String(),
		Status:          response.Status.String(),
		FailureMessages: failureMessages,
	}
}

func toCreateOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.CustomerIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	restaurantID, err := kernel.RestaurantIDFromString(request.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	address, err := kernel.NewAddress(request.Address.Street, request.Address.PostalCode, request.Address.City)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.CreateOrderItemData, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.ProductIDFromString(item.ProductID)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		itemPrice, itemErr := kernel.NewMoneyFromString(item.Price)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		subTotal, itemErr := kernel.NewMoneyFromString(item.SubTotal)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		items = append(items, commands.CreateOrderItemData{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     itemPrice,
			SubTotal:  subTotal,
		})
	}

	return commands.NewCreateOrderCommand(customerID, restaurantID, address, price, items)
}
