package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ShippingService interface {
	Quote(ctx context.Context, s *entities.Shipment, urgent bool) (entities.Quotes, error)
	LodgeShipment(ctx context.Context, s *entities.Shipment) error
	GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error)
	DeleteShipment(ctx context.Context, shipmentID string) (bool, error)
	GetLabels(ctx context.Context, shipmentIDs []string, lt entities.LabelType) (string, error)
	CreateOrder(ctx context.Context, shipmentIDs []string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ShippingService
}

func NewHTTPHandler(logger *slog.Logger, svc ShippingService) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(utils.JSONTagName)
	validate.RegisterStructValidation(lodgeRequestRules, LodgeRequest{})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/quotes", h.Quote)
	r.Post("/shipments", h.LodgeShipment)
	r.Get("/shipments/{shipment_id}", h.GetShipment)
	r.Delete("/shipments/{shipment_id}", h.DeleteShipment)
	r.Post("/labels", h.GetLabels)
	r.Post("/orders", h.CreateOrder)
}

// Quote возвращает стоимость доставки.
// @Summary      Рассчитать стоимость доставки
// @Description  Возвращает цены по всем продуктам аккаунта, отсортированные по возрастанию
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      QuoteRequest  true  "Отправление"
// @Success      200  {object}  QuoteResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка перевозчика"
// @Router       /quotes [post]
func (h *HTTPHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	quotes, err := h.svc.Quote(ctx, QuoteShipmentJSONToEntity(req.Shipment), req.Urgent)
	observe("quote", start, err)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get quotes", err)
		return
	}

	utils.WriteJSON(w, QuotesEntityToJSON(quotes), http.StatusOK)
}

// LodgeShipment создаёт отправление у перевозчика.
// @Summary      Создать отправление
// @Description  Регистрирует отправление у перевозчика и возвращает присвоенные идентификаторы
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        request  body      LodgeRequest  true  "Отправление"
// @Success      201  {object}  Shipment
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка перевозчика"
// @Router       /shipments [post]
func (h *HTTPHandler) LodgeShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LodgeRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	shipment := ShipmentJSONToEntity(req.Shipment)
	start := time.Now()
	err := h.svc.LodgeShipment(ctx, shipment)
	observe("lodge", start, err)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to lodge shipment", err)
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusCreated)
}

// GetShipment возвращает отправление по ID.
// @Summary      Получить отправление
// @Tags         shipments
// @Produce      json
// @Param        shipment_id  path      string  true  "Идентификатор отправления"
// @Success      200  {object}  Shipment
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments/{shipment_id} [get]
func (h *HTTPHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shipmentID := chi.URLParam(r, "shipment_id")

	if err := h.validate.Var(shipmentID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	shipment, err := h.svc.GetShipment(ctx, shipmentID)
	observe("get_shipment", start, err)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get shipment", err)
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

// DeleteShipment удаляет отправление.
// @Summary      Удалить отправление
// @Tags         shipments
// @Produce      json
// @Param        shipment_id  path      string  true  "Идентификатор отправления"
// @Success      200  {object}  DeleteResponse
// @Failure      502  {object}  utils.ErrorResponse "Ошибка перевозчика"
// @Router       /shipments/{shipment_id} [delete]
func (h *HTTPHandler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shipmentID := chi.URLParam(r, "shipment_id")

	if err := h.validate.Var(shipmentID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	ok, err := h.svc.DeleteShipment(ctx, shipmentID)
	observe("delete_shipment", start, err)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to delete shipment", err)
		return
	}

	utils.WriteJSON(w, DeleteResponse{Deleted: ok}, http.StatusOK)
}

// GetLabels запрашивает этикетки.
// @Summary      Получить этикетки
// @Description  Возвращает ссылку на PDF с этикетками для указанных отправлений
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        request  body      LabelRequest  true  "Отправления"
// @Success      200  {object}  LabelResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка перевозчика"
// @Router       /labels [post]
func (h *HTTPHandler) GetLabels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LabelRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	lt := entities.LabelA4OnePerPage
	if req.LabelType != "" {
		lt, _ = entities.LabelTypeByName(req.LabelType)
	}

	start := time.Now()
	url, err := h.svc.GetLabels(ctx, req.ShipmentIDs, lt)
	observe("labels", start, err)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get labels", err)
		return
	}

	utils.WriteJSON(w, LabelResponse{URL: url}, http.StatusOK)
}

// CreateOrder создаёт манифест.
// @Summary      Создать заказ
// @Description  Объединяет отправления в заказ и возвращает манифест
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      OrderRequest  true  "Отправления"
// @Success      201  {object}  OrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка перевозчика"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	order, err := h.svc.CreateOrder(ctx, req.ShipmentIDs)
	observe("create_order", start, err)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to create order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	var ce *entities.CarrierError
	switch {
	case errors.Is(err, entities.ErrShipmentNotFound):
		utils.WriteError(w, "shipment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAlreadyLodged):
		utils.WriteError(w, "shipment already lodged", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidShipment):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &ce):
		h.logger.WarnContext(ctx, msg, slog.Any("error", err), slog.String("code", ce.Code()))
		utils.WriteError(w, ce.Error(), http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "carrier timeout", http.StatusGatewayTimeout)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func observe(op string, start time.Time, err error) {
	operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	var ce *entities.CarrierError
	status := "ok"
	switch {
	case errors.As(err, &ce):
		status = "carrier_error"
	case err != nil:
		status = "error"
	}
	operationTotal.WithLabelValues(op, status).Inc()
}
