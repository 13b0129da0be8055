package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/slotlabel"
)

const (
	headerRequestID = "X-Request-ID"

	defaultRejectMessage       = "Booking was rejected"
	defaultCancelRejectMessage = "Booking could not be cancelled"
)

// Client клиент для работы с Booking API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    Metrics
	log        Logger
}

// Option настройка клиента
type Option func(*Client)

// WithRateLimit ограничивает частоту исходящих запросов
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics включает сбор метрик вызовов
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient подменяет http.Client (таймаут берется из него)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый экземпляр клиента Booking API.
// timeout ограничивает каждый запрос целиком; таймаут обрабатывается как обычная сетевая ошибка.
func NewClient(baseURL, token string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRooms получает плоский список всех комнат
func (c *Client) GetRooms(ctx context.Context) ([]domain.Room, error) {
	resp, err := c.do(ctx, opGetRooms, http.MethodGet, "/rooms", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var dtos []RoomDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rooms: %v", ErrInvalidResponse, err)
	}

	rooms := make([]domain.Room, 0, len(dtos))
	for _, dto := range dtos {
		rooms = append(rooms, dto.ToDomain())
	}

	c.log.Info("Fetched %d rooms", len(rooms))
	return rooms, nil
}

// GetRoomAvailability получает сетку доступности комнаты на дату (YYYY-MM-DD).
// Весь ответ отклоняется, если хотя бы одна метка слота некорректна.
func (c *Client) GetRoomAvailability(ctx context.Context, roomID int64, date string) (*RoomAvailability, error) {
	query := url.Values{}
	query.Set("date", date)
	path := fmt.Sprintf("/rooms/%d/availability?%s", roomID, query.Encode())

	resp, err := c.do(ctx, opGetAvailability, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: room_id=%d", ErrRoomNotFound, roomID)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body AvailabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability: %v", ErrInvalidResponse, err)
	}

	grid, err := decodeGrid(body.Availability)
	if err != nil {
		c.log.Error("Rejected availability for room_id=%d date=%s: %v", roomID, date, err)
		return nil, err
	}

	result := &RoomAvailability{Grid: grid}
	if body.RoomDetails != nil {
		room := body.RoomDetails.ToDomain()
		if room.ID == 0 {
			room.ID = roomID
		}
		result.Room = &room
	}

	c.log.Info("Fetched availability for room_id=%d date=%s: %d slots", roomID, date, grid.Len())
	return result, nil
}

// CreateBooking создает бронирование.
// Отказ сервера (например, слот уже занят) возвращается как *RejectedError с текстом сервера.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error) {
	resp, err := c.do(ctx, opCreateBooking, http.MethodPost, "/bookings", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return nil, rejectionFromBody(resp.Body, defaultRejectMessage)
	default:
		return nil, checkStatus(resp)
	}

	var body CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking response: %v", ErrInvalidResponse, err)
	}

	if body.Error != "" {
		return nil, &RejectedError{Message: body.Error}
	}
	if !body.Success {
		return nil, &RejectedError{Message: defaultRejectMessage}
	}

	c.log.Info("Booking created: number=%s room=%s date=%s %s-%s",
		body.BookingNumber, req.Room, req.Date, req.StartTime, req.EndTime)
	return &body, nil
}

// GetMyBookings получает бронирования текущего пользователя
func (c *Client) GetMyBookings(ctx context.Context) ([]domain.Booking, error) {
	resp, err := c.do(ctx, opGetMyBookings, http.MethodGet, "/bookings/my", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// CancelBooking отменяет бронирование по номеру
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	resp, err := c.do(ctx, opCancelBooking, http.MethodPost, "/bookings/cancel",
		&CancelBookingRequest{CancelBookingNumber: bookingID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusConflict:
		return rejectionFromBody(resp.Body, defaultCancelRejectMessage)
	default:
		return checkStatus(resp)
	}

	var body CancelBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: failed to decode cancel response: %v", ErrInvalidResponse, err)
	}

	if !body.ExecuteSuccess {
		msg := body.Error
		if msg == "" {
			msg = defaultCancelRejectMessage
		}
		return &RejectedError{Message: msg}
	}

	c.log.Info("Booking cancelled: number=%s", bookingID)
	return nil
}

// do выполняет запрос с авторизацией, request id и ограничением частоты
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, 0, start)
		c.log.Warn("Booking API %s failed: request_id=%s error=%v", operation, requestID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	c.observe(operation, resp.StatusCode, start)
	return resp, nil
}

func (c *Client) observe(operation string, status int, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(operation, status, time.Since(start))
	}
}

// checkStatus обрабатывает статус-коды, общие для всех операций
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

func rejectionFromBody(r io.Reader, fallback string) error {
	var body ErrorResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.text() == "" {
		return &RejectedError{Message: fallback}
	}
	return &RejectedError{Message: body.text()}
}

// decodeGrid строит сетку из карты "метка -> состояние"
func decodeGrid(availability map[string]SlotDTO) (*domain.Grid, error) {
	slots := make([]domain.Slot, 0, len(availability))
	for label, dto := range availability {
		r, err := slotlabel.ParseRange(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}

		status, ok := parseSlotStatus(dto.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown slot status %q for %q", ErrInvalidResponse, dto.Status, label)
		}

		slots = append(slots, domain.Slot{
			Label:       label,
			StartMinute: r.StartMinute,
			EndMinute:   r.EndMinute,
			Status:      status,
			EventName:   dto.EventName,
			PIC:         dto.PIC,
		})
	}

	grid, err := domain.NewGrid(slots)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return grid, nil
}

func parseSlotStatus(s string) (domain.SlotStatus, bool) {
	switch {
	case strings.EqualFold(s, string(domain.SlotAvailable)):
		return domain.SlotAvailable, true
	case strings.EqualFold(s, string(domain.SlotBooked)):
		return domain.SlotBooked, true
	default:
		return "", false
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidResponse, s)
}

func (b BookingDTO) toDomain() (domain.Booking, error) {
	start, err := parseTimestamp(b.StartDate)
	if err != nil {
		return domain.Booking{}, err
	}
	end, err := parseTimestamp(b.EndDate)
	if err != nil {
		return domain.Booking{}, err
	}

	tag, ok := domain.ParseBookingTag(b.Tag)
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: unknown booking tag %q", ErrInvalidResponse, b.Tag)
	}

	return domain.Booking{
		ID:        b.BookingID,
		RoomName:  b.RoomName,
		Tower:     b.Tower,
		Level:     b.Level,
		EventName: b.EventName,
		PIC:       b.PIC,
		Email:     b.Email,
		Start:     start,
		End:       end,
		Status:    b.Status,
		Tag:       tag,
	}, nil
}
