package facilityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с FacilityService
// Разрешает имена аудиторий в идентификаторы и проверяет преподавателей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FacilityService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRoomByName получает аудиторию по имени
func (c *Client) GetRoomByName(ctx context.Context, name string) (*Room, error) {
	endpoint := fmt.Sprintf("%s/internal/rooms/by-name/%s", c.baseURL, url.PathEscape(name))

	var room Room
	if err := c.getJSON(ctx, endpoint, &room, ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &room, nil
}

// GetInstructor получает преподавателя по ID
func (c *Client) GetInstructor(ctx context.Context, id int64) (*Instructor, error) {
	endpoint := fmt.Sprintf("%s/internal/instructors/%d", c.baseURL, id)

	var instructor Instructor
	if err := c.getJSON(ctx, endpoint, &instructor, ErrInstructorNotFound); err != nil {
		return nil, err
	}

	return &instructor, nil
}

// getJSON выполняет GET запрос и декодирует ответ
// notFoundErr возвращается при статусе 404
func (c *Client) getJSON(ctx context.Context, endpoint string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
