package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"hr-dashboard/internal/shared/listquery"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second

	fallbackListMessage   = "Failed to fetch employees"
	fallbackCreateMessage = "Failed to create employee"
	fallbackLoginMessage  = "Invalid username or password"
)

// Client adalah orchestrator semua call dashboard ke backend API.
// Credentials selalu diberikan eksplisit per-call.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	// listSeq menandai setiap list request dengan nomor urut monoton.
	// Response yang nomornya lebih tua dari request terbaru dianggap stale
	// dan tidak boleh menimpa state yang lebih segar.
	listSeq atomic.Int64
}

func New(baseURL string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  l,
	}
}

// ListEmployees mengirim query yang sudah dinormalisasi dan meng-unwrap
// envelope {success, message, data:{data,total,page,limit}} menjadi flat
// ListResult. Tanpa token: Unauthorized, request tidak pernah dikirim.
func (c *Client) ListEmployees(ctx context.Context, creds Credentials, q listquery.Query) (ListResult, error) {
	if !creds.Valid() {
		return ListResult{}, ErrUnauthorized
	}

	seq := c.listSeq.Add(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/employees?"+q.Values().Encode(), nil)
	if err != nil {
		return ListResult{}, wrapTransport(err, fallbackListMessage)
	}
	c.authorize(req, creds)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("list employees transport failed", zap.Error(err))
		return ListResult{}, wrapTransport(err, fallbackListMessage)
	}
	defer resp.Body.Close()

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ListResult{}, wrapTransport(err, fallbackListMessage)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ListResult{}, ErrUnauthorized
	}
	if !envelope.Success || envelope.Data == nil {
		return ListResult{}, fetchFailed(envelope.Message, fallbackListMessage)
	}

	// Latest wins: kalau sudah ada request yang lebih baru, response ini
	// dilaporkan stale agar caller tidak me-render state basi.
	if seq < c.listSeq.Load() {
		c.logger.Debug("discarding stale list response",
			zap.Int64("seq", seq),
			zap.Int64("latest", c.listSeq.Load()),
		)
		return ListResult{}, ErrStaleResponse
	}

	return ListResult{
		Records: envelope.Data.Data,
		Total:   envelope.Data.Total,
		Page:    envelope.Data.Page,
		Limit:   envelope.Data.Limit,
	}, nil
}

// GetEmployee menerima envelope wrapped maupun bare record (tagged union
// di boundary decode). Kegagalan apa pun (transport, 404, envelope
// rusak) berarti "not found": UI hanya butuh found vs not-found.
func (c *Client) GetEmployee(ctx context.Context, creds Credentials, id int64) (*Employee, error) {
	if !creds.Valid() {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/employees/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, nil
	}
	c.authorize(req, creds)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("get employee transport failed", zap.Int64("employee_id", id), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil
	}

	return decodeEmployeeBody(body), nil
}

// CreateEmployee mengirim payload yang sudah dinormalisasi dan
// meng-unwrap envelope create. Sukses berarti caller wajib melakukan
// invalidate + refetch list.
func (c *Client) CreateEmployee(ctx context.Context, creds Credentials, payload CreateEmployeePayload) (*Employee, error) {
	if !creds.Valid() {
		return nil, ErrUnauthorized
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, wrapTransport(err, fallbackCreateMessage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/employees", bytes.NewReader(body))
	if err != nil {
		return nil, wrapTransport(err, fallbackCreateMessage)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, creds)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("create employee transport failed", zap.Error(err))
		return nil, wrapTransport(err, fallbackCreateMessage)
	}
	defer resp.Body.Close()

	var envelope entityEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, wrapTransport(err, fallbackCreateMessage)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if !envelope.Success {
		return nil, fetchFailed(envelope.Message, fallbackCreateMessage)
	}
	if envelope.Data == nil {
		return nil, fetchFailed("No employee data returned", fallbackCreateMessage)
	}

	return envelope.Data, nil
}

// Login mengirim {username, password, loginType:"admin"} dan mengembalikan
// LoginData dari envelope sukses; success:false membawa pesan backend.
func (c *Client) Login(ctx context.Context, username, password string) (LoginData, error) {
	body, err := json.Marshal(map[string]string{
		"username":  username,
		"password":  password,
		"loginType": "admin",
	})
	if err != nil {
		return LoginData{}, wrapTransport(err, fallbackLoginMessage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return LoginData{}, wrapTransport(err, fallbackLoginMessage)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("login transport failed", zap.Error(err))
		return LoginData{}, wrapTransport(err, fallbackLoginMessage)
	}
	defer resp.Body.Close()

	var envelope loginEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return LoginData{}, wrapTransport(err, fallbackLoginMessage)
	}

	if !envelope.Success || envelope.Data == nil {
		return LoginData{}, fetchFailed(envelope.Message, fallbackLoginMessage)
	}

	return *envelope.Data, nil
}

func (c *Client) authorize(req *http.Request, creds Credentials) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", creds.AccessToken))
}

// decodeEmployeeBody membedakan envelope wrapped dari bare record.
// Kegagalan decode dipetakan ke not-found, tidak dibiarkan ambigu.
func decodeEmployeeBody(body []byte) *Employee {
	var probe struct {
		Success *bool     `json:"success"`
		Data    *Employee `json:"data"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Success != nil {
		if !*probe.Success || probe.Data == nil {
			return nil
		}
		return probe.Data
	}

	var bare Employee
	if err := json.Unmarshal(body, &bare); err != nil || bare.ID == 0 {
		return nil
	}
	return &bare
}
