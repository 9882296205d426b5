package recordstore

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
)

// RESTStore talks to a remote record-store API: each logical table is a
// resource returning a flat JSON array of records.
type RESTStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTStore(baseURL, apiKey string) *RESTStore {
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *RESTStore) List(ctx context.Context, table string) ([]Record, error) {
	body, status, err := s.do(ctx, http.MethodGet, s.tableURL(table), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return []Record{}, nil
	}
	if status >= 300 {
		return nil, fmt.Errorf("record store: list %s: status %d", table, status)
	}
	var rows []Record
	if err := json.Unmarshal(body, &rows); err != nil {
		// Some deployments wrap the array in an envelope.
		var env struct {
			Rows []Record `json:"rows"`
		}
		if err2 := json.Unmarshal(body, &env); err2 != nil || env.Rows == nil {
			return nil, fmt.Errorf("record store: list %s: %w", table, err)
		}
		rows = env.Rows
	}
	if rows == nil {
		rows = []Record{}
	}
	return rows, nil
}

func (s *RESTStore) Create(ctx context.Context, table string, data Record) (Record, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	body, status, err := s.do(ctx, http.MethodPost, s.tableURL(table), payload)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("record store: create %s: status %d", table, status)
	}
	return decodeRecord(body)
}

func (s *RESTStore) Update(ctx context.Context, table string, id string, data Record) (Record, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	body, status, err := s.do(ctx, http.MethodPatch, s.recordURL(table, id), payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if status >= 300 {
		return nil, fmt.Errorf("record store: update %s/%s: status %d", table, id, status)
	}
	return decodeRecord(body)
}

func (s *RESTStore) Delete(ctx context.Context, table string, id string) error {
	_, status, err := s.do(ctx, http.MethodDelete, s.recordURL(table, id), nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return ErrNotFound
	}
	if status >= 300 {
		return fmt.Errorf("record store: delete %s/%s: status %d", table, id, status)
	}
	return nil
}

func (s *RESTStore) tableURL(table string) string {
	return s.baseURL + "/" + url.PathEscape(table)
}

func (s *RESTStore) recordURL(table, id string) string {
	return s.tableURL(table) + "/" + url.PathEscape(id)
}

func (s *RESTStore) do(ctx context.Context, method, target string, payload []byte) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
		req.Header.Set("apikey", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}

func decodeRecord(body []byte) (Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Record{}, nil
	}
	var rec Record
	if err := json.Unmarshal(body, &rec); err == nil {
		return rec, nil
	}
	// PostgREST-style stores answer mutations with a single-element array.
	var arr []Record
	if err := json.Unmarshal(body, &arr); err == nil && len(arr) > 0 {
		return arr[0], nil
	}
	return nil, fmt.Errorf("record store: unexpected response body")
}
