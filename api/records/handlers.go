// Package records exposes the generic table surface: grid queries over
// cached snapshots, record CRUD with per-field validation, exports, bulk
// uploads, and cache status.
package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"KabisaBizSuite/api"
	"KabisaBizSuite/api/constants"
	"KabisaBizSuite/api/export"
	"KabisaBizSuite/api/grid"
	"KabisaBizSuite/api/tableconfig"
	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/recordstore"
)

type tableDescriptor struct {
	Name    string        `json:"name"`
	Title   string        `json:"title"`
	Columns []grid.Column `json:"columns"`
}

// GetTables lists every configured table with its column descriptors.
func GetTables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := tableconfig.AvailableTables()
		out := make([]tableDescriptor, 0, len(names))
		for _, name := range names {
			cfg := tableconfig.Get(name)
			out = append(out, tableDescriptor{Name: name, Title: cfg.Title, Columns: cfg.Columns})
		}
		api.RespondWithPayload(w, true, "", out)
	}
}

// QueryTable evaluates one grid query over the cached table snapshot.
func QueryTable(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Table        string             `json:"table"`
			Search       string             `json:"search"`
			FilterField  string             `json:"filter_field"`
			FilterValue  string             `json:"filter_value"`
			Page         int                `json:"page"`
			PageSize     int                `json:"page_size"`
			Dense        bool               `json:"dense"`
			Capabilities *grid.Capabilities `json:"capabilities"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
			return
		}
		if req.Table == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrTableRequired)
			return
		}

		rows, err := tc.Get(r.Context(), req.Table)
		if err != nil {
			api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
			return
		}

		cfg := tableconfig.Get(req.Table)
		opts := grid.DefaultOptions()
		opts.Dense = req.Dense
		caps := grid.Capabilities{View: true, Edit: true, Delete: true}
		if req.Capabilities != nil {
			caps = *req.Capabilities
		}
		q := grid.Query{
			Search:      req.Search,
			FilterField: req.FilterField,
			FilterValue: req.FilterValue,
			Page:        req.Page,
			PageSize:    req.PageSize,
		}
		api.RespondWithPayload(w, true, "", grid.Apply(rows, cfg.Columns, q, opts, caps))
	}
}

// CreateRecord validates and stores a new record, then drops the cached
// snapshot so the next read refetches.
func CreateRecord(store recordstore.Store, tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Table string             `json:"table"`
			Data  recordstore.Record `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
			return
		}
		if req.Table == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrTableRequired)
			return
		}
		if violations := ValidateRecord(req.Table, req.Data); violations != nil {
			respondValidation(w, violations)
			return
		}

		created, err := store.Create(r.Context(), req.Table, req.Data)
		if err != nil {
			api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
			return
		}
		tc.Invalidate(req.Table)
		api.RespondWithPayload(w, true, "", created)
	}
}

// UpdateRecord validates and patches an existing record, invalidating the
// table snapshot on success.
func UpdateRecord(store recordstore.Store, tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Table string             `json:"table"`
			ID    string             `json:"id"`
			Data  recordstore.Record `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
			return
		}
		if req.Table == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrTableRequired)
			return
		}
		if req.ID == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrRecordIDRequired)
			return
		}
		if violations := ValidateRecord(req.Table, req.Data); violations != nil {
			respondValidation(w, violations)
			return
		}

		updated, err := store.Update(r.Context(), req.Table, req.ID, req.Data)
		if err != nil {
			if errors.Is(err, recordstore.ErrNotFound) {
				api.RespondWithError(w, http.StatusNotFound, "Record not found")
				return
			}
			api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
			return
		}
		tc.Invalidate(req.Table)
		api.RespondWithPayload(w, true, "", updated)
	}
}

// DeleteRecord removes a record and invalidates the table snapshot.
func DeleteRecord(store recordstore.Store, tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Table string `json:"table"`
			ID    string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
			return
		}
		if req.Table == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrTableRequired)
			return
		}
		if req.ID == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrRecordIDRequired)
			return
		}

		if err := store.Delete(r.Context(), req.Table, req.ID); err != nil {
			if errors.Is(err, recordstore.ErrNotFound) {
				api.RespondWithError(w, http.StatusNotFound, "Record not found")
				return
			}
			api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
			return
		}
		tc.Invalidate(req.Table)
		api.RespondWithResult(w, true, "")
	}
}

// ExportCSV streams the full table as a CSV download.
func ExportCSV(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, rows, ok := exportRows(w, r, tc)
		if !ok {
			return
		}
		cfg := tableconfig.Get(table)
		w.Header().Set("Content-Type", constants.ContentTypeCSV)
		w.Header().Set("Content-Disposition", "attachment; filename="+export.CSVFilename(table, time.Now()))
		w.Write([]byte(export.WriteCSV(rows, cfg.Columns)))
	}
}

// ExportXLSX streams the full table as a spreadsheet download.
func ExportXLSX(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, rows, ok := exportRows(w, r, tc)
		if !ok {
			return
		}
		cfg := tableconfig.Get(table)
		w.Header().Set("Content-Type", constants.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", "attachment; filename="+export.XLSXFilename(table, time.Now()))
		if err := export.WriteXLSX(w, table, rows, cfg.Columns); err != nil {
			api.LogError("xlsx export for %s: %v", table, err)
		}
	}
}

func exportRows(w http.ResponseWriter, r *http.Request, tc *cache.TableCache) (string, []recordstore.Record, bool) {
	var req struct {
		Table string `json:"table"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
		return "", nil, false
	}
	if req.Table == "" {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrTableRequired)
		return "", nil, false
	}
	rows, err := tc.Get(r.Context(), req.Table)
	if err != nil {
		api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
		return "", nil, false
	}
	return req.Table, rows, true
}

// GetStatus reports the cache state per table.
func GetStatus(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithPayload(w, true, "", tc.Status())
	}
}

func respondValidation(w http.ResponseWriter, violations map[string]string) {
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   constants.ErrValidationFailed,
		"fields":  violations,
	})
}
