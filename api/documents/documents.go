// Package documents serves the document registry: category-filtered
// listings with human-readable sizes and badge colors, plus metadata
// upload with a hard size cap.
package documents

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"KabisaBizSuite/api"
	"KabisaBizSuite/api/constants"
	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/config"
	"KabisaBizSuite/internal/format"
	"KabisaBizSuite/internal/recordstore"
)

// categoryColors maps document categories to badge colors. Unknown
// categories get the neutral default.
var categoryColors = map[string]string{
	"invoices":       "error",
	"receipts":       "success",
	"delivery_notes": "info",
	"certificates":   "warning",
	"contracts":      "secondary",
	"reports":        "primary",
	"general":        "default",
}

func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return "default"
}

// Categories lists the recognized document categories.
func Categories() []string {
	return []string{"invoices", "receipts", "delivery_notes", "certificates", "contracts", "reports", "general"}
}

type listedDocument struct {
	Record        recordstore.Record `json:"record"`
	SizeDisplay   string             `json:"size_display"`
	CategoryColor string             `json:"category_color"`
}

// ListDocuments filters the Documents table by category and free-text
// search, decorating each row with a display size and badge color.
func ListDocuments(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Category string `json:"category"`
			Search   string `json:"search"`
		}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&req)
		}

		rows, err := tc.Get(r.Context(), "Documents")
		if err != nil {
			api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
			return
		}

		out := make([]listedDocument, 0, len(rows))
		term := strings.ToLower(req.Search)
		for _, doc := range rows {
			category := recordstore.Stringify(doc["category"])
			if req.Category != "" && req.Category != "all" && category != req.Category {
				continue
			}
			if term != "" {
				name := strings.ToLower(recordstore.Stringify(doc["file_name"]))
				desc := strings.ToLower(recordstore.Stringify(doc["description"]))
				if !strings.Contains(name, term) && !strings.Contains(desc, term) {
					continue
				}
			}
			out = append(out, listedDocument{
				Record:        doc,
				SizeDisplay:   format.FileSize(doc.Number("file_size")),
				CategoryColor: CategoryColor(category),
			})
		}
		api.RespondWithPayload(w, true, "", out)
	}
}

// UploadDocument stores document metadata for an uploaded file. The file
// body itself lives in the record store's object storage; this endpoint
// records name, size, category, and linkage, rejecting anything over the
// size cap.
func UploadDocument(store recordstore.Store, tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FileName  string  `json:"file_name"`
			FileSize  float64 `json:"file_size"`
			Category  string  `json:"category"`
			TableName string  `json:"table_name"`
			RecordID  string  `json:"record_id"`
			Uploader  string  `json:"uploaded_by_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
			return
		}
		if req.FileName == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrNoFilesUploaded)
			return
		}
		if req.FileSize > float64(config.MaxUploadBytes) {
			api.RespondWithError(w, http.StatusRequestEntityTooLarge, constants.ErrFileTooLarge)
			return
		}
		category := req.Category
		if category == "" {
			category = "general"
		}

		doc := recordstore.Record{
			"id":               uuid.New().String(),
			"file_name":        req.FileName,
			"file_size":        req.FileSize,
			"category":         category,
			"table_name":       req.TableName,
			"record_id":        req.RecordID,
			"uploaded_by_name": req.Uploader,
			"uploaded_at":      time.Now().UTC().Format(time.RFC3339),
		}
		created, err := store.Create(r.Context(), "Documents", doc)
		if err != nil {
			api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
			return
		}
		tc.Invalidate("Documents")
		api.RespondWithPayload(w, true, "", created)
	}
}
