package records

import (
	"encoding/csv"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"KabisaBizSuite/api"
	"KabisaBizSuite/api/constants"
	"KabisaBizSuite/api/tableconfig"
	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/config"
	"KabisaBizSuite/internal/recordstore"
)

func getFileExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// parseUploadFile reads a csv/xlsx/xls upload into rows of cells. The
// first row is treated as the header by the caller.
func parseUploadFile(file multipart.File, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(file)
		r.FieldsPerRecord = -1
		return r.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheet := f.GetSheetName(0)
		return f.GetRows(sheet)
	case ".xls":
		wb, err := xls.OpenReader(file, "utf-8")
		if err != nil {
			return nil, err
		}
		sheet := wb.GetSheet(0)
		if sheet == nil {
			return nil, errors.New("empty workbook")
		}
		rows := make([][]string, 0, sheet.MaxRow+1)
		for i := 0; i <= int(sheet.MaxRow); i++ {
			row := sheet.Row(i)
			if row == nil {
				continue
			}
			cells := make([]string, 0, row.LastCol()+1)
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}
	return nil, errors.New(constants.ErrUnsupportedFileType)
}

// rowsToRecords maps a header row onto the table's configured fields.
// Header cells are matched case-insensitively against both field names
// and display labels; unmatched columns are dropped.
func rowsToRecords(table string, rows [][]string) []recordstore.Record {
	if len(rows) < 2 {
		return nil
	}
	cfg := tableconfig.Get(table)

	fieldByHeader := make(map[string]string, len(cfg.Columns)*2)
	for _, col := range cfg.Columns {
		fieldByHeader[strings.ToLower(col.Field)] = col.Field
		fieldByHeader[strings.ToLower(col.HeaderName)] = col.Field
	}

	fields := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		fields[i] = fieldByHeader[strings.ToLower(strings.TrimSpace(h))]
	}

	records := make([]recordstore.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := recordstore.Record{}
		for i, cell := range row {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			rec[fields[i]] = cell
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// UploadRecords bulk-creates records from a csv/xlsx/xls file. Uploads
// over the size cap are rejected before parsing; rows failing validation
// are skipped and reported, not fatal.
func UploadRecords(store recordstore.Store, tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
		if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
			api.RespondWithError(w, http.StatusRequestEntityTooLarge, constants.ErrFileTooLarge)
			return
		}

		table := r.FormValue("table")
		if table == "" {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrTableRequired)
			return
		}

		file, fh, err := r.FormFile("file")
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrNoFilesUploaded)
			return
		}
		defer file.Close()

		if fh.Size > config.MaxUploadBytes {
			api.RespondWithError(w, http.StatusRequestEntityTooLarge, constants.ErrFileTooLarge)
			return
		}

		rows, err := parseUploadFile(file, getFileExt(fh.Filename))
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrUnsupportedFileType)
			return
		}

		records := rowsToRecords(table, rows)
		created := 0
		skipped := make([]map[string]interface{}, 0)
		for i, rec := range records {
			if violations := ValidateRecord(table, rec); violations != nil {
				skipped = append(skipped, map[string]interface{}{"row": i + 2, "fields": violations})
				continue
			}
			if _, err := store.Create(r.Context(), table, rec); err != nil {
				api.RespondWithError(w, http.StatusBadGateway, constants.ErrStoreUnavailable)
				return
			}
			created++
		}
		if created > 0 {
			tc.Invalidate(table)
		}

		api.RespondWithPayload(w, true, "", map[string]interface{}{
			"created": created,
			"skipped": skipped,
		})
	}
}
