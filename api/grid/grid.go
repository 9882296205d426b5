package grid

import (
	"strings"

	"KabisaBizSuite/internal/config"
	"KabisaBizSuite/internal/recordstore"
)

// Column describes how one record field is labeled, typed, and rendered.
// Columns are searchable and filterable unless explicitly switched off.
type Column struct {
	Field      string `json:"field"`
	HeaderName string `json:"headerName"`
	Type       string `json:"type,omitempty"`
	Align      string `json:"align,omitempty"`
	MinWidth   int    `json:"minWidth,omitempty"`
	Searchable *bool  `json:"searchable,omitempty"`
	Filterable *bool  `json:"filterable,omitempty"`
}

func (c Column) IsSearchable() bool {
	return c.Searchable == nil || *c.Searchable
}

func (c Column) IsFilterable() bool {
	return c.Filterable == nil || *c.Filterable
}

// Options are the grid behavior switches. The zero value is NOT the
// default; use DefaultOptions and override.
type Options struct {
	Searchable bool `json:"searchable"`
	Filterable bool `json:"filterable"`
	Paginated  bool `json:"paginated"`
	Dense      bool `json:"dense"`
	Actions    bool `json:"actions"`
}

func DefaultOptions() Options {
	return Options{
		Searchable: true,
		Filterable: true,
		Paginated:  true,
		Actions:    true,
	}
}

// Query is the transient view state driving one grid evaluation.
type Query struct {
	Search      string `json:"search"`
	FilterField string `json:"filterField"`
	FilterValue string `json:"filterValue"`
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`
}

// Capabilities is the per-row action set offered by the hosting page.
// Absent capabilities are omitted from the rendered rows entirely.
type Capabilities struct {
	View   bool `json:"view"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

func (c Capabilities) List() []string {
	actions := make([]string, 0, 3)
	if c.View {
		actions = append(actions, "view")
	}
	if c.Edit {
		actions = append(actions, "edit")
	}
	if c.Delete {
		actions = append(actions, "delete")
	}
	return actions
}

// Row is one rendered grid row: raw record, formatted cells in column
// order, and the action set.
type Row struct {
	Record  recordstore.Record `json:"record"`
	Cells   []Cell             `json:"cells"`
	Actions []string           `json:"actions,omitempty"`
}

// Result is a full grid evaluation.
type Result struct {
	Rows        []Row    `json:"data"`
	Columns     []Column `json:"columns"`
	TotalRows   int      `json:"total_rows"`
	TotalPages  int      `json:"total_pages"`
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
	Dense       bool     `json:"dense"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Filter applies the two-stage filtering pipeline in fixed order: the
// free-text search across searchable columns, then the single-column
// substring filter. Both matches are case-insensitive substring checks on
// stringified values; rows missing a field simply do not match.
func Filter(rows []recordstore.Record, columns []Column, q Query, opts Options) []recordstore.Record {
	filtered := rows

	if opts.Searchable && q.Search != "" {
		term := strings.ToLower(q.Search)
		kept := make([]recordstore.Record, 0, len(filtered))
		for _, row := range filtered {
			for _, col := range columns {
				if !col.IsSearchable() {
					continue
				}
				v := recordstore.Stringify(row[col.Field])
				if v != "" && strings.Contains(strings.ToLower(v), term) {
					kept = append(kept, row)
					break
				}
			}
		}
		filtered = kept
	}

	if opts.Filterable && q.FilterField != "" && q.FilterValue != "" {
		needle := strings.ToLower(q.FilterValue)
		kept := make([]recordstore.Record, 0, len(filtered))
		for _, row := range filtered {
			v := recordstore.Stringify(row[q.FilterField])
			if v != "" && strings.Contains(strings.ToLower(v), needle) {
				kept = append(kept, row)
			}
		}
		filtered = kept
	}

	return filtered
}

// Paginate slices the filtered set to the requested page. An out-of-range
// page yields an empty slice; disabling pagination returns everything.
func Paginate(rows []recordstore.Record, q Query, opts Options) []recordstore.Record {
	if !opts.Paginated {
		return rows
	}
	size := NormalizePageSize(q.PageSize)
	page := q.Page
	if page < 0 {
		page = 0
	}
	start := page * size
	if start >= len(rows) {
		return []recordstore.Record{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// NormalizePageSize clamps a requested page size to the allowed set,
// falling back to the default.
func NormalizePageSize(size int) int {
	for _, allowed := range config.AllowedPageSizes {
		if size == allowed {
			return size
		}
	}
	return config.DefaultPageSize
}

// Apply runs the full pipeline (search, filter, paginate, render) and
// never panics: missing fields render as the placeholder, and an empty
// column set renders rows with no cells.
func Apply(rows []recordstore.Record, columns []Column, q Query, opts Options, caps Capabilities) Result {
	filtered := Filter(rows, columns, q, opts)
	pageRows := Paginate(filtered, q, opts)

	size := NormalizePageSize(q.PageSize)
	page := q.Page
	if page < 0 {
		page = 0
	}
	totalPages := 0
	if opts.Paginated {
		totalPages = (len(filtered) + size - 1) / size
	} else {
		size = len(filtered)
		page = 0
		if len(filtered) > 0 {
			totalPages = 1
		}
	}

	actions := []string(nil)
	if opts.Actions {
		actions = caps.List()
	}

	rendered := make([]Row, 0, len(pageRows))
	for _, rec := range pageRows {
		cells := make([]Cell, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, FormatCell(rec[col.Field], col))
		}
		rendered = append(rendered, Row{Record: rec, Cells: cells, Actions: actions})
	}

	res := Result{
		Rows:       rendered,
		Columns:    columns,
		TotalRows:  len(filtered),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   size,
		Dense:      opts.Dense,
	}
	if len(rendered) == 0 {
		res.Placeholder = "No data available"
	}
	return res
}
