package domain

import "time"

// ReportMeta is an entry in the report index. The report rows themselves
// live in the reports_data collection keyed by ID.
type ReportMeta struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RowCount   int       `json:"row_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
