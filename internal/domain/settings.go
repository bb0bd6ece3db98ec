package domain

import "time"

// GeneralSettings is the dashboard-wide settings document.
type GeneralSettings struct {
	ActiveReportID string    `json:"active_report_id,omitempty"`
	DashboardTitle string    `json:"dashboard_title,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}
