// Package api declares the HTTP request/response models for the service.
package api

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	// CodeInvalidArgument marks failed request validation.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeUnsupportedFormat marks an export format outside the closed set.
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// CodeEmptyRoster marks a team selection matching no users.
	CodeEmptyRoster ErrorCode = "EMPTY_ROSTER"
	// CodeNotFound marks a missing resource.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeInternal marks an unexpected failure.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and human message of an error.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ReportRequest describes one report generation call.
type ReportRequest struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Metrics   []string `json:"metrics"`
	Teams     []string `json:"teams"`
	Format    string   `json:"format"`
}

// ReportResponse returns the serialized artifact plus naming metadata.
type ReportResponse struct {
	ReportID    string `json:"report_id"`
	Format      string `json:"format"`
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
	Content     string `json:"content"`
}

// RosterUser is one user in a roster preview.
type RosterUser struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Office string `json:"office,omitempty"`
}

// RosterResponse lists the users a selection would include.
type RosterResponse struct {
	Users []RosterUser `json:"users"`
	Count int          `json:"count"`
}

// Team is the transport view of a team.
type Team struct {
	TeamID    string   `json:"team_id"`
	TeamName  string   `json:"team_name"`
	ManagerID string   `json:"manager_id"`
	MemberIDs []string `json:"member_ids"`
}

// TeamsResponse lists all team relationships.
type TeamsResponse struct {
	Teams []Team `json:"teams"`
}
