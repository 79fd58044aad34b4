package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

// BKClass is the capital-goods classification of a tariff position.
type BKClass string

const (
	ClassBK   BKClass = "BK"
	ClassNoBK BKClass = "NO BK"
)

// ReportFormat selects the serialization of a grouped report.
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// AllowedReportFormats maps query values to ReportFormat.
var AllowedReportFormats = map[string]ReportFormat{
	"json": ReportFormatJSON,
	"csv":  ReportFormatCSV,
	"xlsx": ReportFormatXLSX,
}
