// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Matching - these keys govern how theme colors are classified against the palette.
const (
	MatchMetric = "match.metric"
)

// Report Rendering - these keys define how the terminal analysis report is laid out.
const (
	ReportKeysPerColor = "report.keys_per_color"
	ReportShowRGB      = "report.show_rgb"
)

// Template Generation - these keys configure placeholder replacement behavior.
const (
	TemplateThreshold = "template.threshold"
)

// Scheme Fetching - these keys control the base16 scheme downloader.
const (
	FetchRepo      = "fetch.repo"
	FetchBatchSize = "fetch.batch_size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
