package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// Error codes.
const (
	CodeConfigRead     = "SD100"
	CodeConfigInvalid  = "SD101"
	CodeInvalidPort    = "SD102"
	CodeDataRead       = "SD120"
	CodeDataParse      = "SD121"
	CodeDataInvalid    = "SD122"
	CodeExportRender   = "SD140"
	CodeExportWrite    = "SD141"
	CodeExportTarget   = "SD142"
	CodeServerListen   = "SD160"
	CodeServerShutdown = "SD161"
	CodeUnknownCommand = "SD180"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (SD100-SD119)
	// ============================================

	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
		Detail:   "The config file exists but could not be read or parsed.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is out of range or malformed.",
	},
	CodeInvalidPort: {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The port must be between 1 and 65535.",
	},

	// ============================================
	// Data Errors (SD120-SD139)
	// ============================================

	CodeDataRead: {
		Category: CategoryData,
		Message:  "Cannot read sample data file",
		Detail:   "The sample data file could not be opened.",
	},
	CodeDataParse: {
		Category: CategoryData,
		Message:  "Invalid sample data file",
		Detail:   "The sample data file is not valid HCL or does not match the expected blocks.",
	},
	CodeDataInvalid: {
		Category: CategoryData,
		Message:  "Invalid sample data",
		Detail:   "Departments and teams need a non-empty, unique name.",
	},

	// ============================================
	// Export Errors (SD140-SD159)
	// ============================================

	CodeExportRender: {
		Category: CategoryExport,
		Message:  "Rendering the catalog failed",
	},
	CodeExportWrite: {
		Category: CategoryExport,
		Message:  "Writing an export file failed",
	},
	CodeExportTarget: {
		Category: CategoryExport,
		Message:  "Invalid export target",
		Detail:   "Targets are a directory path or an s3://bucket/prefix URL.",
	},

	// ============================================
	// Server Errors (SD160-SD179)
	// ============================================

	CodeServerListen: {
		Category: CategoryServer,
		Message:  "Cannot listen on address",
	},
	CodeServerShutdown: {
		Category: CategoryServer,
		Message:  "Server shutdown failed",
	},

	// ============================================
	// CLI Errors (SD180-SD199)
	// ============================================

	CodeUnknownCommand: {
		Category: CategoryCLI,
		Message:  "Unknown command",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
