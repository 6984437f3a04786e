package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Not a forge registry",
		Detail:   "The current directory is not a forge component registry. Run this command from a directory with forge.json.",
		DocURL:   "https://forge-cli.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid forge.json",
		Detail:   "The forge.json configuration file is malformed.",
		DocURL:   "https://forge-cli.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A forge.json field has a value that is out of range or the wrong shape.",
		DocURL:   "https://forge-cli.dev/docs/errors/E103",
	},

	// ============================================
	// Schema Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategorySchema,
		Message:  "Descriptor parse failed",
		Detail:   "The component.json file could not be parsed as JSON.",
		DocURL:   "https://forge-cli.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategorySchema,
		Message:  "Descriptor schema violation",
		Detail:   "The component.json data does not match the descriptor schema.",
		DocURL:   "https://forge-cli.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategorySchema,
		Message:  "Invalid component name",
		Detail:   "Component names must be lowercase and match [a-z][a-z0-9-]*.",
		DocURL:   "https://forge-cli.dev/docs/errors/E203",
	},
	"E204": {
		Category: CategorySchema,
		Message:  "Invalid version",
		Detail:   "The version field is not a valid semantic version.",
		DocURL:   "https://forge-cli.dev/docs/errors/E204",
	},

	// ============================================
	// Validation Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryValidation,
		Message:  "Nested component",
		Detail:   "A component directory contains a subdirectory with its own component.json. The registry namespace is flat.",
		DocURL:   "https://forge-cli.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryValidation,
		Message:  "Missing file",
		Detail:   "A file listed in the descriptor does not exist on disk.",
		DocURL:   "https://forge-cli.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategoryValidation,
		Message:  "Empty file",
		Detail:   "A file listed in the descriptor exists but has zero length.",
		DocURL:   "https://forge-cli.dev/docs/errors/E303",
	},
	"E304": {
		Category: CategoryValidation,
		Message:  "Invalid prop",
		Detail:   "A prop is missing its name or type.",
		DocURL:   "https://forge-cli.dev/docs/errors/E304",
	},
	"E305": {
		Category: CategoryValidation,
		Message:  "Required prop with default",
		Detail:   "A prop cannot be required and also declare a default value.",
		DocURL:   "https://forge-cli.dev/docs/errors/E305",
	},
	"E306": {
		Category: CategoryValidation,
		Message:  "Circular registry dependency",
		Detail:   "Components reference each other in a cycle via registryDependencies.",
		DocURL:   "https://forge-cli.dev/docs/errors/E306",
	},
	"E307": {
		Category: CategoryValidation,
		Message:  "File type mismatch",
		Detail:   "A file's extension does not match its declared type tag.",
		DocURL:   "https://forge-cli.dev/docs/errors/E307",
	},
	"E308": {
		Category: CategoryValidation,
		Message:  "No export found",
		Detail:   "A component source file does not export anything.",
		DocURL:   "https://forge-cli.dev/docs/errors/E308",
	},

	// ============================================
	// Build Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryBuild,
		Message:  "Duplicate component name",
		Detail:   "Two component directories declare the same name. Names must be unique within one build.",
		DocURL:   "https://forge-cli.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryBuild,
		Message:  "Build failed",
		Detail:   "One or more components failed validation. See the error listing for details.",
		DocURL:   "https://forge-cli.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryBuild,
		Message:  "Output write failed",
		Detail:   "A registry artifact could not be written to the output directory.",
		DocURL:   "https://forge-cli.dev/docs/errors/E403",
	},
	"E404": {
		Category: CategoryBuild,
		Message:  "File copy failed",
		Detail:   "A component file could not be copied into the output tree.",
		DocURL:   "https://forge-cli.dev/docs/errors/E404",
	},

	// ============================================
	// CLI Errors (E500-E599)
	// ============================================

	"E501": {
		Category: CategoryCLI,
		Message:  "Component already exists",
		Detail:   "A component directory with this name already exists.",
		DocURL:   "https://forge-cli.dev/docs/errors/E501",
	},
	"E502": {
		Category: CategoryCLI,
		Message:  "Component not found",
		Detail:   "No component directory with this name exists in the registry.",
		DocURL:   "https://forge-cli.dev/docs/errors/E502",
	},
	"E503": {
		Category: CategoryCLI,
		Message:  "Registry already initialized",
		Detail:   "A forge.json already exists in this directory.",
		DocURL:   "https://forge-cli.dev/docs/errors/E503",
	},
	"E504": {
		Category: CategoryCLI,
		Message:  "Registry unavailable",
		Detail:   "Unable to fetch the remote registry.",
		DocURL:   "https://forge-cli.dev/docs/errors/E504",
	},
	"E505": {
		Category: CategoryCLI,
		Message:  "Registry not built",
		Detail:   "No registry.json found in the output directory. Run 'forge build' first.",
		DocURL:   "https://forge-cli.dev/docs/errors/E505",
	},
	"E506": {
		Category: CategoryCLI,
		Message:  "Invalid template",
		Detail:   "The specified starter template doesn't exist.",
		DocURL:   "https://forge-cli.dev/docs/errors/E506",
	},

	// ============================================
	// Publish Errors (E600-E699)
	// ============================================

	"E601": {
		Category: CategoryPublish,
		Message:  "Publish not configured",
		Detail:   "forge.json has no publish target. Configure publish.s3 or publish.git.",
		DocURL:   "https://forge-cli.dev/docs/errors/E601",
	},
	"E602": {
		Category: CategoryPublish,
		Message:  "S3 upload failed",
		Detail:   "An object could not be uploaded to the configured bucket.",
		DocURL:   "https://forge-cli.dev/docs/errors/E602",
	},
	"E603": {
		Category: CategoryPublish,
		Message:  "Git publish failed",
		Detail:   "The output tree could not be committed or pushed to the publish branch.",
		DocURL:   "https://forge-cli.dev/docs/errors/E603",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
