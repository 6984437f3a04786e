// Package errors provides structured error handling for the forge CLI.
//
// Every user-facing failure carries a stable code (E1xx configuration,
// E2xx schema, E3xx validation, E4xx build, E5xx CLI, E6xx publish), a
// category, an optional component/field reference, and an optional fix
// suggestion. Codes are registered in registry.go; New("E302") returns a
// pre-filled error that callers refine with WithComponent, WithField,
// WithDetail and WithSuggestion:
//
//	return errors.New("E302").
//		WithComponent("button").
//		WithField("button.tsx").
//		WithSuggestion("Remove the entry from files or create the file")
//
// Validation errors are accumulated into slices and reported in bulk;
// they are never panics. Format renders a colorized terminal listing,
// MarshalJSON the machine-readable form used by --json output.
package errors
