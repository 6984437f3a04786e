package scaffold

import "strings"

// PascalCase turns a kebab-case component name into the identifier
// used in generated source, e.g. "date-picker" into "DatePicker".
// Hook names keep their "use" prefix lowercase: "use-toggle" becomes
// "useToggle".
func PascalCase(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// HookName is the camelCase form used for hooks.
func HookName(name string) string {
	pascal := PascalCase(name)
	if pascal == "" {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}
