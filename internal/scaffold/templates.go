package scaffold

// Project returns the starter files written by init, next to the
// generated forge.json.
func Project() *Template {
	return &Template{
		Name:        "project",
		Description: "Registry project layout",
		Files: map[string]string{
			"README.md": `# {{.Name}}

{{if .Description}}{{.Description}}{{else}}A component registry built with forge.{{end}}

## Usage

` + "```sh" + `
forge add <component>   # scaffold a new component
forge build             # validate and build the registry
forge serve             # preview the docs locally
` + "```" + `

Components live under ` + "`components/`" + `, one directory each with a
` + "`component.json`" + ` descriptor.{{if .Tailwind}} Styling assumes Tailwind CSS
in the consuming application.{{end}}
`,
			".gitignore": `dist/
node_modules/
.DS_Store
`,
			"components/.gitkeep": ``,
		},
	}
}

// componentTemplate is the default UI component skeleton.
func componentTemplate() *Template {
	return &Template{
		Name:        "component",
		Description: "UI component with props",
		Files: map[string]string{
			"component.json": `{
  "name": "{{.Name}}",
  "displayName": "{{.DisplayName}}",
  "description": "TODO: describe {{.DisplayName}}",
  "category": "{{.Category}}",
  "version": "1.0.0",
  "license": "MIT",
  "props": [
    {
      "name": "className",
      "type": "string",
      "description": "Additional CSS classes"
    }
  ],
  "files": [
    {
      "name": "{{.DisplayName}}",
      "path": "{{.Name}}.{{if .TypeScript}}tsx{{else}}jsx{{end}}",
      "type": "component"
    }
  ],
  "tags": []
}
`,
			"{{.Name}}.{{if .TypeScript}}tsx{{else}}jsx{{end}}": `{{if .TypeScript}}export interface {{.DisplayName}}Props {
  className?: string;
  children?: React.ReactNode;
}

export function {{.DisplayName}}({ className, children }: {{.DisplayName}}Props) {
{{else}}export function {{.DisplayName}}({ className, children }) {
{{end}}  return <div className={className}>{children}</div>;
}
`,
		},
	}
}

// hookTemplate is a React hook skeleton.
func hookTemplate() *Template {
	return &Template{
		Name:        "hook",
		Description: "React hook",
		Files: map[string]string{
			"component.json": `{
  "name": "{{.Name}}",
  "displayName": "{{.DisplayName}}",
  "description": "TODO: describe {{.DisplayName}}",
  "category": "{{.Category}}",
  "version": "1.0.0",
  "license": "MIT",
  "files": [
    {
      "name": "{{.DisplayName}}",
      "path": "{{.Name}}.{{if .TypeScript}}ts{{else}}js{{end}}",
      "type": "hook"
    }
  ],
  "tags": ["hook"]
}
`,
			"{{.Name}}.{{if .TypeScript}}ts{{else}}js{{end}}": `import { useState } from 'react';

export function {{.DisplayName}}() {
  const [value, setValue] = useState{{if .TypeScript}}<boolean>{{end}}(false);
  return { value, setValue };
}
`,
		},
	}
}

// utilityTemplate is a plain utility module skeleton.
func utilityTemplate() *Template {
	return &Template{
		Name:        "utility",
		Description: "Utility module",
		Files: map[string]string{
			"component.json": `{
  "name": "{{.Name}}",
  "displayName": "{{.DisplayName}}",
  "description": "TODO: describe {{.DisplayName}}",
  "category": "{{.Category}}",
  "version": "1.0.0",
  "license": "MIT",
  "files": [
    {
      "name": "{{.DisplayName}}",
      "path": "{{.Name}}.{{if .TypeScript}}ts{{else}}js{{end}}",
      "type": "utility"
    }
  ],
  "tags": ["utility"]
}
`,
			"{{.Name}}.{{if .TypeScript}}ts{{else}}js{{end}}": `export function {{.DisplayName}}(){{if .TypeScript}}: void{{end}} {
  // TODO: implement
}
`,
		},
	}
}
