package docs

// indexTemplate renders the overview page: every component grouped by
// category with counts.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header>
  <h1>{{.Name}}</h1>
  <p class="meta">v{{.Version}}{{with .Description}} · {{.}}{{end}}</p>
</header>
<main>
{{range .Groups}}
  <section class="category">
    <h2>{{.Name}} <span class="count">({{.Count}})</span></h2>
    <ul class="components">
    {{range .Components}}
      <li>
        <a href="components/{{.Name}}.html">{{.DisplayName}}</a>
        <span class="version">v{{.Version}}</span>
        {{if .Deprecated}}<span class="badge deprecated">deprecated</span>{{end}}
        {{if .Experimental}}<span class="badge experimental">experimental</span>{{end}}
        <p>{{.Description}}</p>
      </li>
    {{end}}
    </ul>
  </section>
{{end}}
</main>
<footer>
  <p>Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}} · {{len .Components}} components</p>
</footer>
</body>
</html>
`

// componentTemplate renders one detail page.
const componentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Component.DisplayName}} · {{.Site.Name}}</title>
<link rel="stylesheet" href="../style.css">
</head>
<body>
<header>
  <p class="breadcrumb"><a href="../index.html">{{.Site.Name}}</a> / {{.Component.Name}}</p>
  <h1>{{.Component.DisplayName}} <span class="version">v{{.Component.Version}}</span></h1>
  <p>{{.Component.Description}}</p>
  <p class="meta">{{.Component.Category}} · {{dash .Component.License}}{{with .Component.Author}} · {{.}}{{end}}</p>
</header>
<main>
  <section>
    <h2>Install</h2>
    <pre class="install"><code>{{install .Component.Name}}</code></pre>
  </section>

{{if .Component.Props}}
  <section>
    <h2>Props</h2>
    <table>
      <thead>
        <tr><th>Name</th><th>Type</th><th>Required</th><th>Default</th><th>Description</th></tr>
      </thead>
      <tbody>
      {{range .Component.Props}}
        <tr>
          <td><code>{{.Name}}</code></td>
          <td><code>{{.Type}}</code></td>
          <td>{{yesno .Required}}</td>
          <td>{{propDefault .}}</td>
          <td>{{dash .Description}}</td>
        </tr>
      {{end}}
      </tbody>
    </table>
  </section>
{{end}}

{{if .Component.Examples}}
  <section>
    <h2>Examples</h2>
    {{range .Component.Examples}}
    <pre><code>{{.}}</code></pre>
    {{end}}
  </section>
{{end}}

{{if .Component.Files}}
  <section>
    <h2>Files</h2>
    <ul class="files">
    {{range .Component.Files}}
      <li><code>{{.Path}}</code> <span class="badge">{{.Type}}</span></li>
    {{end}}
    </ul>
  </section>
{{end}}

{{with nonDev .Component.Dependencies}}
  <section>
    <h2>Dependencies</h2>
    <ul class="deps">
    {{range .}}
      <li><code>{{.Name}}</code>{{with .Version}} <span class="version">{{.}}</span>{{end}}</li>
    {{end}}
    </ul>
  </section>
{{end}}
</main>
</body>
</html>
`

// styleSheet keeps the generated pages readable without any build
// tooling on the consumer side.
const styleSheet = `:root {
  --fg: #1a1a2e;
  --muted: #6b7280;
  --accent: #4f46e5;
  --border: #e5e7eb;
  --bg-code: #f6f8fa;
}
* { box-sizing: border-box; }
body {
  margin: 0 auto;
  max-width: 64rem;
  padding: 2rem 1.5rem;
  font-family: system-ui, -apple-system, sans-serif;
  color: var(--fg);
  line-height: 1.6;
}
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
h1 { margin-bottom: 0.25rem; }
.meta, .breadcrumb, footer { color: var(--muted); font-size: 0.9rem; }
.version { color: var(--muted); font-size: 0.85em; }
.count { color: var(--muted); font-weight: normal; }
.badge {
  display: inline-block;
  padding: 0.1rem 0.45rem;
  border: 1px solid var(--border);
  border-radius: 999px;
  font-size: 0.75rem;
  color: var(--muted);
}
.badge.deprecated { color: #b91c1c; border-color: #b91c1c; }
.badge.experimental { color: #b45309; border-color: #b45309; }
ul.components { list-style: none; padding: 0; }
ul.components > li { padding: 0.75rem 0; border-bottom: 1px solid var(--border); }
ul.components p { margin: 0.25rem 0 0; color: var(--muted); }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.75rem; border-bottom: 1px solid var(--border); }
th { font-size: 0.85rem; color: var(--muted); }
pre {
  background: var(--bg-code);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 0.75rem 1rem;
  overflow-x: auto;
}
code { font-family: ui-monospace, monospace; font-size: 0.9em; }
ul.files, ul.deps { list-style: none; padding: 0; }
ul.files li, ul.deps li { padding: 0.2rem 0; }
footer { margin-top: 3rem; border-top: 1px solid var(--border); padding-top: 1rem; }
`
