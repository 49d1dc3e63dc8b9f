package htmlreport

// reportHTML is the full report document. Everything is inlined: the themes
// are CSS custom property sets switched via the html element's data-theme
// attribute, and the scripts only toggle classes and localStorage.
const reportHTML = `<!DOCTYPE html>
<html lang="en" data-theme="{{ .Theme }}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>YAML Comparison Report</title>
<style>
* { box-sizing: border-box; }

:root {
  --bg-primary: #f8f9fa;
  --bg-secondary: #ffffff;
  --bg-tertiary: #e9ecef;
  --text-primary: #212529;
  --text-muted: #6c757d;
  --border-color: #dee2e6;
  --header-bg: linear-gradient(135deg, #4a90a4 0%, #2d6a7a 100%);
  --header-text: #ffffff;
  --section-changed-bg: linear-gradient(135deg, #f39c12 0%, #e67e22 100%);
  --section-removed-bg: linear-gradient(135deg, #3498db 0%, #2980b9 100%);
  --section-added-bg: linear-gradient(135deg, #27ae60 0%, #1e8449 100%);
  --section-typechanged-bg: linear-gradient(135deg, #9b59b6 0%, #8e44ad 100%);
  --value-old-bg: #fdecea;
  --value-old-border: #e74c3c;
  --value-old-text: #c0392b;
  --value-new-bg: #e8f8f0;
  --value-new-border: #27ae60;
  --value-new-text: #1e8449;
  --row-number-bg: #3498db;
  --row-number-text: #ffffff;
  --button-bg: #e9ecef;
  --button-text: #495057;
  --success-bg: linear-gradient(135deg, #27ae60 0%, #2ecc71 100%);
  --shadow: 0 4px 16px rgba(0,0,0,0.1);
}

[data-theme="night"] {
  --bg-primary: #1a1d23;
  --bg-secondary: #22262e;
  --bg-tertiary: #2a2f38;
  --text-primary: #e4e6eb;
  --text-muted: #8a8d91;
  --border-color: #3a3f47;
  --header-bg: linear-gradient(135deg, #2d5a6a 0%, #1e3d4a 100%);
  --header-text: #e4e6eb;
  --section-changed-bg: linear-gradient(135deg, #b8860b 0%, #996600 100%);
  --section-removed-bg: linear-gradient(135deg, #2874a6 0%, #1b4f72 100%);
  --section-added-bg: linear-gradient(135deg, #1e8449 0%, #145a32 100%);
  --section-typechanged-bg: linear-gradient(135deg, #7d3c98 0%, #5b2c6f 100%);
  --value-old-bg: #3d2a2a;
  --value-old-border: #c0392b;
  --value-old-text: #f1948a;
  --value-new-bg: #2a3d2a;
  --value-new-border: #27ae60;
  --value-new-text: #82e0aa;
  --row-number-bg: #2874a6;
  --row-number-text: #e4e6eb;
  --button-bg: #2a2f38;
  --button-text: #b0b3b8;
  --success-bg: linear-gradient(135deg, #1e8449 0%, #27ae60 100%);
  --shadow: 0 4px 16px rgba(0,0,0,0.4);
}

[data-theme="contrast"] {
  --bg-primary: #ffffff;
  --bg-secondary: #ffffff;
  --bg-tertiary: #f0f0f0;
  --text-primary: #000000;
  --text-muted: #333333;
  --border-color: #000000;
  --header-bg: #000000;
  --header-text: #ffffff;
  --section-changed-bg: #b35900;
  --section-removed-bg: #0047ab;
  --section-added-bg: #006400;
  --section-typechanged-bg: #4b0082;
  --value-old-bg: #ffe6e6;
  --value-old-border: #cc0000;
  --value-old-text: #990000;
  --value-new-bg: #e6ffe6;
  --value-new-border: #006400;
  --value-new-text: #004d00;
  --row-number-bg: #000000;
  --row-number-text: #ffffff;
  --button-bg: #f0f0f0;
  --button-text: #000000;
  --success-bg: #006400;
  --shadow: 0 4px 8px rgba(0,0,0,0.25);
}

body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  background: var(--bg-primary);
  color: var(--text-primary);
  margin: 0;
  padding: 28px;
  line-height: 1.6;
}
.container { max-width: 1400px; margin: 0 auto; }

.theme-switcher {
  position: fixed;
  top: 16px;
  right: 16px;
  display: flex;
  gap: 8px;
  background: var(--bg-secondary);
  padding: 8px 12px;
  border-radius: 10px;
  border: 1px solid var(--border-color);
  box-shadow: var(--shadow);
  z-index: 1000;
}
.theme-btn {
  padding: 8px 14px;
  border: 2px solid var(--border-color);
  border-radius: 8px;
  cursor: pointer;
  font-weight: 700;
  background: var(--button-bg);
  color: var(--button-text);
}
.theme-btn.active {
  background: var(--row-number-bg);
  color: var(--row-number-text);
  border-color: var(--row-number-bg);
}

header {
  background: var(--header-bg);
  padding: 32px 44px;
  border-radius: 14px;
  margin-bottom: 28px;
  box-shadow: var(--shadow);
}
h1 { margin: 0 0 18px 0; color: var(--header-text); }
.meta-info {
  display: flex;
  flex-wrap: wrap;
  gap: 20px;
  color: var(--header-text);
}
.file-badge {
  background: rgba(255,255,255,0.2);
  padding: 6px 14px;
  border-radius: 18px;
  font-family: 'Monaco', 'Consolas', monospace;
}
.generated { color: var(--header-text); opacity: 0.8; margin: 12px 0 0 0; }

.summary-cards {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
  gap: 16px;
  margin-bottom: 28px;
}
.card {
  background: var(--bg-secondary);
  border: 1px solid var(--border-color);
  border-radius: 14px;
  padding: 20px;
  text-align: center;
  box-shadow: var(--shadow);
}
.card .count { font-size: 2.2em; font-weight: 800; }
.card .label { color: var(--text-muted); font-weight: 600; }

.success-banner {
  background: var(--success-bg);
  padding: 48px;
  border-radius: 14px;
  text-align: center;
  box-shadow: var(--shadow);
}
.success-banner h2 { margin: 0; color: #ffffff; }
.success-icon { font-size: 4em; margin-bottom: 16px; }

.section {
  background: var(--bg-secondary);
  border: 1px solid var(--border-color);
  border-radius: 14px;
  margin-bottom: 24px;
  overflow: hidden;
  box-shadow: var(--shadow);
}
.section-header {
  padding: 18px 26px;
  font-weight: 800;
  font-size: 1.2em;
  display: flex;
  align-items: center;
  gap: 14px;
  cursor: pointer;
  user-select: none;
  color: #ffffff;
}
.section-header.changed { background: var(--section-changed-bg); }
.section-header.removed { background: var(--section-removed-bg); }
.section-header.added { background: var(--section-added-bg); }
.section-header.typechanged { background: var(--section-typechanged-bg); }
.count-badge {
  background: rgba(255,255,255,0.25);
  padding: 5px 14px;
  border-radius: 18px;
  font-size: 0.85em;
}
.toggle-icon { margin-left: auto; transition: transform 0.3s ease; }
.section.collapsed .toggle-icon { transform: rotate(-90deg); }
.section.collapsed .section-content { display: none; }

table { width: 100%; border-collapse: collapse; }
th {
  background: var(--bg-tertiary);
  padding: 14px 22px;
  text-align: left;
  text-transform: uppercase;
  font-size: 0.85em;
  letter-spacing: 0.5px;
  border-bottom: 2px solid var(--border-color);
}
th:first-child { width: 56px; text-align: center; }
td {
  padding: 16px 22px;
  border-bottom: 1px solid var(--border-color);
  vertical-align: top;
}
tr:last-child td { border-bottom: none; }
.row-number {
  display: inline-block;
  min-width: 30px;
  text-align: center;
  font-weight: 800;
  background: var(--row-number-bg);
  color: var(--row-number-text);
  border-radius: 6px;
  padding: 4px 8px;
}
.path-cell {
  font-family: 'Monaco', 'Consolas', monospace;
  font-weight: 700;
  word-break: break-all;
  max-width: 420px;
}
.value-cell {
  font-family: 'Monaco', 'Consolas', monospace;
  word-break: break-all;
  max-width: 380px;
  padding: 10px 16px;
  border-radius: 8px;
}
.value-old {
  background: var(--value-old-bg);
  border-left: 4px solid var(--value-old-border);
  color: var(--value-old-text);
}
.value-new {
  background: var(--value-new-bg);
  border-left: 4px solid var(--value-new-border);
  color: var(--value-new-text);
}
</style>
</head>
<body>
<div class="theme-switcher">
  <button class="theme-btn" data-set-theme="light">☀️ Light</button>
  <button class="theme-btn" data-set-theme="night">🌙 Night</button>
  <button class="theme-btn" data-set-theme="contrast">🔲 Contrast</button>
</div>
<div class="container">
<header>
  <h1>YAML Comparison Report</h1>
  <div class="meta-info">
    <span class="file-badge">{{ .LeftLabel }}</span>
    <span>vs</span>
    <span class="file-badge">{{ .RightLabel }}</span>
    {{ if .ConfigKey }}<span>config key: <strong>{{ .ConfigKey }}</strong></span>{{ end }}
    {{ if .StartPath }}<span>start path: <strong>{{ .StartPath }}</strong></span>{{ end }}
  </div>
  {{ if .GeneratedAt }}<p class="generated">generated at {{ .GeneratedAt }}</p>{{ end }}
</header>

{{ if eq .Total 0 }}
<div class="success-banner">
  <div class="success-icon">✅</div>
  <h2>No differences found: the documents are semantically equal</h2>
</div>
{{ else }}
<div class="summary-cards">
  <div class="card"><div class="count">{{ .Total }}</div><div class="label">Total</div></div>
  <div class="card"><div class="count">{{ .Summary.Added }}</div><div class="label">Added</div></div>
  <div class="card"><div class="count">{{ .Summary.Removed }}</div><div class="label">Removed</div></div>
  <div class="card"><div class="count">{{ .Summary.Changed }}</div><div class="label">Changed</div></div>
  <div class="card"><div class="count">{{ .Summary.TypeChanged }}</div><div class="label">Type changed</div></div>
</div>

{{ range .Sections }}
<div class="section">
  <div class="section-header {{ .Class }}" data-toggle-section>
    <span>{{ .Icon }}</span>
    <span>{{ .Label }}</span>
    <span class="count-badge">{{ len .Records }} item(s)</span>
    <span class="toggle-icon">▼</span>
  </div>
  <div class="section-content">
    <table>
      <thead>
        <tr>
          <th>#</th>
          <th>Path</th>
          {{ if .ShowBefore }}<th>{{ $.LeftLabel }}</th>{{ end }}
          {{ if .ShowAfter }}<th>{{ $.RightLabel }}</th>{{ end }}
        </tr>
      </thead>
      <tbody>
        {{ $section := . }}
        {{ range .Records }}
        <tr>
          <td><span class="row-number">{{ .Index }}</span></td>
          <td class="path-cell">{{ .Path }}</td>
          {{ if $section.ShowBefore }}<td><div class="value-cell value-old">{{ .Before }}</div></td>{{ end }}
          {{ if $section.ShowAfter }}<td><div class="value-cell value-new">{{ .After }}</div></td>{{ end }}
        </tr>
        {{ end }}
      </tbody>
    </table>
  </div>
</div>
{{ end }}
{{ end }}
</div>
<script>
(function () {
  var storageKey = 'yaml-compare-theme';
  var root = document.documentElement;
  var buttons = document.querySelectorAll('.theme-btn');

  function applyTheme(theme) {
    root.setAttribute('data-theme', theme);
    for (var i = 0; i < buttons.length; i++) {
      var btn = buttons[i];
      btn.classList.toggle('active', btn.getAttribute('data-set-theme') === theme);
    }
  }

  var saved = null;
  try { saved = window.localStorage.getItem(storageKey); } catch (e) {}
  applyTheme(saved || root.getAttribute('data-theme') || 'light');

  for (var i = 0; i < buttons.length; i++) {
    buttons[i].addEventListener('click', function () {
      var theme = this.getAttribute('data-set-theme');
      applyTheme(theme);
      try { window.localStorage.setItem(storageKey, theme); } catch (e) {}
    });
  }

  var headers = document.querySelectorAll('[data-toggle-section]');
  for (var j = 0; j < headers.length; j++) {
    headers[j].addEventListener('click', function () {
      this.parentElement.classList.toggle('collapsed');
    });
  }
})();
</script>
</body>
</html>
`
