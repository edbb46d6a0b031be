package http

import "html/template"

// pageTemplate is the dashboard layout. Chart elements and scripts come from
// go-echarts snippets; the echarts assets are loaded once here.
var pageTemplate = template.Must(template.New("dashboard").Parse(layoutHTML))

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/maps/world.js"></script>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f6f8; }
  .layout { display: flex; min-height: 100vh; }
  .sidebar { width: 260px; padding: 24px 20px; background: #fff; border-right: 1px solid #e3e5e8; }
  .sidebar h2 { font-size: 16px; margin-top: 0; }
  .sidebar label { display: block; font-size: 13px; color: #555; margin: 16px 0 4px; }
  .sidebar select { width: 100%; padding: 6px; }
  .sidebar .radio { margin: 4px 0; font-size: 14px; }
  .content { flex: 1; padding: 24px 32px; }
  .warning { background: #fff3cd; border: 1px solid #ffe69c; color: #664d03; padding: 12px 16px; border-radius: 6px; margin-bottom: 20px; }
  .metrics { display: flex; gap: 16px; margin-bottom: 24px; }
  .metric { flex: 1; background: #fff; border: 1px solid #e3e5e8; border-radius: 6px; padding: 16px 20px; }
  .metric .value { font-size: 28px; font-weight: 600; }
  .metric .label { font-size: 13px; color: #666; }
  .chart { background: #fff; border: 1px solid #e3e5e8; border-radius: 6px; padding: 12px; margin-bottom: 24px; }
</style>
</head>
<body>
<div class="layout">
  <aside class="sidebar">
    <h2>Filter Options</h2>
    <form method="GET" action="/">
      <label for="driver">Filter by Driver</label>
      <select id="driver" name="driver" onchange="this.form.submit()">
        <option value="All">All</option>
        {{ range .Filters.Drivers }}
        <option value="{{ .DriverID }}" {{ if eq .DriverID $.SelectedDriver }}selected{{ end }}>{{ .Label }}</option>
        {{ end }}
      </select>

      <label for="group_by">Compare Missing/Damaged By</label>
      <select id="group_by" name="group_by" onchange="this.form.submit()">
        {{ range .Filters.GroupKeys }}
        <option value="{{ . }}" {{ if eq . $.SelectedGroupKey }}selected{{ end }}>{{ .Label }}</option>
        {{ end }}
      </select>

      <label>Map Incident Type</label>
      {{ range .Filters.IncidentTypes }}
      <div class="radio">
        <input type="radio" id="type-{{ . }}" name="type" value="{{ . }}" {{ if eq . $.SelectedIncident }}checked{{ end }} onchange="this.form.submit()">
        <label for="type-{{ . }}" style="display:inline">{{ . }}</label>
      </div>
      {{ end }}
      <noscript><button type="submit">Apply</button></noscript>
    </form>
  </aside>

  <main class="content">
    <h1>{{ .Title }}</h1>

    {{ if .Unmapped }}
    <div class="warning">
      No coordinates for: {{ range $i, $d := .Unmapped }}{{ if $i }}, {{ end }}{{ $d }}{{ end }}. These destinations are excluded from the map.
    </div>
    {{ end }}

    <div class="metrics">
      <div class="metric">
        <div class="value">{{ .Metrics.TotalMissing }}</div>
        <div class="label">Total Missing</div>
      </div>
      <div class="metric">
        <div class="value">{{ .Metrics.AvgTransitTime }}</div>
        <div class="label">Avg Transit Time (Missing)</div>
      </div>
      <div class="metric">
        <div class="value">{{ .Metrics.TotalDamaged }}</div>
        <div class="label">Total Damaged</div>
      </div>
    </div>

    {{ range .Charts }}
    <div class="chart">
      {{ .Element }}
      {{ .Script }}
    </div>
    {{ end }}
  </main>
</div>
</body>
</html>
`
