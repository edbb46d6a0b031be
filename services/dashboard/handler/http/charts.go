package http

import (
	"fmt"

	"github.com/fleetops/shipsight/internal/pkg/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	chartWidth  = "100%"
	chartHeight = "420px"
)

// statusPieChart builds the shipment status distribution donut
func statusPieChart(distribution []models.StatusCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Shipment Status Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	data := make([]opts.PieData, 0, len(distribution))
	for _, sc := range distribution {
		data = append(data, opts.PieData{Name: string(sc.Status), Value: sc.Count})
	}

	pie.AddSeries("status", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
	)

	return pie
}

// incidentBarChart builds the grouped Missing/Damaged percentage bars
func incidentBarChart(rates []models.GroupIncidentRate, groupKey models.GroupKey) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%% of Missing and Damaged by %s", groupKey.Label()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "% of Shipments"}),
	)

	// One x entry per group, one series per incident status
	var groups []string
	seen := make(map[string]struct{})
	percents := make(map[models.ShipmentStatus]map[string]float64)
	for _, r := range rates {
		if _, ok := seen[r.GroupID]; !ok {
			seen[r.GroupID] = struct{}{}
			groups = append(groups, r.GroupID)
		}
		if percents[r.Status] == nil {
			percents[r.Status] = make(map[string]float64)
		}
		percents[r.Status][r.GroupID] = r.Percent
	}

	bar.SetXAxis(groups)
	for _, status := range models.IncidentStatuses {
		data := make([]opts.BarData, 0, len(groups))
		for _, group := range groups {
			data = append(data, opts.BarData{Value: percents[status][group]})
		}
		bar.AddSeries(string(status), data)
	}

	return bar
}

// missingTrendChart builds the Missing shipments over time line
func missingTrendChart(trend []models.TrendPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Missing Shipments Over Time"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	dates := make([]string, 0, len(trend))
	data := make([]opts.LineData, 0, len(trend))
	for _, point := range trend {
		dates = append(dates, point.Date)
		data = append(data, opts.LineData{Value: point.Count})
	}

	line.SetXAxis(dates).AddSeries("Missing", data).SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line
}

// destinationMapChart builds the geographic bubble map, bubbles sized by the
// per-destination incident percentage
func destinationMapChart(incidents []models.DestinationIncident, status models.ShipmentStatus) *charts.Geo {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%% of %s Shipments by Destination", status),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: "world"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c}",
		}),
	)

	data := make([]opts.GeoData, 0, len(incidents))
	for _, d := range incidents {
		data = append(data, opts.GeoData{
			Name:  d.Destination,
			Value: []interface{}{d.Coord.Longitude, d.Coord.Latitude, d.Percent},
		})
	}

	geo.AddSeries(string(status), types.ChartScatter, data,
		func(s *charts.SingleSeries) {
			s.SymbolSize = types.FuncStr("function (val) { return Math.max(6, val[2] * 0.3); }")
			s.ItemStyle = &opts.ItemStyle{Color: "#d9534f"}
		},
	)

	return geo
}
