package chart_tools

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
)

var chart_logger = log.New(os.Stdout, "[CHARTS] ", log.LstdFlags)

// Figures follow the Plotly JSON schema: a "data" list of traces plus a
// "layout" object. They are never rendered here; the front end feeds them
// straight to plotly.js.

func base_layout(title, xTitle, yTitle string) map[string]interface{} {
	layout := map[string]interface{}{
		"title":    map[string]interface{}{"text": title},
		"template": "plotly_white",
		"margin":   map[string]interface{}{"l": 20, "r": 20, "t": 50, "b": 20},
	}
	if xTitle != "" {
		layout["xaxis"] = map[string]interface{}{"title": map[string]interface{}{"text": xTitle}}
	}
	if yTitle != "" {
		layout["yaxis"] = map[string]interface{}{"title": map[string]interface{}{"text": yTitle}}
	}
	return layout
}

// Error_Figure builds a figure whose only content is a centered annotation
// describing what went wrong. Chart builders return it instead of failing so
// the user always sees something renderable.
func Error_Figure(title, message string) map[string]interface{} {
	return map[string]interface{}{
		"data": []interface{}{},
		"layout": map[string]interface{}{
			"title":    map[string]interface{}{"text": title},
			"template": "plotly_white",
			"margin":   map[string]interface{}{"l": 20, "r": 20, "t": 50, "b": 20},
			"annotations": []interface{}{
				map[string]interface{}{
					"text":      message,
					"xref":      "paper",
					"yref":      "paper",
					"x":         0.5,
					"y":         0.5,
					"showarrow": false,
					"font":      map[string]interface{}{"size": 14},
				},
			},
		},
	}
}

// Create_Bar_Chart builds a bar chart comparing values across categories.
func Create_Bar_Chart(categories []string, values []float64, title, xTitle, yTitle, colorScheme string) map[string]interface{} {
	if title == "" {
		title = "Bar Chart"
	}
	if xTitle == "" {
		xTitle = "Categories"
	}
	if yTitle == "" {
		yTitle = "Values"
	}
	if len(categories) != len(values) {
		chart_logger.Printf("bar chart length mismatch: %d categories vs %d values", len(categories), len(values))
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Chart creation failed.<br>Error: categories and values must have same length: %d vs %d", len(categories), len(values)))
	}
	if len(categories) == 0 {
		chart_logger.Println("bar chart called with empty categories")
		return Error_Figure("Chart Generation Error", "Chart creation failed.<br>Error: categories list cannot be empty")
	}

	trace := map[string]interface{}{
		"type": "bar",
		"x":    categories,
		"y":    values,
	}
	if colorScheme != "" && colorScheme != "plotly" {
		trace["marker"] = map[string]interface{}{"colorscale": colorScheme}
	}

	layout := base_layout(title, xTitle, yTitle)
	layout["xaxis"] = map[string]interface{}{
		"title":         map[string]interface{}{"text": xTitle},
		"categoryorder": "array",
		"categoryarray": categories,
	}
	return map[string]interface{}{
		"data":   []interface{}{trace},
		"layout": layout,
	}
}

// Create_Line_Chart builds a line chart over ordered x values.
func Create_Line_Chart(xData []string, yData []float64, title, xTitle, yTitle, lineColor string) map[string]interface{} {
	if title == "" {
		title = "Line Chart"
	}
	if xTitle == "" {
		xTitle = "X-axis"
	}
	if yTitle == "" {
		yTitle = "Y-axis"
	}
	if lineColor == "" {
		lineColor = "blue"
	}
	if len(xData) != len(yData) {
		chart_logger.Printf("line chart length mismatch: %d x vs %d y", len(xData), len(yData))
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating line chart: x and y data must have same length: %d vs %d", len(xData), len(yData)))
	}

	trace := map[string]interface{}{
		"type": "scatter",
		"mode": "lines",
		"x":    xData,
		"y":    yData,
		"line": map[string]interface{}{"color": lineColor, "shape": "linear"},
	}
	return map[string]interface{}{
		"data":   []interface{}{trace},
		"layout": base_layout(title, xTitle, yTitle),
	}
}

// Create_Scatter_Plot builds a scatter plot. Size and color series are
// optional; when color categories are given each category becomes its own
// trace so the legend groups points correctly.
func Create_Scatter_Plot(xData, yData []float64, title, xTitle, yTitle string, sizeData []float64, colorData []string) map[string]interface{} {
	if title == "" {
		title = "Scatter Plot"
	}
	if xTitle == "" {
		xTitle = "X-axis"
	}
	if yTitle == "" {
		yTitle = "Y-axis"
	}
	if len(xData) != len(yData) {
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating scatter plot: x and y data must have same length: %d vs %d", len(xData), len(yData)))
	}
	if len(sizeData) > 0 && len(sizeData) != len(xData) {
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating scatter plot: size data length %d does not match %d points", len(sizeData), len(xData)))
	}
	if len(colorData) > 0 && len(colorData) != len(xData) {
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating scatter plot: color data length %d does not match %d points", len(colorData), len(xData)))
	}

	var traces []interface{}
	if len(colorData) > 0 {
		order := []string{}
		grouped := map[string][]int{}
		for i, c := range colorData {
			if _, ok := grouped[c]; !ok {
				order = append(order, c)
			}
			grouped[c] = append(grouped[c], i)
		}
		for _, category := range order {
			idx := grouped[category]
			x := make([]float64, 0, len(idx))
			y := make([]float64, 0, len(idx))
			sizes := make([]float64, 0, len(idx))
			for _, i := range idx {
				x = append(x, xData[i])
				y = append(y, yData[i])
				if len(sizeData) > 0 {
					sizes = append(sizes, sizeData[i])
				}
			}
			trace := map[string]interface{}{
				"type": "scatter",
				"mode": "markers",
				"name": category,
				"x":    x,
				"y":    y,
			}
			if len(sizes) > 0 {
				trace["marker"] = map[string]interface{}{"size": sizes}
			}
			traces = append(traces, trace)
		}
	} else {
		trace := map[string]interface{}{
			"type": "scatter",
			"mode": "markers",
			"x":    xData,
			"y":    yData,
		}
		if len(sizeData) > 0 {
			trace["marker"] = map[string]interface{}{"size": sizeData}
		}
		traces = []interface{}{trace}
	}

	return map[string]interface{}{
		"data":   traces,
		"layout": base_layout(title, xTitle, yTitle),
	}
}

// Create_Pie_Chart builds a pie chart of proportions.
func Create_Pie_Chart(labels []string, values []float64, title string, showPercentages bool) map[string]interface{} {
	if title == "" {
		title = "Pie Chart"
	}
	if len(labels) != len(values) {
		chart_logger.Printf("pie chart length mismatch: %d labels vs %d values", len(labels), len(values))
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating pie chart: labels and values must have same length: %d vs %d", len(labels), len(values)))
	}
	for _, v := range values {
		if v < 0 {
			chart_logger.Println("negative values found in pie chart data")
			break
		}
	}

	textinfo := "label"
	if showPercentages {
		textinfo = "percent+label"
	}
	trace := map[string]interface{}{
		"type":         "pie",
		"labels":       labels,
		"values":       values,
		"textposition": "inside",
		"textinfo":     textinfo,
	}
	return map[string]interface{}{
		"data":   []interface{}{trace},
		"layout": base_layout(title, "", ""),
	}
}

// Create_Histogram builds a histogram of a numeric sample.
func Create_Histogram(data []float64, bins int, title, xTitle, yTitle string) map[string]interface{} {
	if title == "" {
		title = "Histogram"
	}
	if xTitle == "" {
		xTitle = "Values"
	}
	if yTitle == "" {
		yTitle = "Frequency"
	}
	if bins <= 0 {
		bins = 20
	}
	if len(data) == 0 {
		return Error_Figure("Chart Generation Error", "Error creating histogram: data list cannot be empty")
	}

	trace := map[string]interface{}{
		"type":   "histogram",
		"x":      data,
		"nbinsx": bins,
	}
	return map[string]interface{}{
		"data":   []interface{}{trace},
		"layout": base_layout(title, xTitle, yTitle),
	}
}

// Create_Heatmap builds a heatmap from a matrix of values.
func Create_Heatmap(data [][]float64, xLabels, yLabels []string, title, colorScale string) map[string]interface{} {
	if title == "" {
		title = "Heatmap"
	}
	if colorScale == "" {
		colorScale = "Viridis"
	}
	if len(data) == 0 {
		return Error_Figure("Chart Generation Error", "Error creating heatmap: data matrix cannot be empty")
	}
	if len(data) != len(yLabels) {
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating heatmap: %d rows vs %d y labels", len(data), len(yLabels)))
	}
	for _, row := range data {
		if len(row) != len(xLabels) {
			return Error_Figure("Chart Generation Error",
				fmt.Sprintf("Error creating heatmap: row length %d vs %d x labels", len(row), len(xLabels)))
		}
	}

	trace := map[string]interface{}{
		"type":       "heatmap",
		"z":          data,
		"x":          xLabels,
		"y":          yLabels,
		"colorscale": colorScale,
	}
	return map[string]interface{}{
		"data":   []interface{}{trace},
		"layout": base_layout(title, "", ""),
	}
}

// parse_data_groups decodes the JSON object of group name to value list used
// by the box and violin tools. Group order is sorted so trace order is stable.
func parse_data_groups(dataGroupsJSON string) ([]string, map[string][]float64, error) {
	groups := map[string][]float64{}
	if err := json.Unmarshal([]byte(dataGroupsJSON), &groups); err != nil {
		return nil, nil, err
	}
	if len(groups) == 0 {
		return nil, nil, fmt.Errorf("no groups in data")
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, groups, nil
}

// Create_Box_Plot builds one box trace per group from a JSON-encoded mapping
// of group name to value list.
func Create_Box_Plot(dataGroupsJSON, title, yTitle string) map[string]interface{} {
	if title == "" {
		title = "Box Plot"
	}
	if yTitle == "" {
		yTitle = "Values"
	}
	names, groups, err := parse_data_groups(dataGroupsJSON)
	if err != nil {
		chart_logger.Printf("box plot data parse failed: %v", err)
		return Error_Figure("JSON Parse Error", fmt.Sprintf("Error parsing JSON data: %v", err))
	}

	traces := make([]interface{}, 0, len(names))
	for _, name := range names {
		traces = append(traces, map[string]interface{}{
			"type": "box",
			"name": name,
			"y":    groups[name],
		})
	}
	return map[string]interface{}{
		"data":   traces,
		"layout": base_layout(title, "Groups", yTitle),
	}
}

// Create_Area_Chart builds a filled line chart.
func Create_Area_Chart(xData []string, yData []float64, title, xTitle, yTitle, fillColor string) map[string]interface{} {
	if title == "" {
		title = "Area Chart"
	}
	if xTitle == "" {
		xTitle = "X-axis"
	}
	if yTitle == "" {
		yTitle = "Y-axis"
	}
	if fillColor == "" {
		fillColor = "lightblue"
	}
	if len(xData) != len(yData) {
		return Error_Figure("Chart Generation Error",
			fmt.Sprintf("Error creating area chart: x and y data must have same length: %d vs %d", len(xData), len(yData)))
	}

	trace := map[string]interface{}{
		"type":      "scatter",
		"mode":      "lines",
		"x":         xData,
		"y":         yData,
		"fill":      "tozeroy",
		"fillcolor": fillColor,
	}
	return map[string]interface{}{
		"data":   []interface{}{trace},
		"layout": base_layout(title, xTitle, yTitle),
	}
}

// Create_Violin_Plot builds one violin trace per group from a JSON-encoded
// mapping of group name to value list.
func Create_Violin_Plot(dataGroupsJSON, title, yTitle string) map[string]interface{} {
	if title == "" {
		title = "Violin Plot"
	}
	if yTitle == "" {
		yTitle = "Values"
	}
	names, groups, err := parse_data_groups(dataGroupsJSON)
	if err != nil {
		chart_logger.Printf("violin plot data parse failed: %v", err)
		return Error_Figure("JSON Parse Error", fmt.Sprintf("Error parsing JSON data: %v", err))
	}

	traces := make([]interface{}, 0, len(names))
	for _, name := range names {
		traces = append(traces, map[string]interface{}{
			"type": "violin",
			"name": name,
			"y":    groups[name],
		})
	}
	return map[string]interface{}{
		"data":   traces,
		"layout": base_layout(title, "Groups", yTitle),
	}
}
