package chart_tools

import (
	"strings"
	"testing"
)

func figure_layout(t *testing.T, fig map[string]interface{}) map[string]interface{} {
	t.Helper()
	layout, ok := fig["layout"].(map[string]interface{})
	if !ok {
		t.Fatalf("figure missing layout: %v", fig)
	}
	return layout
}

func is_error_figure(fig map[string]interface{}) bool {
	layout, ok := fig["layout"].(map[string]interface{})
	if !ok {
		return false
	}
	_, has := layout["annotations"]
	return has
}

func TestBarChartLayout(t *testing.T) {
	fig := Create_Bar_Chart([]string{"A", "B"}, []float64{1, 2}, "", "", "", "plotly")
	layout := figure_layout(t, fig)
	if layout["template"] != "plotly_white" {
		t.Errorf("template = %v, want plotly_white", layout["template"])
	}
	margin := layout["margin"].(map[string]interface{})
	if margin["l"] != 20 || margin["t"] != 50 || margin["b"] != 20 {
		t.Errorf("unexpected margin: %v", margin)
	}
	title := layout["title"].(map[string]interface{})
	if title["text"] != "Bar Chart" {
		t.Errorf("default title = %v", title["text"])
	}
}

func TestBarChartLengthMismatch(t *testing.T) {
	fig := Create_Bar_Chart([]string{"A", "B"}, []float64{1}, "Broken", "", "", "")
	if !is_error_figure(fig) {
		t.Fatal("length mismatch should produce an error figure")
	}
	layout := figure_layout(t, fig)
	title := layout["title"].(map[string]interface{})
	if title["text"] != "Chart Generation Error" {
		t.Errorf("error figure title = %v", title["text"])
	}
}

func TestLineChartTrace(t *testing.T) {
	fig := Create_Line_Chart([]string{"2024-01", "2024-02"}, []float64{5, 6}, "Trend", "Month", "Sales", "red")
	traces := fig["data"].([]interface{})
	trace := traces[0].(map[string]interface{})
	if trace["mode"] != "lines" {
		t.Errorf("line trace mode = %v", trace["mode"])
	}
	line := trace["line"].(map[string]interface{})
	if line["color"] != "red" {
		t.Errorf("line color = %v, want red", line["color"])
	}
}

func TestScatterPlotColorGroups(t *testing.T) {
	fig := Create_Scatter_Plot(
		[]float64{1, 2, 3, 4},
		[]float64{1, 4, 9, 16},
		"", "", "",
		nil,
		[]string{"a", "b", "a", "b"},
	)
	traces := fig["data"].([]interface{})
	if len(traces) != 2 {
		t.Fatalf("expected one trace per color category, got %d", len(traces))
	}
	first := traces[0].(map[string]interface{})
	if first["name"] != "a" {
		t.Errorf("first trace name = %v, want a", first["name"])
	}
	x := first["x"].([]float64)
	if len(x) != 2 {
		t.Errorf("category a should own 2 points, got %d", len(x))
	}
}

func TestPieChartPercentages(t *testing.T) {
	fig := Create_Pie_Chart([]string{"yes", "no"}, []float64{70, 30}, "Votes", true)
	trace := fig["data"].([]interface{})[0].(map[string]interface{})
	if trace["textinfo"] != "percent+label" {
		t.Errorf("textinfo = %v, want percent+label", trace["textinfo"])
	}

	fig = Create_Pie_Chart([]string{"yes", "no"}, []float64{70, 30}, "Votes", false)
	trace = fig["data"].([]interface{})[0].(map[string]interface{})
	if trace["textinfo"] != "label" {
		t.Errorf("textinfo = %v, want label", trace["textinfo"])
	}
}

func TestHistogramDefaults(t *testing.T) {
	fig := Create_Histogram([]float64{1, 2, 2, 3}, 0, "", "", "")
	trace := fig["data"].([]interface{})[0].(map[string]interface{})
	if trace["nbinsx"] != 20 {
		t.Errorf("default bins = %v, want 20", trace["nbinsx"])
	}
	if is_error_figure(fig) {
		t.Error("valid histogram input produced error figure")
	}
}

func TestHeatmapShapeValidation(t *testing.T) {
	fig := Create_Heatmap([][]float64{{1, 2}, {3, 4}}, []string{"x1", "x2"}, []string{"y1", "y2"}, "", "")
	if is_error_figure(fig) {
		t.Error("valid heatmap input produced error figure")
	}

	fig = Create_Heatmap([][]float64{{1, 2}}, []string{"x1", "x2"}, []string{"y1", "y2"}, "", "")
	if !is_error_figure(fig) {
		t.Error("row/label mismatch should produce error figure")
	}
}

func TestBoxPlotFromJSON(t *testing.T) {
	fig := Create_Box_Plot(`{"B": [4, 5], "A": [1, 2, 3]}`, "", "")
	traces := fig["data"].([]interface{})
	if len(traces) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(traces))
	}
	// Sorted group order keeps output stable across runs.
	first := traces[0].(map[string]interface{})
	if first["name"] != "A" {
		t.Errorf("first group = %v, want A", first["name"])
	}
}

func TestBoxPlotBadJSON(t *testing.T) {
	fig := Create_Box_Plot("{not json", "", "")
	if !is_error_figure(fig) {
		t.Fatal("invalid JSON should produce an error figure")
	}
	layout := figure_layout(t, fig)
	title := layout["title"].(map[string]interface{})
	if title["text"] != "JSON Parse Error" {
		t.Errorf("error title = %v, want JSON Parse Error", title["text"])
	}
	annotations := layout["annotations"].([]interface{})
	text := annotations[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(text, "Error parsing JSON data") {
		t.Errorf("unexpected annotation text: %s", text)
	}
}

func TestAreaChartFill(t *testing.T) {
	fig := Create_Area_Chart([]string{"a", "b"}, []float64{1, 2}, "", "", "", "")
	trace := fig["data"].([]interface{})[0].(map[string]interface{})
	if trace["fill"] != "tozeroy" {
		t.Errorf("fill = %v, want tozeroy", trace["fill"])
	}
	if trace["fillcolor"] != "lightblue" {
		t.Errorf("default fillcolor = %v, want lightblue", trace["fillcolor"])
	}
}

func TestViolinPlotTraces(t *testing.T) {
	fig := Create_Violin_Plot(`{"G1": [1, 2, 3]}`, "Shapes", "Score")
	trace := fig["data"].([]interface{})[0].(map[string]interface{})
	if trace["type"] != "violin" {
		t.Errorf("trace type = %v, want violin", trace["type"])
	}
}
