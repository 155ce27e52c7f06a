package chart_tools

import (
	"encoding/json"
	"testing"
)

func TestVerifyDeclarations(t *testing.T) {
	if err := VerifyDeclarations(); err != nil {
		t.Errorf("declarations out of sync with families: %v", err)
	}
}

func TestAllToolsCount(t *testing.T) {
	tools := AllTools()
	if len(tools) != 16 {
		t.Errorf("expected 16 tool declarations, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool declaration with empty name")
		}
		if tool.Parameters.Type != "object" {
			t.Errorf("tool %s parameters type = %q, want object", tool.Name, tool.Parameters.Type)
		}
		if len(tool.Parameters.Required) == 0 {
			t.Errorf("tool %s has no required parameters", tool.Name)
		}
	}
}

func TestFamilyMembership(t *testing.T) {
	if !Is_Chart_Creation_Function("create_bar_chart") {
		t.Error("create_bar_chart should be a chart creation function")
	}
	if !Is_Data_Generation_Function("generate_business_data") {
		t.Error("generate_business_data should be a data generation function")
	}
	if Is_Chart_Creation_Function("generate_business_data") {
		t.Error("generate_business_data misclassified as chart creation")
	}
	if Is_Data_Generation_Function("unknown_tool") || Is_Chart_Creation_Function("unknown_tool") {
		t.Error("unknown name should belong to no family")
	}
}

func TestExecuteFunctionUnknown(t *testing.T) {
	result, ok := Execute_Function("does_not_exist", map[string]interface{}{})
	if ok {
		t.Error("unknown function should report ok=false")
	}
	if result != nil {
		t.Errorf("unknown function should return nil result, got %v", result)
	}
}

func TestExecuteFunctionNilArgs(t *testing.T) {
	result, ok := Execute_Function("generate_business_data", nil)
	if !ok {
		t.Fatal("nil args should not fail execution")
	}
	if _, found := result["values"]; !found {
		t.Error("business data result missing values key")
	}
}

func TestExecuteBarChart(t *testing.T) {
	result, ok := Execute_Function("create_bar_chart", map[string]interface{}{
		"categories": []interface{}{"Q1", "Q2", "Q3"},
		"values":     []interface{}{10.0, 20.0, 15.0},
		"title":      "Quarterly Sales",
	})
	if !ok {
		t.Fatal("bar chart execution failed")
	}
	fig, found := result["figure"].(map[string]interface{})
	if !found {
		t.Fatal("bar chart result missing figure")
	}
	traces, found := fig["data"].([]interface{})
	if !found || len(traces) != 1 {
		t.Fatalf("expected one trace, got %v", fig["data"])
	}
	trace := traces[0].(map[string]interface{})
	if trace["type"] != "bar" {
		t.Errorf("trace type = %v, want bar", trace["type"])
	}
}

func TestNormalizeDataGroups(t *testing.T) {
	result, ok := Execute_Function("create_box_plot", map[string]interface{}{
		"data_groups": map[string]interface{}{
			"A": []interface{}{1.0, 2.0, 3.0},
			"B": []interface{}{4.0, 5.0, 6.0},
		},
		"title": "Groups",
	})
	if !ok {
		t.Fatal("box plot execution failed")
	}
	fig := result["figure"].(map[string]interface{})
	traces := fig["data"].([]interface{})
	if len(traces) != 2 {
		t.Errorf("expected 2 box traces, got %d", len(traces))
	}
	layout := fig["layout"].(map[string]interface{})
	if _, hasErr := layout["annotations"]; hasErr {
		t.Error("normalized data_groups should not produce an error figure")
	}
}

func TestNormalizeStatisticalParameters(t *testing.T) {
	result, ok := Execute_Function("generate_statistical_data", map[string]interface{}{
		"distribution": "normal",
		"size":         50.0,
		"parameters":   map[string]interface{}{"mean": 10.0, "std": 2.0},
	})
	if !ok {
		t.Fatal("statistical data execution failed")
	}
	data, found := result["data"].([]float64)
	if !found {
		t.Fatalf("statistical result missing data list: %v", result["data"])
	}
	if len(data) != 50 {
		t.Errorf("expected 50 samples, got %d", len(data))
	}
	if result["type"] != "statistical" {
		t.Errorf("result type = %v, want statistical", result["type"])
	}
}

func TestNormalizeDataRange(t *testing.T) {
	result, ok := Execute_Function("generate_comparison_data", map[string]interface{}{
		"items":      []interface{}{"X", "Y"},
		"metrics":    []interface{}{"speed"},
		"data_range": []interface{}{10.0, 20.0},
	})
	if !ok {
		t.Fatal("comparison data execution failed")
	}
	values, found := result["speed"].([]float64)
	if !found {
		t.Fatalf("comparison result missing metric series: %v", result)
	}
	for _, v := range values {
		if v < 10 || v > 20 {
			t.Errorf("value %v outside normalized range [10, 20]", v)
		}
	}
}

func TestExecuteFunctionDeterministic(t *testing.T) {
	args := map[string]interface{}{
		"data_type":  "sales",
		"categories": []interface{}{"North", "South", "East"},
		"trend":      "increasing",
	}
	first, ok := Execute_Function("generate_business_data", args)
	if !ok {
		t.Fatal("first execution failed")
	}
	second, ok := Execute_Function("generate_business_data", args)
	if !ok {
		t.Fatal("second execution failed")
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("same arguments produced different datasets")
	}
}
