package chart_tools

import "fmt"

// Tool names split into the two families the visualization workflow cares
// about. Data generation produces datasets; chart creation turns a dataset
// into a renderable figure. Classification of a model turn depends entirely
// on which families its calls fall in.

var data_generation_functions = map[string]bool{
	"generate_business_data":    true,
	"generate_time_series_data": true,
	"generate_statistical_data": true,
	"generate_comparison_data":  true,
	"generate_demographic_data": true,
	"generate_performance_data": true,
	"generate_financial_data":   true,
}

var chart_creation_functions = map[string]bool{
	"create_bar_chart":    true,
	"create_line_chart":   true,
	"create_scatter_plot": true,
	"create_pie_chart":    true,
	"create_histogram":    true,
	"create_heatmap":      true,
	"create_box_plot":     true,
	"create_area_chart":   true,
	"create_violin_plot":  true,
}

// Is_Data_Generation_Function reports whether name belongs to the data
// generation family.
func Is_Data_Generation_Function(name string) bool {
	return data_generation_functions[name]
}

// Is_Chart_Creation_Function reports whether name belongs to the chart
// creation family.
func Is_Chart_Creation_Function(name string) bool {
	return chart_creation_functions[name]
}

// VerifyDeclarations checks that every declared tool belongs to exactly one
// family and every family member has a declaration. Run it at startup so a
// declaration added without family membership fails loudly instead of
// silently classifying as a plain text call.
func VerifyDeclarations() error {
	declared := map[string]bool{}
	for _, decl := range AllTools() {
		if declared[decl.Name] {
			return fmt.Errorf("duplicate tool declaration: %s", decl.Name)
		}
		declared[decl.Name] = true

		isData := data_generation_functions[decl.Name]
		isChart := chart_creation_functions[decl.Name]
		if isData == isChart {
			return fmt.Errorf("tool %s must belong to exactly one family", decl.Name)
		}
	}
	for name := range data_generation_functions {
		if !declared[name] {
			return fmt.Errorf("data generation function %s has no declaration", name)
		}
	}
	for name := range chart_creation_functions {
		if !declared[name] {
			return fmt.Errorf("chart creation function %s has no declaration", name)
		}
	}
	return nil
}
