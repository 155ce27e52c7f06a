package chart_tools

import (
	"encoding/json"
	"log"
	"os"
)

var function_logger = log.New(os.Stdout, "[FUNCTIONS] ", log.LstdFlags)

// Argument extraction helpers. Model supplied arguments arrive as decoded
// JSON, so numbers are float64 and arrays are []interface{} regardless of
// the declared schema type. Missing or mistyped values fall back to zero
// values; the builders apply their own defaults from there.

func arg_string(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func arg_float(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

func arg_int(args map[string]interface{}, key string) int {
	return int(arg_float(args, key))
}

func arg_bool(args map[string]interface{}, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

func arg_strings(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func arg_floats(args map[string]interface{}, key string) []float64 {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case float64:
			out = append(out, v)
		case int:
			out = append(out, float64(v))
		case json.Number:
			f, _ := v.Float64()
			out = append(out, f)
		}
	}
	return out
}

func arg_matrix(args map[string]interface{}, key string) [][]float64 {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([][]float64, 0, len(raw))
	for _, rowRaw := range raw {
		row, ok := rowRaw.([]interface{})
		if !ok {
			continue
		}
		vals := make([]float64, 0, len(row))
		for _, item := range row {
			if f, ok := item.(float64); ok {
				vals = append(vals, f)
			}
		}
		out = append(out, vals)
	}
	return out
}

// normalize_args rewrites argument shapes the model commonly gets wrong.
// Some models send the box plot's data groups as a JSON object instead of
// the declared string, or a two element data_range instead of explicit
// min and max. The builders only speak the declared shapes, so fix the
// arguments here rather than rejecting the call.
func normalize_args(functionName string, args map[string]interface{}) map[string]interface{} {
	processed := make(map[string]interface{}, len(args))
	for k, v := range args {
		processed[k] = v
	}

	switch functionName {
	case "create_box_plot", "create_violin_plot":
		if groups, ok := processed["data_groups"]; ok {
			if encoded, err := json.Marshal(groups); err == nil {
				processed["data_groups_json"] = string(encoded)
				function_logger.Printf("converted data_groups to JSON string for %s", functionName)
			}
			delete(processed, "data_groups")
		}
	case "generate_statistical_data":
		if params, ok := processed["parameters"]; ok {
			if encoded, err := json.Marshal(params); err == nil {
				processed["parameters_json"] = string(encoded)
				function_logger.Printf("converted parameters to JSON string for %s", functionName)
			}
			delete(processed, "parameters")
		}
	case "generate_comparison_data":
		if rangeRaw, ok := processed["data_range"].([]interface{}); ok && len(rangeRaw) == 2 {
			if lo, ok := rangeRaw[0].(float64); ok {
				processed["min_value"] = lo
			}
			if hi, ok := rangeRaw[1].(float64); ok {
				processed["max_value"] = hi
			}
			delete(processed, "data_range")
			function_logger.Printf("converted data_range to min_value/max_value for %s", functionName)
		}
	}
	return processed
}

// Execute_Function dispatches a model-issued function call to its
// implementation. The second return is false when the name is unknown or
// execution panics; a visualization turn treats that call as if the model
// never made it.
func Execute_Function(functionName string, args map[string]interface{}) (result map[string]interface{}, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			function_logger.Printf("function %s panicked: %v", functionName, r)
			result, ok = nil, false
		}
	}()

	if args == nil {
		args = map[string]interface{}{}
	}
	processed := normalize_args(functionName, args)
	function_logger.Printf("executing function: %s", functionName)

	switch functionName {
	case "create_bar_chart":
		fig := Create_Bar_Chart(
			arg_strings(processed, "categories"),
			arg_floats(processed, "values"),
			arg_string(processed, "title"),
			arg_string(processed, "x_title"),
			arg_string(processed, "y_title"),
			arg_string(processed, "color_scheme"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_line_chart":
		fig := Create_Line_Chart(
			arg_strings(processed, "x_data"),
			arg_floats(processed, "y_data"),
			arg_string(processed, "title"),
			arg_string(processed, "x_title"),
			arg_string(processed, "y_title"),
			arg_string(processed, "line_color"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_scatter_plot":
		fig := Create_Scatter_Plot(
			arg_floats(processed, "x_data"),
			arg_floats(processed, "y_data"),
			arg_string(processed, "title"),
			arg_string(processed, "x_title"),
			arg_string(processed, "y_title"),
			arg_floats(processed, "size_data"),
			arg_strings(processed, "color_data"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_pie_chart":
		fig := Create_Pie_Chart(
			arg_strings(processed, "labels"),
			arg_floats(processed, "values"),
			arg_string(processed, "title"),
			arg_bool(processed, "show_percentages", true),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_histogram":
		fig := Create_Histogram(
			arg_floats(processed, "data"),
			arg_int(processed, "bins"),
			arg_string(processed, "title"),
			arg_string(processed, "x_title"),
			arg_string(processed, "y_title"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_heatmap":
		fig := Create_Heatmap(
			arg_matrix(processed, "data"),
			arg_strings(processed, "x_labels"),
			arg_strings(processed, "y_labels"),
			arg_string(processed, "title"),
			arg_string(processed, "color_scale"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_box_plot":
		fig := Create_Box_Plot(
			arg_string(processed, "data_groups_json"),
			arg_string(processed, "title"),
			arg_string(processed, "y_title"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_area_chart":
		fig := Create_Area_Chart(
			arg_strings(processed, "x_data"),
			arg_floats(processed, "y_data"),
			arg_string(processed, "title"),
			arg_string(processed, "x_title"),
			arg_string(processed, "y_title"),
			arg_string(processed, "fill_color"),
		)
		return map[string]interface{}{"figure": fig}, true
	case "create_violin_plot":
		fig := Create_Violin_Plot(
			arg_string(processed, "data_groups_json"),
			arg_string(processed, "title"),
			arg_string(processed, "y_title"),
		)
		return map[string]interface{}{"figure": fig}, true

	case "generate_business_data":
		return Generate_Business_Data(
			arg_string(processed, "data_type"),
			arg_strings(processed, "categories"),
			arg_string(processed, "trend"),
			arg_float(processed, "base_value"),
			arg_float(processed, "variation"),
		), true
	case "generate_time_series_data":
		return Generate_Time_Series_Data(
			arg_string(processed, "start_date"),
			arg_string(processed, "end_date"),
			arg_string(processed, "pattern"),
			arg_string(processed, "frequency"),
			arg_float(processed, "base_value"),
			arg_float(processed, "noise_level"),
		), true
	case "generate_statistical_data":
		return Generate_Statistical_Data(
			arg_string(processed, "distribution"),
			arg_int(processed, "size"),
			arg_string(processed, "parameters_json"),
		), true
	case "generate_comparison_data":
		return Generate_Comparison_Data(
			arg_strings(processed, "items"),
			arg_strings(processed, "metrics"),
			arg_float(processed, "min_value"),
			arg_float(processed, "max_value"),
		), true
	case "generate_demographic_data":
		return Generate_Demographic_Data(
			arg_strings(processed, "categories"),
			arg_int(processed, "total_population"),
			arg_string(processed, "distribution"),
		), true
	case "generate_performance_data":
		return Generate_Performance_Data(
			arg_strings(processed, "entities"),
			arg_strings(processed, "time_periods"),
			arg_string(processed, "metric_type"),
			arg_string(processed, "trend"),
		), true
	case "generate_financial_data":
		return Generate_Financial_Data(
			arg_strings(processed, "securities"),
			arg_string(processed, "start_date"),
			arg_string(processed, "end_date"),
			arg_float(processed, "volatility"),
		), true
	}

	function_logger.Printf("unknown function: %s", functionName)
	return nil, false
}
