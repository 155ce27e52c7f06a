package chart_tools

import (
	"github.com/Desarso/vizchat/models"
)

// BarChartTool returns a FunctionDeclaration for the bar chart tool.
func BarChartTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_bar_chart",
		Description: "Create a bar chart for comparing categories or discrete values",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of category names for the x-axis",
				},
				"values": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of numerical values corresponding to each category",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"x_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the x-axis",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
				"color_scheme": map[string]interface{}{
					"type":        "string",
					"description": "Color scheme for the chart (plotly, viridis, blues, etc.)",
				},
			},
			Required: []string{"categories", "values"},
		},
	}
}

// LineChartTool returns a FunctionDeclaration for the line chart tool.
func LineChartTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_line_chart",
		Description: "Create a line chart for showing trends over time or continuous data",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"x_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of x-axis values (dates, numbers, or categories)",
				},
				"y_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of y-axis numerical values",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"x_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the x-axis",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
				"line_color": map[string]interface{}{
					"type":        "string",
					"description": "Color of the line",
				},
			},
			Required: []string{"x_data", "y_data"},
		},
	}
}

// ScatterPlotTool returns a FunctionDeclaration for the scatter plot tool.
func ScatterPlotTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_scatter_plot",
		Description: "Create a scatter plot for showing relationships between two numerical variables",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"x_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of x-axis numerical values",
				},
				"y_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of y-axis numerical values",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"x_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the x-axis",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
				"size_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "Optional list of values for point sizes",
				},
				"color_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional list of categories for point colors",
				},
			},
			Required: []string{"x_data", "y_data"},
		},
	}
}

// PieChartTool returns a FunctionDeclaration for the pie chart tool.
func PieChartTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_pie_chart",
		Description: "Create a pie chart for showing proportions or percentages of a whole",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"labels": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of category labels",
				},
				"values": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of numerical values for each category",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"show_percentages": map[string]interface{}{
					"type":        "boolean",
					"description": "Whether to display percentages on the chart",
				},
			},
			Required: []string{"labels", "values"},
		},
	}
}

// HistogramTool returns a FunctionDeclaration for the histogram tool.
func HistogramTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_histogram",
		Description: "Create a histogram for showing data distribution and frequency",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of numerical values to create histogram from",
				},
				"bins": map[string]interface{}{
					"type":        "integer",
					"description": "Number of bins for the histogram",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"x_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the x-axis",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
			},
			Required: []string{"data"},
		},
	}
}

// HeatmapTool returns a FunctionDeclaration for the heatmap tool.
func HeatmapTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_heatmap",
		Description: "Create a heatmap for showing relationships in matrix data or correlation",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"data": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "number"},
					},
					"description": "2D array of numerical values for the heatmap",
				},
				"x_labels": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of labels for x-axis",
				},
				"y_labels": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of labels for y-axis",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"color_scale": map[string]interface{}{
					"type":        "string",
					"description": "Color scale for the heatmap (Viridis, Blues, Reds, etc.)",
				},
			},
			Required: []string{"data", "x_labels", "y_labels"},
		},
	}
}

// BoxPlotTool returns a FunctionDeclaration for the box plot tool.
func BoxPlotTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_box_plot",
		Description: "Create a box plot for showing data distribution and outliers across categories",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"data_groups_json": map[string]interface{}{
					"type":        "string",
					"description": `JSON string representing dictionary where keys are group names and values are arrays of numbers. Example: {"Group A": [1,2,3], "Group B": [4,5,6]}`,
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
			},
			Required: []string{"data_groups_json"},
		},
	}
}

// AreaChartTool returns a FunctionDeclaration for the area chart tool.
func AreaChartTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_area_chart",
		Description: "Create an area chart for showing filled trends or cumulative data",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"x_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of x-axis values (dates, categories, etc.)",
				},
				"y_data": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "List of y-axis numerical values",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"x_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the x-axis",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
				"fill_color": map[string]interface{}{
					"type":        "string",
					"description": "Color for the filled area",
				},
			},
			Required: []string{"x_data", "y_data"},
		},
	}
}

// ViolinPlotTool returns a FunctionDeclaration for the violin plot tool.
func ViolinPlotTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "create_violin_plot",
		Description: "Create a violin plot for showing data distribution shapes and density",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"data_groups_json": map[string]interface{}{
					"type":        "string",
					"description": `JSON string representing dictionary where keys are group names and values are arrays of numbers. Example: {"Group A": [1,2,3], "Group B": [4,5,6]}`,
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title for the chart",
				},
				"y_title": map[string]interface{}{
					"type":        "string",
					"description": "Label for the y-axis",
				},
			},
			Required: []string{"data_groups_json"},
		},
	}
}

// BusinessDataTool returns a FunctionDeclaration for the business data generator.
func BusinessDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_business_data",
		Description: "Generate business-related data like sales, revenue, or performance metrics",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"data_type": map[string]interface{}{
					"type":        "string",
					"description": "Type of business data: sales, revenue, customers, growth, etc.",
				},
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of categories (products, regions, departments, etc.)",
				},
				"trend": map[string]interface{}{
					"type":        "string",
					"description": "Overall trend: increasing, decreasing, random, seasonal",
				},
				"base_value": map[string]interface{}{
					"type":        "number",
					"description": "Base value around which data is generated",
				},
				"variation": map[string]interface{}{
					"type":        "number",
					"description": "Amount of variation (0.0 to 1.0)",
				},
			},
			Required: []string{"data_type", "categories"},
		},
	}
}

// TimeSeriesDataTool returns a FunctionDeclaration for the time series generator.
func TimeSeriesDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_time_series_data",
		Description: "Generate time series data with various patterns over time",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "Start date in YYYY-MM-DD format",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "End date in YYYY-MM-DD format",
				},
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Pattern type: linear, exponential, seasonal, trend_seasonal",
				},
				"frequency": map[string]interface{}{
					"type":        "string",
					"description": "Data frequency: daily, weekly, monthly",
				},
				"base_value": map[string]interface{}{
					"type":        "number",
					"description": "Base value for the series",
				},
				"noise_level": map[string]interface{}{
					"type":        "number",
					"description": "Amount of random noise (0.0 to 1.0)",
				},
			},
			Required: []string{"start_date", "end_date"},
		},
	}
}

// StatisticalDataTool returns a FunctionDeclaration for the statistical generator.
func StatisticalDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_statistical_data",
		Description: "Generate data following specific statistical distributions",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"distribution": map[string]interface{}{
					"type":        "string",
					"description": "Type of distribution: normal, uniform, exponential, gamma",
				},
				"size": map[string]interface{}{
					"type":        "integer",
					"description": "Number of data points to generate",
				},
				"parameters_json": map[string]interface{}{
					"type":        "string",
					"description": `JSON string of distribution parameters (mean, std, min, max, scale, shape, etc.). Example: {"mean": 0, "std": 1}`,
				},
			},
			Required: []string{"distribution", "size", "parameters_json"},
		},
	}
}

// ComparisonDataTool returns a FunctionDeclaration for the comparison generator.
func ComparisonDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_comparison_data",
		Description: "Generate comparison data for multiple items across multiple metrics",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"items": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of items to compare (products, companies, etc.)",
				},
				"metrics": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of metrics to compare (performance, cost, quality, etc.)",
				},
				"min_value": map[string]interface{}{
					"type":        "number",
					"description": "Minimum value for generated data",
				},
				"max_value": map[string]interface{}{
					"type":        "number",
					"description": "Maximum value for generated data",
				},
			},
			Required: []string{"items", "metrics"},
		},
	}
}

// DemographicDataTool returns a FunctionDeclaration for the demographic generator.
func DemographicDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_demographic_data",
		Description: "Generate demographic data with realistic distributions",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Demographic categories (age groups, regions, etc.)",
				},
				"total_population": map[string]interface{}{
					"type":        "integer",
					"description": "Total population to distribute",
				},
				"distribution": map[string]interface{}{
					"type":        "string",
					"description": "Type of distribution: uniform, realistic, skewed",
				},
			},
			Required: []string{"categories"},
		},
	}
}

// PerformanceDataTool returns a FunctionDeclaration for the performance generator.
func PerformanceDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_performance_data",
		Description: "Generate performance data across entities and time periods",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"entities": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of entities (employees, teams, products, etc.)",
				},
				"time_periods": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of time periods (months, quarters, etc.)",
				},
				"metric_type": map[string]interface{}{
					"type":        "string",
					"description": "Type of metric: score, percentage, rating",
				},
				"trend": map[string]interface{}{
					"type":        "string",
					"description": "Overall trend: improving, declining, mixed, stable",
				},
			},
			Required: []string{"entities", "time_periods"},
		},
	}
}

// FinancialDataTool returns a FunctionDeclaration for the financial generator.
func FinancialDataTool() models.FunctionDeclaration {
	return models.FunctionDeclaration{
		Name:        "generate_financial_data",
		Description: "Generate financial time series data (stock prices, returns, etc.)",
		Parameters: models.Parameters{
			Type: "object",
			Properties: map[string]interface{}{
				"securities": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "List of security names/tickers",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "Start date in YYYY-MM-DD format",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "End date in YYYY-MM-DD format",
				},
				"volatility": map[string]interface{}{
					"type":        "number",
					"description": "Daily volatility (standard deviation of returns)",
				},
			},
			Required: []string{"securities", "start_date", "end_date"},
		},
	}
}

// ChartTools returns the declarations for the chart creation family.
func ChartTools() []models.FunctionDeclaration {
	return []models.FunctionDeclaration{
		BarChartTool(),
		LineChartTool(),
		ScatterPlotTool(),
		PieChartTool(),
		HistogramTool(),
		HeatmapTool(),
		BoxPlotTool(),
		AreaChartTool(),
		ViolinPlotTool(),
	}
}

// DataTools returns the declarations for the data generation family.
func DataTools() []models.FunctionDeclaration {
	return []models.FunctionDeclaration{
		BusinessDataTool(),
		TimeSeriesDataTool(),
		StatisticalDataTool(),
		ComparisonDataTool(),
		DemographicDataTool(),
		PerformanceDataTool(),
		FinancialDataTool(),
	}
}

// AllTools returns every declaration handed to the model transport. This set
// must stay in lockstep with the family membership in families.go; the
// VerifyDeclarations startup check enforces it.
func AllTools() []models.FunctionDeclaration {
	return append(ChartTools(), DataTools()...)
}
