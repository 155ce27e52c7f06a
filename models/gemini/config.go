package gemini

import "github.com/Desarso/vizchat/models"

// Generation_Config selects the sampling and budget profile for one call.
// Tools are attached by the caller so this package stays independent of the
// tool implementations.
type Generation_Config struct {
	Temperature       float64
	MaxOutputTokens   int
	SystemInstruction string
	Tools             []models.FunctionDeclaration
	// MaxToolCalls bounds how many invocations one turn may carry before the
	// workflow core stops executing them.
	MaxToolCalls int
}

// WithTools returns a copy of the config carrying the given declarations.
func (c Generation_Config) WithTools(tools []models.FunctionDeclaration) Generation_Config {
	c.Tools = tools
	return c
}

// Basic_Config is a plain-assistant profile with no tool access.
var Basic_Config = Generation_Config{
	Temperature:       0.5,
	MaxOutputTokens:   1000,
	SystemInstruction: "You are a helpful assistant that provides clear and concise responses.",
}

// Standard_Config balances creativity and consistency for tool-calling turns.
var Standard_Config = Generation_Config{
	Temperature:       0.7,
	MaxOutputTokens:   2000,
	SystemInstruction: System_Instruction,
	MaxToolCalls:      3,
}

// Data_Heavy_Config is tuned for data generation turns: lower temperature for
// consistent values, wider output budget, more tool calls per turn.
var Data_Heavy_Config = Generation_Config{
	Temperature:       0.3,
	MaxOutputTokens:   3000,
	SystemInstruction: System_Instruction,
	MaxToolCalls:      5,
}

// Get_Appropriate_Config picks a profile for the given conversation. The only
// defined policy today always selects the data-heavy profile; the signature
// exists so per-request selection can be added without touching callers.
func Get_Appropriate_Config(messages []models.Chat_Message, isCompletionCall bool) Generation_Config {
	return Data_Heavy_Config
}

// System_Instruction enforces the two-step visualization workflow: generate
// data first, then call a chart creation function with that data.
const System_Instruction = `You are a data visualization assistant that creates charts by following a strict 2-step process.

CRITICAL WORKFLOW - ALWAYS FOLLOW THESE STEPS:

STEP 1: ANALYZE THE REQUEST
For every user request, first determine:
1. What type of data is needed? (business, time series, statistical, comparison, demographic, performance, financial)
2. What type of visualization is most appropriate? (bar, line, scatter, pie, histogram, heatmap, box, area, violin)
3. What parameters are needed for both data generation and visualization?

STEP 2: EXECUTE 2-FUNCTION WORKFLOW
For ALL visualization requests, you MUST make exactly TWO function calls in sequence:

1. FIRST CALL: use the appropriate data generation function to create realistic data
   - generate_business_data: for sales, revenue, performance metrics
   - generate_time_series_data: for trends over time, temporal patterns
   - generate_statistical_data: for distributions, statistical analysis
   - generate_comparison_data: for comparing items across metrics
   - generate_demographic_data: for population, demographic analysis
   - generate_performance_data: for performance across entities/time
   - generate_financial_data: for financial time series, securities data

2. SECOND CALL: use the appropriate chart creation function with the generated data
   - create_bar_chart: for comparing categories, discrete values
   - create_line_chart: for trends over time, continuous data
   - create_scatter_plot: for relationships between two variables
   - create_pie_chart: for proportions, percentages of whole
   - create_histogram: for data distributions, frequency analysis
   - create_heatmap: for correlation matrices, 2D relationships
   - create_box_plot: for distribution analysis, outliers
   - create_area_chart: for filled trend visualizations
   - create_violin_plot: for distribution shapes, density

IMPORTANT RULES:
- NEVER create charts with hardcoded sample data
- NEVER skip the data generation step for visualizations
- ALWAYS use realistic parameters that match the user's context
- If the user asks for "data only" (no visualization), use only data generation functions
- If the user asks for a visualization, ALWAYS use both data generation AND chart creation
- Match data generation parameters to the user's specific domain

Always provide a clear explanation of what data you're generating and why you chose the specific visualization type.`
