package chart_tools

import (
	"encoding/json"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"
)

var data_logger = log.New(os.Stdout, "[DATAGEN] ", log.LstdFlags)

// Generators are seeded with a fixed value so the same arguments always
// produce the same dataset. Callers compare runs against stored charts, so
// nondeterministic output would look like data drift.
const generator_seed = 42

func new_rng() *rand.Rand {
	return rand.New(rand.NewSource(generator_seed))
}

func round_to(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// sample_gamma draws from a gamma distribution with the given shape and
// scale using the Marsaglia-Tsang squeeze method.
func sample_gamma(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		return sample_gamma(rng, shape+1, scale) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// Generate_Business_Data produces per category values following a named
// trend, with data type specific rounding.
func Generate_Business_Data(dataType string, categories []string, trend string, baseValue, variation float64) map[string]interface{} {
	if baseValue == 0 {
		baseValue = 100
	}
	if variation == 0 {
		variation = 0.3
	}
	n := len(categories)
	if n == 0 {
		return map[string]interface{}{"categories": categories, "values": []float64{}}
	}

	rng := new_rng()
	base := make([]float64, n)
	switch trend {
	case "increasing":
		for i := range base {
			frac := 0.0
			if n > 1 {
				frac = float64(i) / float64(n-1)
			}
			base[i] = baseValue*0.7 + frac*(baseValue*0.6)
		}
	case "decreasing":
		for i := range base {
			frac := 0.0
			if n > 1 {
				frac = float64(i) / float64(n-1)
			}
			base[i] = baseValue*1.3 - frac*(baseValue*0.6)
		}
	case "seasonal":
		for i := range base {
			frac := 0.0
			if n > 1 {
				frac = float64(i) / float64(n-1)
			}
			base[i] = baseValue + baseValue*0.3*math.Sin(2*math.Pi*frac)
		}
	default:
		for i := range base {
			base[i] = baseValue
		}
	}

	values := make([]float64, n)
	for i := range values {
		v := base[i] + rng.NormFloat64()*baseValue*variation
		if v < baseValue*0.1 {
			v = baseValue * 0.1
		}
		values[i] = v
	}

	out := make([]interface{}, n)
	switch strings.ToLower(dataType) {
	case "sales", "revenue":
		for i, v := range values {
			out[i] = round_to(v, 2)
		}
	case "customers":
		for i, v := range values {
			out[i] = int(math.Round(v))
		}
	case "growth":
		for i, v := range values {
			out[i] = round_to((v/baseValue-1)*100, 1)
		}
	default:
		for i, v := range values {
			out[i] = round_to(v, 2)
		}
	}

	return map[string]interface{}{
		"categories": categories,
		"values":     out,
	}
}

func date_range(start, end time.Time, frequency string) []time.Time {
	var dates []time.Time
	switch frequency {
	case "weekly":
		for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
			dates = append(dates, d)
		}
	case "monthly":
		for d := start; !d.After(end); d = d.AddDate(0, 1, 0) {
			dates = append(dates, d)
		}
	default:
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	}
	return dates
}

func default_time_series() map[string]interface{} {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	dates := make([]string, 30)
	values := make([]float64, 30)
	for i := 0; i < 30; i++ {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
		values[i] = 100
	}
	return map[string]interface{}{"dates": dates, "values": values}
}

// Generate_Time_Series_Data produces a dated series following a named
// pattern. Invalid dates fall back to a flat thirty day series.
func Generate_Time_Series_Data(startDate, endDate, pattern, frequency string, baseValue, noiseLevel float64) map[string]interface{} {
	if baseValue == 0 {
		baseValue = 100
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		data_logger.Printf("bad start date %q: %v", startDate, err)
		return default_time_series()
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		data_logger.Printf("bad end date %q: %v", endDate, err)
		return default_time_series()
	}
	if end.Before(start) {
		data_logger.Printf("end date %q before start date %q", endDate, startDate)
		return default_time_series()
	}

	dates := date_range(start, end, frequency)
	n := len(dates)
	rng := new_rng()

	values := make([]float64, n)
	for i := range values {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		switch pattern {
		case "linear":
			values[i] = baseValue + baseValue*0.5*x
		case "exponential":
			values[i] = baseValue * math.Exp(x*0.5)
		case "seasonal":
			values[i] = baseValue + baseValue*0.3*math.Sin(2*math.Pi*x*4)
		case "trend_seasonal":
			values[i] = baseValue + baseValue*0.3*x + baseValue*0.2*math.Sin(2*math.Pi*x*4)
		default:
			values[i] = baseValue
		}
	}
	if noiseLevel > 0 {
		for i := range values {
			values[i] += rng.NormFloat64() * baseValue * noiseLevel
		}
	}
	for i := range values {
		if values[i] < baseValue*0.1 {
			values[i] = baseValue * 0.1
		}
		values[i] = round_to(values[i], 2)
	}

	dateStrs := make([]string, n)
	for i, d := range dates {
		dateStrs[i] = d.Format("2006-01-02")
	}
	return map[string]interface{}{
		"dates":  dateStrs,
		"values": values,
	}
}

func json_number(params map[string]interface{}, key string, fallback float64) float64 {
	if v, ok := params[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return fallback
}

// Generate_Statistical_Data draws a sample from a named distribution with
// parameters supplied as a JSON object string.
func Generate_Statistical_Data(distribution string, size int, parametersJSON string) map[string]interface{} {
	rng := new_rng()

	fallback := func() map[string]interface{} {
		data := make([]float64, size)
		for i := range data {
			data[i] = round_to(rng.Float64()*100, 2)
		}
		return map[string]interface{}{
			"data":         data,
			"distribution": "uniform",
			"size":         size,
			"parameters":   map[string]interface{}{"min": 0, "max": 100},
			"type":         "statistical",
		}
	}

	if size <= 0 {
		size = 100
	}
	params := map[string]interface{}{}
	if err := json.Unmarshal([]byte(parametersJSON), &params); err != nil {
		data_logger.Printf("bad distribution parameters %q: %v", parametersJSON, err)
		return fallback()
	}

	values := make([]float64, size)
	switch distribution {
	case "normal":
		mean := json_number(params, "mean", 0)
		std := json_number(params, "std", 1)
		for i := range values {
			values[i] = rng.NormFloat64()*std + mean
		}
	case "uniform":
		min := json_number(params, "min", 0)
		max := json_number(params, "max", 1)
		for i := range values {
			values[i] = min + rng.Float64()*(max-min)
		}
	case "exponential":
		scale := json_number(params, "scale", 1)
		for i := range values {
			values[i] = rng.ExpFloat64() * scale
		}
	case "gamma":
		shape := json_number(params, "shape", 2)
		scale := json_number(params, "scale", 1)
		for i := range values {
			values[i] = sample_gamma(rng, shape, scale)
		}
	default:
		for i := range values {
			values[i] = rng.NormFloat64()
		}
	}
	for i := range values {
		values[i] = round_to(values[i], 3)
	}

	return map[string]interface{}{
		"data":         values,
		"distribution": distribution,
		"size":         size,
		"parameters":   params,
		"type":         "statistical",
	}
}

// Generate_Comparison_Data produces one value series per metric across the
// given items. Cost metrics are uniform, quality and performance metrics
// cluster around the midpoint.
func Generate_Comparison_Data(items, metrics []string, minValue, maxValue float64) map[string]interface{} {
	if minValue == 0 && maxValue == 0 {
		minValue, maxValue = 50, 150
	}
	rng := new_rng()

	result := map[string]interface{}{}
	for _, metric := range metrics {
		values := make([]float64, len(items))
		lower := strings.ToLower(metric)
		switch {
		case strings.Contains(lower, "quality"), strings.Contains(lower, "performance"):
			mid := (minValue + maxValue) / 2
			spread := (maxValue - minValue) / 6
			for i := range values {
				v := rng.NormFloat64()*spread + mid
				if v < minValue {
					v = minValue
				}
				if v > maxValue {
					v = maxValue
				}
				values[i] = round_to(v, 2)
			}
		default:
			for i := range values {
				values[i] = round_to(minValue+rng.Float64()*(maxValue-minValue), 2)
			}
		}
		result[metric] = values
	}
	result["items"] = items
	return result
}

// Generate_Demographic_Data distributes a population across categories
// using the named distribution shape. Totals always sum exactly.
func Generate_Demographic_Data(categories []string, totalPopulation int, distribution string) map[string]interface{} {
	if totalPopulation == 0 {
		totalPopulation = 10000
	}
	n := len(categories)
	if n == 0 {
		return map[string]interface{}{"categories": categories, "values": []int{}}
	}
	rng := new_rng()

	values := make([]int, n)
	switch distribution {
	case "realistic":
		// Dirichlet weights via normalized gamma draws.
		weights := make([]float64, n)
		total := 0.0
		for i := range weights {
			weights[i] = sample_gamma(rng, 2, 1)
			total += weights[i]
		}
		for i := range values {
			values[i] = int(weights[i] / total * float64(totalPopulation))
		}
	case "skewed":
		weights := make([]float64, n)
		total := 0.0
		for i := range weights {
			weights[i] = math.Pow(rng.Float64(), 0.5)
			total += weights[i]
		}
		for i := range values {
			values[i] = int(weights[i] / total * float64(totalPopulation))
		}
	default:
		share := totalPopulation / n
		for i := range values {
			values[i] = share
		}
		for i := 0; i < totalPopulation%n; i++ {
			values[i]++
		}
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	values[0] += totalPopulation - sum

	return map[string]interface{}{
		"categories": categories,
		"values":     values,
	}
}

// Generate_Performance_Data produces a matrix of per entity scores over time
// periods. The metric type picks the value range and the trend shapes each
// entity's row.
func Generate_Performance_Data(entities, timePeriods []string, metricType, trend string) map[string]interface{} {
	rng := new_rng()
	nPeriods := len(timePeriods)

	var minVal, maxVal float64
	switch metricType {
	case "score":
		minVal, maxVal = 60, 95
	case "percentage":
		minVal, maxVal = 70, 100
	case "rating":
		minVal, maxVal = 3, 5
	default:
		minVal, maxVal = 50, 100
	}

	linspace := func(from, to float64) []float64 {
		vals := make([]float64, nPeriods)
		for i := range vals {
			frac := 0.0
			if nPeriods > 1 {
				frac = float64(i) / float64(nPeriods-1)
			}
			vals[i] = from + frac*(to-from)
		}
		return vals
	}

	matrix := make([][]float64, 0, len(entities))
	for range entities {
		var base []float64
		entityTrend := trend
		if trend == "mixed" || trend == "" {
			switch rng.Intn(3) {
			case 0:
				entityTrend = "improving"
			case 1:
				entityTrend = "declining"
			default:
				entityTrend = "stable"
			}
		}
		switch entityTrend {
		case "improving":
			base = linspace(minVal+rng.Float64()*10, maxVal-rng.Float64()*5)
		case "declining":
			base = linspace(maxVal-rng.Float64()*5, minVal+rng.Float64()*10)
		default:
			level := minVal + 10 + rng.Float64()*(maxVal-minVal-20)
			base = linspace(level, level)
		}

		row := make([]float64, nPeriods)
		for i := range row {
			v := base[i] + rng.NormFloat64()*(maxVal-minVal)*0.05
			if v < minVal {
				v = minVal
			}
			if v > maxVal {
				v = maxVal
			}
			if metricType == "rating" {
				row[i] = round_to(v, 1)
			} else {
				row[i] = round_to(v, 2)
			}
		}
		matrix = append(matrix, row)
	}

	return map[string]interface{}{
		"entities":     entities,
		"time_periods": timePeriods,
		"data_matrix":  matrix,
		"metric_type":  metricType,
	}
}

// Generate_Financial_Data produces a daily random walk price series per
// security between the given dates.
func Generate_Financial_Data(securities []string, startDate, endDate string, volatility float64) map[string]interface{} {
	if volatility == 0 {
		volatility = 0.02
	}
	rng := new_rng()

	defaultResult := func() map[string]interface{} {
		start, _ := time.Parse("2006-01-02", "2024-01-01")
		dates := make([]string, 30)
		for i := range dates {
			dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
		}
		result := map[string]interface{}{"dates": dates}
		for _, s := range securities {
			flat := make([]float64, 30)
			for i := range flat {
				flat[i] = 100.0
			}
			result[s] = flat
		}
		return result
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		data_logger.Printf("bad start date %q: %v", startDate, err)
		return defaultResult()
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		data_logger.Printf("bad end date %q", endDate)
		return defaultResult()
	}

	dates := date_range(start, end, "daily")
	n := len(dates)

	result := map[string]interface{}{}
	for _, security := range securities {
		initial := 50 + rng.Float64()*150
		prices := make([]float64, n)
		cum := 0.0
		for i := 0; i < n; i++ {
			cum += rng.NormFloat64() * volatility
			prices[i] = round_to(initial*math.Exp(cum), 2)
		}
		result[security] = prices
	}

	dateStrs := make([]string, n)
	for i, d := range dates {
		dateStrs[i] = d.Format("2006-01-02")
	}
	result["dates"] = dateStrs
	return result
}
