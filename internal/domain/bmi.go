package domain

import "math"

// BMICategory classifies a body-mass index value.
type BMICategory string

const (
	// BMIUndefined is returned for degenerate inputs.
	BMIUndefined   BMICategory = "undefined"
	BMIUnderweight BMICategory = "underweight"
	BMIHealthy     BMICategory = "healthy"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// Category boundaries and display-scale constants. These are conventional
// thresholds, not laws of nature; they live here so a retune touches one
// place only.
const (
	bmiUnderweightMax = 18.5
	bmiHealthyMax     = 25.0
	bmiOverweightMax  = 30.0

	// IdealBMIMin and IdealBMIMax bound the ideal-weight range shown to the
	// user, in BMI units.
	IdealBMIMin = 18.5
	IdealBMIMax = 24.9

	// GaugeScaleMin and GaugeScaleMax map BMI onto a 0-100 visual gauge.
	GaugeScaleMin = 10.0
	GaugeScaleMax = 40.0
)

// BMISnapshot is the derived BMI classification for rendering. The ideal
// weight bounds are in kilograms, rounded to one decimal; GaugePosition is
// a 0-100 position on the visual gauge scale.
type BMISnapshot struct {
	BMI           float64     `json:"bmi"`
	Category      BMICategory `json:"category"`
	IdealMinKg    float64     `json:"idealMinKg"`
	IdealMaxKg    float64     `json:"idealMaxKg"`
	GaugePosition float64     `json:"gaugePosition"`
}

// EvaluateBMI classifies a weight/height pair. It is total: degenerate
// inputs (non-positive or non-finite weight or height) return a zero
// snapshot with BMIUndefined instead of NaN or a panic, since the result
// must always be renderable. Category boundaries are half-open on the
// upper side.
func EvaluateBMI(weightKg, heightCm float64) BMISnapshot {
	if !finitePositive(weightKg) || !finitePositive(heightCm) {
		return BMISnapshot{Category: BMIUndefined}
	}

	hM := heightCm / 100
	bmi := weightKg / (hM * hM)

	var cat BMICategory
	switch {
	case bmi < bmiUnderweightMax:
		cat = BMIUnderweight
	case bmi < bmiHealthyMax:
		cat = BMIHealthy
	case bmi < bmiOverweightMax:
		cat = BMIOverweight
	default:
		cat = BMIObese
	}

	return BMISnapshot{
		BMI:           bmi,
		Category:      cat,
		IdealMinKg:    round1(IdealBMIMin * hM * hM),
		IdealMaxKg:    round1(IdealBMIMax * hM * hM),
		GaugePosition: clamp((bmi-GaugeScaleMin)/(GaugeScaleMax-GaugeScaleMin)*100, 0, 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
