package convert

import (
	"math"

	"github.com/ladle-app/ladle"
	"github.com/ladle-app/ladle/units"
)

// kcal to kJ.
const kilojouleFactor = 4.184

// Nutrition scales per-serving nutrient readings to a 100-gram basis.
// It returns nil when calories are missing or when the record carries no
// explicit serving size: without one it is ambiguous whether the readings
// are per serving or already per 100g, and guessing is unsafe.
func Nutrition(nutrients ladle.Nutrients) *ladle.NutritionFacts {
	if nutrients == nil {
		return nil
	}
	calories := units.ExtractNumeric(nutrients[ladle.NutrientCalories])
	if calories <= 0 {
		return nil
	}
	size := units.ExtractNumeric(nutrients[ladle.NutrientServingSize])
	if size <= 0 {
		return nil
	}

	facts := &ladle.NutritionFacts{
		EnergyKcal: round1(calories / size * 100),
	}
	facts.EnergyKj = round1(facts.EnergyKcal * kilojouleFactor)

	facts.Carbohydrate = scaled(nutrients[ladle.NutrientCarbohydrate], size)
	facts.Protein = scaled(nutrients[ladle.NutrientProtein], size)
	facts.Fat = scaled(nutrients[ladle.NutrientFat], size)
	facts.SaturatedFat = scaled(nutrients[ladle.NutrientSaturatedFat], size)
	facts.Sugar = scaled(nutrients[ladle.NutrientSugar], size)
	facts.Fiber = scaled(nutrients[ladle.NutrientFiber], size)
	facts.Cholesterol = scaled(nutrients[ladle.NutrientCholesterol], size)

	// Sodium values above 10 are milligram readings.
	if sodium := units.ExtractNumeric(nutrients[ladle.NutrientSodium]); sodium > 0 {
		if sodium > 10 {
			sodium /= 1000
		}
		v := round1(sodium / size * 100)
		facts.Sodium = &v
	}

	return facts
}

func scaled(raw string, size float64) *float64 {
	v := units.ExtractNumeric(raw)
	if v <= 0 {
		return nil
	}
	r := round1(v / size * 100)
	return &r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
