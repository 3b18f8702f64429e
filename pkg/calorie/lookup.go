// Package calorie estimates calories for a food name, quantity and unit from
// static density tables. A miss is a nil result, not an error.
package calorie

import (
	"math"
	"strings"
)

type Result struct {
	Calories        int     `json:"calories"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	Source          string  `json:"source"` // "exact" for a unit-table hit, "estimated" otherwise
}

const (
	SourceExact     = "exact"
	SourceEstimated = "estimated"
)

// gramsPerUnit covers mass and volume units; volume assumes 1 mL of a
// water-based liquid weighs about 1 g.
var gramsPerUnit = map[string]float64{
	"g": 1, "gram": 1, "grams": 1, "gr": 1,
	"kg": 1000, "kilogram": 1000, "kilograms": 1000,
	"mg": 0.001,
	"lb": 453.592, "lbs": 453.592, "pound": 453.592, "pounds": 453.592,
	"oz": 28.3495, "ounce": 28.3495, "ounces": 28.3495,
	"l": 1000, "liter": 1000, "liters": 1000, "litre": 1000, "litres": 1000,
	"ml": 1, "milliliter": 1, "milliliters": 1,
}

var pieceUnits = map[string]bool{
	"": true, "piece": true, "pieces": true, "pc": true, "pcs": true,
	"unit": true, "units": true, "whole": true, "item": true, "items": true,
	"count": true,
}

func toGrams(quantity float64, unit string) (float64, bool) {
	factor, ok := gramsPerUnit[unit]
	if !ok {
		return 0, false
	}
	return quantity * factor, true
}

func findRecord(records []Record, name string) *Record {
	for i := range records {
		if strings.Contains(name, records[i].Name) {
			return &records[i]
		}
	}
	return nil
}

func round(f float64) int {
	return int(math.Round(f))
}

// Lookup returns a calorie estimate, or nil when the food is unknown or the
// unit cannot be interpreted. Processed foods are checked first.
func Lookup(name string, quantity float64, unit string) *Result {
	n := strings.ToLower(strings.TrimSpace(name))
	u := strings.ToLower(strings.TrimSpace(unit))
	if n == "" || quantity <= 0 {
		return nil
	}

	if rec := findRecord(processedRecords, n); rec != nil {
		for _, pu := range rec.PerUnit {
			if strings.Contains(u, pu.Unit) {
				return &Result{
					Calories:        round(pu.Calories * quantity),
					CaloriesPerUnit: pu.Calories,
					Source:          SourceExact,
				}
			}
		}
		if grams, ok := toGrams(quantity, u); ok {
			return &Result{
				Calories:        round(rec.CaloriesPer100g * grams / 100),
				CaloriesPerUnit: rec.CaloriesPer100g,
				Source:          SourceEstimated,
			}
		}
		return nil
	}

	if rec := findRecord(naturalRecords, n); rec != nil {
		if pieceUnits[u] {
			weight, ok := pieceWeights[rec.Name]
			if !ok {
				weight = defaultPieceWeight
			}
			perPiece := rec.CaloriesPer100g * weight / 100
			return &Result{
				Calories:        round(perPiece * quantity),
				CaloriesPerUnit: perPiece,
				Source:          SourceEstimated,
			}
		}
		grams, ok := toGrams(quantity, u)
		if !ok {
			return nil
		}
		return &Result{
			Calories:        round(rec.CaloriesPer100g * grams / 100),
			CaloriesPerUnit: rec.CaloriesPer100g,
			Source:          SourceEstimated,
		}
	}

	return nil
}
