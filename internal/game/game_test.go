package game

import (
	"github.com/persuasion-games/persuade/internal/models"
)

// qualityScenario is the product-quality persuasion game used across the
// referee tests. The Sender always wants a sale; the Receiver only profits
// from high quality. The optimum pools low-quality states behind a "buy"
// signal up to the Receiver's indifference point:
//
//	optimum = 10 · (0.3 + 0.7·3/7) = 6.0
func qualityScenario() *models.Scenario {
	return &models.Scenario{
		Name:    "QualityControl",
		States:  []string{"High Quality", "Low Quality"},
		Actions: []string{"Buy", "Dont Buy"},
		Prior:   []float64{0.3, 0.7},
		SenderUtility: [][]float64{
			{10.0, 10.0},
			{0.0, 0.0},
		},
		ReceiverUtility: [][]float64{
			{5.0, -5.0},
			{0.0, 0.0},
		},
		OptimumUtility: 6.0,
	}
}

// binaryScenario is a game where withholding information is optimal: under
// the prior the Receiver is indifferent and the tie resolves to Accept.
func binaryScenario() *models.Scenario {
	return &models.Scenario{
		Name:    "SimpleBinaryGame",
		States:  []string{"Good", "Bad"},
		Actions: []string{"Accept", "Reject"},
		Prior:   []float64{0.5, 0.5},
		SenderUtility: [][]float64{
			{1.0, 1.0},
			{0.0, 0.0},
		},
		ReceiverUtility: [][]float64{
			{1.0, -1.0},
			{0.0, 0.0},
		},
		OptimumUtility: 1.0,
	}
}
