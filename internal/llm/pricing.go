package llm

import (
	"fmt"
	"math"
)

// USD per 1K tokens
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

var pricingTable = map[string]Pricing{
	"gpt-3.5-turbo": {InputPer1K: 0.0015, OutputPer1K: 0.002},
	"gpt-4o-mini":   {InputPer1K: 0.00015, OutputPer1K: 0.0006},
	"gpt-4o":        {InputPer1K: 0.0025, OutputPer1K: 0.01},
	"gpt-4-turbo":   {InputPer1K: 0.01, OutputPer1K: 0.03},
}

// returns the pricing for model, or an error for models we cannot bill
func PricingFor(model string) (Pricing, error) {
	p, ok := pricingTable[model]
	if !ok {
		return Pricing{}, fmt.Errorf("no pricing configured for model %q", model)
	}

	return p, nil
}

// unrounded USD cost of a completion
func (p Pricing) Cost(usage Usage) float64 {
	return float64(usage.PromptTokens)*p.InputPer1K/1000 +
		float64(usage.CompletionTokens)*p.OutputPer1K/1000
}

func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
