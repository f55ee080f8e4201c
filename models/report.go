package models

import "fmt"

/************************************************
/**** MARK: ANSWERS ****/
/************************************************/
const ANSWER_YES = "Ya"
const ANSWER_NO = "Tidak"

// QuestionsPerDimension is fixed at design time.
const QuestionsPerDimension = 5

// Dimension is one of the four survey categories.
type Dimension string

const (
	DimensionAdaptation  Dimension = "adaptation"
	DimensionGoal        Dimension = "goal"
	DimensionIntegration Dimension = "integration"
	DimensionLatency     Dimension = "latency"
)

// Dimensions lists every dimension in questionnaire order.
var Dimensions = []Dimension{
	DimensionAdaptation,
	DimensionGoal,
	DimensionIntegration,
	DimensionLatency,
}

// Prefix is the one-letter question key prefix of the dimension.
func (d Dimension) Prefix() string {
	switch d {
	case DimensionAdaptation:
		return "A"
	case DimensionGoal:
		return "G"
	case DimensionIntegration:
		return "I"
	case DimensionLatency:
		return "L"
	}
	return ""
}

// QuestionKeys returns the 1-based question keys owned by the dimension.
func (d Dimension) QuestionKeys() []string {
	prefix := d.Prefix()
	if prefix == "" {
		return nil
	}
	keys := make([]string, 0, QuestionsPerDimension)
	for i := 1; i <= QuestionsPerDimension; i++ {
		keys = append(keys, fmt.Sprintf("%s%d", prefix, i))
	}
	return keys
}

// Tally counts yes/no answers for one dimension.
type Tally struct {
	Ya    int `json:"ya"`
	Tidak int `json:"tidak"`
}

// AggregateReport is the contract handed to chart renderers.
type AggregateReport struct {
	TotalResponden int                 `json:"totalResponden"`
	Dimensions     map[Dimension]Tally `json:"dimensions"`
}
