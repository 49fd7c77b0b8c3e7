package entity

// TurnMetrics is the cost of one path search.
type TurnMetrics struct {
	NodesExplored   int     `json:"nodesExplored"`
	ComputationTime float64 `json:"computationTimeMs"`
}

// Average returns the arithmetic mean of the given metrics. Node counts are
// averaged with integer division. An empty slice yields zero values.
func Average(metrics []TurnMetrics) TurnMetrics {
	if len(metrics) == 0 {
		return TurnMetrics{}
	}

	totalNodes := 0
	totalTime := 0.0
	for _, m := range metrics {
		totalNodes += m.NodesExplored
		totalTime += m.ComputationTime
	}

	return TurnMetrics{
		NodesExplored:   totalNodes / len(metrics),
		ComputationTime: totalTime / float64(len(metrics)),
	}
}
