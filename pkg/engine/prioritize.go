package engine

// Action timeframes for the three remediation tiers.
const (
	TimeframeImmediate = "As soon as possible (24-48 hours)"
	TimeframeShortTerm = "Within 1-2 weeks"
	TimeframeLongTerm  = "Within 1-3 months"
)

// TimedAction is a bucket entry re-expressed with its remediation
// timeframe.
type TimedAction struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation *Recommendation `json:"recommendation"`
	Timeframe      string          `json:"timeframe"`
}

// Priorities is the ordered remediation plan derived from the priority
// buckets.
type Priorities struct {
	ImmediateAction []TimedAction `json:"immediate_action"`
	ShortTerm       []TimedAction `json:"short_term"`
	LongTerm        []TimedAction `json:"long_term"`
}

// Prioritize re-keys the priority buckets into timed-action lists. Pure
// order-preserving transform; the per-tier timeframe is fixed.
func Prioritize(recs RecommendationSet) Priorities {
	return Priorities{
		ImmediateAction: timeActions(recs.HighPriority, TimeframeImmediate),
		ShortTerm:       timeActions(recs.MediumPriority, TimeframeShortTerm),
		LongTerm:        timeActions(recs.LowPriority, TimeframeLongTerm),
	}
}

func timeActions(bucket []Advice, timeframe string) []TimedAction {
	var actions []TimedAction
	for _, advice := range bucket {
		actions = append(actions, TimedAction{
			Title:          advice.Title,
			Description:    advice.Description,
			Recommendation: advice.Recommendation,
			Timeframe:      timeframe,
		})
	}
	return actions
}
