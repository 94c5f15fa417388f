// Package report renders a finished analysis to JSON, text or HTML and
// places the file under <input-dir>/analysis/.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/user/bountyx-ai/pkg/engine"
)

// Report is the final on-disk output structure for one analysis run.
type Report struct {
	Target          string                   `json:"target"`
	Timestamp       string                   `json:"timestamp"`
	ScanDate        string                   `json:"scan_date"`
	Summary         engine.Summary           `json:"summary"`
	Details         engine.Details           `json:"details"`
	Recommendations engine.RecommendationSet `json:"recommendations"`
	Priorities      engine.Priorities        `json:"priorities"`
	RemediationPlan RemediationPlan          `json:"remediation_plan"`
	AIEnhanced      *engine.AIEnhanced       `json:"ai_enhanced,omitempty"`
}

// RemediationPlan is the human-readable rendering of the timed actions.
type RemediationPlan struct {
	ImmediateActions []string `json:"immediate_actions"`
	ShortTermActions []string `json:"short_term_actions"`
	LongTermActions  []string `json:"long_term_actions"`
}

// New assembles the report for a target from a finished analysis.
func New(target string, a *engine.Analysis, now time.Time) *Report {
	return &Report{
		Target:          target,
		Timestamp:       now.Format("20060102150405"),
		ScanDate:        now.Format("2006-01-02 15:04:05"),
		Summary:         a.Summary,
		Details:         a.Details,
		Recommendations: a.Recommendations,
		Priorities:      a.Priorities,
		RemediationPlan: RemediationPlan{
			ImmediateActions: formatPlan(a.Priorities.ImmediateAction),
			ShortTermActions: formatPlan(a.Priorities.ShortTerm),
			LongTermActions:  formatPlan(a.Priorities.LongTerm),
		},
		AIEnhanced: a.AIEnhanced,
	}
}

// formatPlan turns a timed-action list into numbered plan lines.
func formatPlan(actions []engine.TimedAction) []string {
	var lines []string
	for i, action := range actions {
		line := fmt.Sprintf("%d. %s", i+1, action.Title)
		if action.Recommendation != nil && action.Recommendation.Summary != "" {
			line += ": " + action.Recommendation.Summary
		}
		line += fmt.Sprintf(" [%s]", action.Timeframe)
		lines = append(lines, line)
	}
	return lines
}

// Save writes the report under dir/analysis in the given format and
// returns the written path.
func (r *Report) Save(dir, format string) (string, error) {
	outputDir := filepath.Join(dir, "analysis")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}

	base := filepath.Join(outputDir, fmt.Sprintf("%s_analysis_%s", r.Target, r.Timestamp))

	switch format {
	case "json":
		path := base + ".json"
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return path, os.WriteFile(path, data, 0644)
	case "txt":
		path := base + ".txt"
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return path, writeText(f, r)
	case "html":
		path := base + ".html"
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return path, writeHTML(f, r)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
