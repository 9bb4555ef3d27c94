package compat

import (
	"fmt"
	"strings"

	"school-schedule/internal/models"
)

type Recommendation string

const (
	RecommendKeep     Recommendation = "keep"
	RecommendMigrate  Recommendation = "migrate"
	RecommendRecreate Recommendation = "recreate"
	// RecommendArchive is never produced by Check; it is set by administrators.
	RecommendArchive Recommendation = "archive"
)

// IssueNoConfiguration is reported for schedules that carry no readable snapshot.
const IssueNoConfiguration = "no configuration recorded"

// maxMigratableIssues is the largest number of window changes that can still be migrated.
const maxMigratableIssues = 2

type Result struct {
	IsCompatible   bool
	Issues         []string
	CanAutoMigrate bool
	Recommendation Recommendation
}

// Check compares the snapshot a schedule was built with against the current configuration.
//
// Level and block duration changes redefine the block numbering, so they
// block automatic migration. Start and end changes only shift the window.
func Check(snapshot *Snapshot, current Snapshot) Result {
	if snapshot == nil {
		return Result{
			IsCompatible:   false,
			Issues:         []string{IssueNoConfiguration},
			CanAutoMigrate: false,
			Recommendation: RecommendRecreate,
		}
	}

	issues := []string{}
	canAutoMigrate := true

	if snapshot.AcademicLevel != current.AcademicLevel {
		issues = append(issues, fmt.Sprintf("academic level changed from %s to %s", snapshot.AcademicLevel, current.AcademicLevel))
		canAutoMigrate = false
	}

	if snapshot.BlockDuration != current.BlockDuration {
		issues = append(issues, fmt.Sprintf("block duration changed from %d to %d minutes", snapshot.BlockDuration, current.BlockDuration))
		canAutoMigrate = false
	}

	if snapshot.StartTime != current.StartTime {
		issues = append(issues, fmt.Sprintf("start time changed from %s to %s", snapshot.StartTime, current.StartTime))
	}

	if snapshot.EndTime != current.EndTime {
		issues = append(issues, fmt.Sprintf("end time changed from %s to %s", snapshot.EndTime, current.EndTime))
	}

	if len(issues) == 0 {
		return Result{
			IsCompatible:   true,
			Issues:         issues,
			CanAutoMigrate: true,
			Recommendation: RecommendKeep,
		}
	}

	recommendation := RecommendRecreate
	if canAutoMigrate && len(issues) <= maxMigratableIssues {
		recommendation = RecommendMigrate
	}

	return Result{
		IsCompatible:   false,
		Issues:         issues,
		CanAutoMigrate: canAutoMigrate,
		Recommendation: recommendation,
	}
}

var suggestions = map[Recommendation]string{
	RecommendKeep:     "No action is needed, the schedule can be kept as it is.",
	RecommendMigrate:  "The schedule can be migrated automatically to the new time window.",
	RecommendRecreate: "Recreate the schedule with the current configuration.",
	RecommendArchive:  "Archive this schedule and build a new one for the current configuration.",
}

// Message renders a result for display before a schedule is edited.
func Message(r Result) string {
	if r.IsCompatible {
		return "The schedule is compatible with the current configuration."
	}

	var b strings.Builder
	b.WriteString("The schedule is not compatible with the current configuration:\n")
	for _, issue := range r.Issues {
		b.WriteString("• ")
		b.WriteString(issue)
		b.WriteString("\n")
	}
	b.WriteString("\nSuggestion: ")
	b.WriteString(suggestions[r.Recommendation])

	return b.String()
}

// IsCriticalChange reports whether moving from prev to next alters the fields
// that invalidate existing schedules. Break changes are not critical.
func IsCriticalChange(prev, next models.ScheduleLevelConfig) bool {
	return prev.StartTime != next.StartTime ||
		prev.EndTime != next.EndTime ||
		prev.BlockDuration != next.BlockDuration
}
