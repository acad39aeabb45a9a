package workflow

import (
	"time"

	"github.com/randalmurphal/apksweep/artifact"
)

// State is the pipeline state passed between nodes.
type State struct {
	// Identification
	RunID   string  `json:"runId"`
	Variant Variant `json:"variant"`
	Task    string  `json:"task"`

	// Packaging command
	WorkDir string   `json:"workDir,omitempty"`
	Command []string `json:"command,omitempty"`

	// Results
	Sweep      *artifact.CleanupResult `json:"sweep,omitempty"`
	SweepError string                  `json:"sweepError,omitempty"`
	Output     string                  `json:"output,omitempty"`
	Completed  []string                `json:"completed,omitempty"`

	// Timing
	StartTime        time.Time     `json:"startTime"`
	SweepDuration    time.Duration `json:"sweepDuration"`
	AssembleDuration time.Duration `json:"assembleDuration"`

	// Error tracking
	Error string `json:"error,omitempty"`
}

// NewState creates the state for packaging variant.
func NewState(variant Variant) State {
	now := time.Now()
	runID, err := artifact.NewRunID(now)
	if err != nil {
		runID = now.Format("2006-01-02-150405")
	}
	return State{
		RunID:     runID,
		Variant:   variant,
		Task:      variant.TaskName(),
		StartTime: now,
	}
}

// WithRunID sets a custom run ID
func (s State) WithRunID(runID string) State {
	s.RunID = runID
	return s
}

// WithCommand sets the packaging command and the directory it runs in.
func (s State) WithCommand(workDir string, argv []string) State {
	s.WorkDir = workDir
	s.Command = argv
	return s
}

// SetError records a failure.
func (s *State) SetError(err error) {
	if err != nil {
		s.Error = err.Error()
	}
}

// HasCompleted reports whether task has finished in this run.
func (s State) HasCompleted(task string) bool {
	for _, t := range s.Completed {
		if t == task {
			return true
		}
	}
	return false
}

func (s *State) markCompleted(task string) {
	if !s.HasCompleted(task) {
		s.Completed = append(s.Completed, task)
	}
}
