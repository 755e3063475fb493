package model

import "time"

// IterationStatus represents the outcome of one fuzzing iteration.
type IterationStatus int

const (
	// Passed indicates the callback returned without error.
	Passed IterationStatus = iota
	// Failed indicates the callback reported a failure.
	Failed
)

func (s IterationStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Crash is a failing iteration persisted for later reproduction.
type Crash struct {
	Schema     string    `yaml:"schema"`
	Seed       uint64    `yaml:"seed"`
	ThreadSeed uint64    `yaml:"thread_seed"`
	Iteration  uint64    `yaml:"iteration"`
	Threads    int       `yaml:"threads"`
	MaxSize    int       `yaml:"max_size"`
	Mode       string    `yaml:"mode"`
	Error      string    `yaml:"error"`
	Size       int       `yaml:"size"`
	Timestamp  time.Time `yaml:"timestamp"`
	Payload    []byte    `yaml:"-"`
}

// CampaignStats summarizes a running or finished campaign.
type CampaignStats struct {
	Schema     string
	Threads    int
	Seed       uint64
	Iterations uint64
	Failed     uint64
	Bytes      uint64
	Elapsed    time.Duration
	Stalled    bool
}

// ExecsPerSecond returns the iteration throughput.
func (s CampaignStats) ExecsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}

	return float64(s.Iterations) / s.Elapsed.Seconds()
}

// CampaignInfo describes a campaign before it starts.
type CampaignInfo struct {
	Schema  string
	Target  string
	Threads int
	Seed    uint64
	MaxSize int
	// Range is set when replaying a fixed iteration range.
	Range *IterationRange
}
