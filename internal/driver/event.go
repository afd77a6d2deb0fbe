package driver

// Stage identifies what a formatting run is doing to a file.
type Stage uint8

const (
	StageNone Stage = iota
	StageParse
	StageWrite
)

// Status is the lifecycle state of a file within a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is a per-file progress notification emitted during FormatPaths.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}
