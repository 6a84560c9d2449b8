package types

// Level is the claimed career level a resume is scored against.
type Level string

// Recognized levels.
const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)
