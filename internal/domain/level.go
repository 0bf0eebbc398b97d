package domain

type Level string

const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// Levels lists every severity in declaration order.
var Levels = []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}

// ParseLevel matches s case-sensitively against the known levels.
func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Ordinal returns the declaration position of l, or len(Levels) for unknown values.
func (l Level) Ordinal() int {
	for i, known := range Levels {
		if known == l {
			return i
		}
	}
	return len(Levels)
}

func (l Level) String() string {
	return string(l)
}
