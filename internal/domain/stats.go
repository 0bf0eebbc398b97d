package domain

import "time"

type Bucket struct {
	Start time.Time
	Count int64
}

type Timeseries struct {
	Interval Interval
	Since    time.Time
	Until    time.Time
	Series   []Bucket
}

type LevelCount struct {
	Level Level
	Count int64
}

type LevelBreakdown struct {
	Since time.Time
	Until time.Time
	Items []LevelCount
}

type MessageStat struct {
	Message  string
	Count    int64
	LastSeen time.Time
}

type TopMessages struct {
	Limit int
	Items []MessageStat
}
