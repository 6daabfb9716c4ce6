package transcript

import (
	"sync"
	"time"
)

// RoundRecord describes one applied round.
type RoundRecord struct {
	Match           string
	Round           int // round number the judge adjudicated
	BotMove         string
	UserInput       string
	Winner          string
	UserScore       int // scores after the round was applied
	BotScore        int
	UserSpecialUsed bool
	BotSpecialUsed  bool
	Duration        time.Duration // judge call latency
	Time            time.Time
}

type Collector interface {
	Record(RoundRecord)
	Records() []RoundRecord
}

type collector struct {
	mu      sync.Mutex
	records []RoundRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Record(r RoundRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
}

func (c *collector) Records() []RoundRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RoundRecord, len(c.records))
	copy(out, c.records)
	return out
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Record(RoundRecord)     {}
func (c *dummyCollector) Records() []RoundRecord { return nil }
