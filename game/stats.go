package game

import "time"

// RoundRecord describes one life of the snake, from (re)spawn to reset.
type RoundRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Length    int // length reached before the reset
	Ticks     int
}

// SessionStats keeps the rounds played in this process. Nothing is
// written to disk.
type SessionStats struct {
	Rounds []RoundRecord
}

func (s *SessionStats) AddRound(r RoundRecord) {
	s.Rounds = append(s.Rounds, r)
}

func (s *SessionStats) GamesPlayed() int {
	return len(s.Rounds)
}

// MaxLength returns the best length reached, 0 with no rounds.
func (s *SessionStats) MaxLength() int {
	best := 0
	for _, r := range s.Rounds {
		if r.Length > best {
			best = r.Length
		}
	}
	return best
}

func (s *SessionStats) AverageLength() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Rounds {
		total += r.Length
	}
	return float64(total) / float64(len(s.Rounds))
}

// AverageDuration returns the mean round duration in seconds.
func (s *SessionStats) AverageDuration() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range s.Rounds {
		total += r.EndTime.Sub(r.StartTime)
	}
	return total.Seconds() / float64(len(s.Rounds))
}
