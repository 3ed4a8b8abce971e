package manager

import (
	"time"

	"snake-arcade/game/types"

	"github.com/google/uuid"
)

const maxRecords = 200 // rounds kept in the session history

// GameRecord describes one finished round
type GameRecord struct {
	Round     string        `json:"round"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Score     int           `json:"score"`
	Outcome   types.Outcome `json:"outcome"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the session statistics. Nothing survives the process.
type StateManager struct {
	highScore   int
	gamesPlayed int
	records     []GameRecord
	round       string
	roundStart  time.Time
	now         func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		records: make([]GameRecord, 0),
		now:     time.Now,
	}
}

// SetClock replaces the time source
func (sm *StateManager) SetClock(now func() time.Time) {
	sm.now = now
}

// StartRound opens a new round and returns its id
func (sm *StateManager) StartRound() string {
	sm.round = uuid.New().String()
	sm.roundStart = sm.now()
	return sm.round
}

// EndRound closes the current round and folds its score into the stats
func (sm *StateManager) EndRound(score int, outcome types.Outcome) GameRecord {
	record := GameRecord{
		Round:     sm.round,
		StartTime: sm.roundStart,
		EndTime:   sm.now(),
		Score:     score,
		Outcome:   outcome,
	}
	if len(sm.records) >= maxRecords {
		sm.records = sm.records[1:]
	}
	sm.records = append(sm.records, record)
	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	return record
}

func (sm *StateManager) CurrentRound() string {
	return sm.round
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetRecords returns the retained rounds, oldest first
func (sm *StateManager) GetRecords() []GameRecord {
	out := make([]GameRecord, len(sm.records))
	copy(out, sm.records)
	return out
}

// GetScoreHistory returns the scores of the retained rounds, oldest first
func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.records))
	for i, r := range sm.records {
		scores[i] = r.Score
	}
	return scores
}

// GetAverageScore averages the retained rounds
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.records {
		total += r.Score
	}
	return float64(total) / float64(len(sm.records))
}

// GetAverageDuration averages the wall-clock length of the retained rounds
func (sm *StateManager) GetAverageDuration() time.Duration {
	if len(sm.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.records {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.records))
}
