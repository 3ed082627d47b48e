package quality

import (
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
)

const (
	stalenessLimit = 5 * time.Minute

	stalenessPenalty    = 20
	plausibilityPenalty = 10
	metadataPenalty     = 5
)

// Predicate is a pluggable reasonableness check beyond basic range
// validation, e.g. for flatlined or otherwise implausible sequences.
// The default implementation accepts everything.
//
//go:generate moq -rm -out predicate_mock.go . Predicate
type Predicate interface {
	IsReasonable(r types.SensorReading) bool
}

type acceptAll struct{}

func (acceptAll) IsReasonable(types.SensorReading) bool { return true }

func AcceptAll() Predicate {
	return acceptAll{}
}

// Scorer computes a bounded quality score per reading from freshness,
// plausibility and metadata completeness. Scoring is deterministic
// given the reading and the evaluation instant.
type Scorer struct {
	predicate Predicate
	now       func() time.Time
}

func New(predicate Predicate) *Scorer {
	if predicate == nil {
		predicate = AcceptAll()
	}
	return &Scorer{predicate: predicate, now: time.Now}
}

// Score returns an integer in [0,100].
func (s *Scorer) Score(r types.SensorReading) int {
	score := 100

	if s.now().Sub(r.Timestamp) > stalenessLimit {
		score -= stalenessPenalty
	}

	if !s.predicate.IsReasonable(r) {
		score -= plausibilityPenalty
	}

	if len(r.Metadata) == 0 {
		score -= metadataPenalty
	}

	if score < 0 {
		score = 0
	}

	return score
}
