package alerts

import (
	"encoding/json"
	"time"

	"github.com/diwise/iot-ingest/pkg/types"
)

type AlertCreated struct {
	Alert     types.DataAlert `json:"alert"`
	Timestamp time.Time       `json:"timestamp"`
}

func (l *AlertCreated) ContentType() string {
	return "application/json"
}
func (l *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (l *AlertCreated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type SensorNotObserved struct {
	SensorID   string    `json:"sensorID"`
	ObservedAt time.Time `json:"observedAt"`
}

func (l *SensorNotObserved) ContentType() string {
	return "application/json"
}
func (l *SensorNotObserved) TopicName() string {
	return "watchdog.sensorNotObserved"
}
func (l *SensorNotObserved) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
