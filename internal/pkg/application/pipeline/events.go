package pipeline

import (
	"encoding/json"

	"github.com/diwise/iot-ingest/pkg/types"
)

type BatchProcessed struct {
	Count     int                   `json:"count"`
	Processed []types.ProcessedData `json:"processed"`
}

func (l *BatchProcessed) ContentType() string {
	return "application/json"
}
func (l *BatchProcessed) TopicName() string {
	return "readings.batchProcessed"
}
func (l *BatchProcessed) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
