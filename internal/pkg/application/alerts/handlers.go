package alerts

import (
	"context"
	"encoding/json"

	"log/slog"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-ingest/alerts")

// NewAlertCreatedHandler forwards created alerts to external
// subscribers. Keeping the fan-out on the message bus side means a
// slow subscriber never blocks the ingest path.
func NewAlertCreatedHandler(sender EventSender) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "alert-created")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := AlertCreated{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		err = sender.Send(ctx, msg.Alert)
		if err != nil {
			log.Error("could not notify subscribers", "alert_id", msg.Alert.ID, "err", err.Error())
		}
	}
}
