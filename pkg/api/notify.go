package api

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

// Notifier sends a short alert and returns its delivery ID
type Notifier interface {
	Notify(body string) (string, error)
}

// ContactAlerts texts the on-call phone about new support inquiries
type ContactAlerts struct {
	Notifier Notifier
	Logger   logger.Logger
}

// HandleSNSEvent alerts on every support submission in the event. Records
// from other feeds are ignored.
func (a *ContactAlerts) HandleSNSEvent(ctx context.Context, event events.SNSEvent) error {
	for _, record := range event.Records {
		feed, ok := record.SNS.MessageAttributes["feed"]
		if !ok {
			a.Logger.Warn("notify", "feed not present in SNS message", nil)
			continue
		}
		// Lambda delivers message attributes as {"Type": ..., "Value": ...}
		if attr, isMap := feed.(map[string]interface{}); isMap {
			feed = attr["Value"]
		}
		if feed != svc.ContactReceivedFeed {
			a.Logger.Debug("notify", "no handler for feed", map[string]interface{}{"feed": feed})
			continue
		}

		var submission contact.Submission
		if err := json.Unmarshal([]byte(record.SNS.Message), &submission); err != nil {
			return errors.Wrap(err, "decode contact submission")
		}
		if submission.Type != contact.TypeSupport {
			continue
		}
		sid, err := a.Notifier.Notify(contact.Alert(submission.Inquiry()))
		if err != nil {
			return errors.Wrapf(err, "alert for submission %d", submission.ID)
		}
		a.Logger.Info("notify", "support alert sent", map[string]interface{}{
			"submission_id": submission.ID,
			"sid":           sid,
		})
	}
	return nil
}
