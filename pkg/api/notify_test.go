package api

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/jinzhu/gorm"
	"github.com/sfreiberg/gotwilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/mocks"
	"github.com/cyboglabs/cybot/pkg/svc"
)

func snsRecord(t *testing.T, submission contact.Submission, feed interface{}) events.SNSEventRecord {
	message, err := json.Marshal(submission)
	assert.NoError(t, err)
	attributes := map[string]interface{}{}
	if feed != nil {
		attributes["feed"] = feed
	}
	return events.SNSEventRecord{SNS: events.SNSEntity{
		Message:           string(message),
		MessageAttributes: attributes,
	}}
}

func TestHandleSNSEventAlertsSupport(t *testing.T) {
	twilioMock := &mocks.TwilioClientMock{}
	twilioMock.On("SendSMS", "+15550001", "+15550002", mock.MatchedBy(func(body string) bool {
		return body == "New support inquiry from Ada <ada@example.com>: Broken login"
	}), "", "").Return(&gotwilio.SmsResponse{Sid: "SM1"}, nil, nil)

	alerts := &ContactAlerts{
		Notifier: svc.NewTwilioNotifier(twilioMock, "+15550001", "+15550002"),
		Logger:   logger.NewNopLogger(),
	}
	support := contact.Submission{Model: gorm.Model{ID: 1}, Name: "Ada", Email: "ada@example.com", Subject: "Broken login", Type: contact.TypeSupport}
	general := contact.Submission{Model: gorm.Model{ID: 2}, Name: "Bob", Email: "bob@example.com", Subject: "Hi", Type: contact.TypeGeneral}

	err := alerts.HandleSNSEvent(context.Background(), events.SNSEvent{Records: []events.SNSEventRecord{
		snsRecord(t, support, map[string]interface{}{"Type": "String", "Value": svc.ContactReceivedFeed}),
		snsRecord(t, general, svc.ContactReceivedFeed),
		snsRecord(t, support, "other_feed"),
		snsRecord(t, support, nil),
	}})
	assert.NoError(t, err)
	twilioMock.AssertNumberOfCalls(t, "SendSMS", 1)
}

func TestHandleSNSEventTwilioFailure(t *testing.T) {
	twilioMock := &mocks.TwilioClientMock{}
	twilioMock.On("SendSMS", mock.Anything, mock.Anything, mock.Anything, "", "").Return(nil, nil, errors.New("timeout"))

	alerts := &ContactAlerts{
		Notifier: svc.NewTwilioNotifier(twilioMock, "+15550001", "+15550002"),
		Logger:   logger.NewNopLogger(),
	}
	support := contact.Submission{Name: "Ada", Email: "ada@example.com", Subject: "Help", Type: contact.TypeSupport}
	err := alerts.HandleSNSEvent(context.Background(), events.SNSEvent{Records: []events.SNSEventRecord{
		snsRecord(t, support, svc.ContactReceivedFeed),
	}})
	assert.Error(t, err)
}
