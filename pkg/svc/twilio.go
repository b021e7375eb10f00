package svc

import (
	"fmt"

	"github.com/sfreiberg/gotwilio"
)

// TwilioClient generalizes access to Twilio
type TwilioClient interface {
	SendSMS(string, string, string, string, string) (*gotwilio.SmsResponse, *gotwilio.Exception, error)
}

// TwilioNotifier texts contact alerts to the on-call phone
type TwilioNotifier struct {
	Client TwilioClient
	From   string // The Twilio automated number
	To     string // The on-call phone
}

// NewTwilioNotifier is a constructor for TwilioNotifier structs
func NewTwilioNotifier(client TwilioClient, from, to string) *TwilioNotifier {
	return &TwilioNotifier{
		Client: client,
		From:   from,
		To:     to,
	}
}

// Notify sends body as an SMS and returns the Twilio message SID
func (n *TwilioNotifier) Notify(body string) (string, error) {
	res, exception, err := n.Client.SendSMS(n.From, n.To, body, "", "")
	if err != nil {
		return "", err
	}
	if exception != nil {
		return "", fmt.Errorf("Twilio returned error code %d: %s", exception.Code, exception.Message)
	}
	if res == nil {
		return "", nil
	}
	return res.Sid, nil
}
