package smsnotifier

import (
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrSendFailed возвращается при неудачной отправке SMS
var ErrSendFailed = errors.New("smsnotifier: failed to send sms")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет SMS-напоминания через Twilio
type Notifier struct {
	client *twilio.RestClient
	from   string
	log    Logger
}

// New создает Twilio-нотификатор
func New(accountSID, authToken, fromNumber string, log Logger) *Notifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Notifier{
		client: client,
		from:   fromNumber,
		log:    log,
	}
}

// Send отправляет SMS на указанный номер
func (n *Notifier) Send(to string, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		n.log.Error("Send: twilio error for to=%s: %v", to, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	n.log.Info("Send: sms sent to=%s", to)
	return nil
}
