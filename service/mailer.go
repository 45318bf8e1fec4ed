package application

import (
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

// Mailer delivers announcement broadcasts over SMTP. A nil Mailer disables
// delivery entirely; storage never depends on it.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	cb     *gobreaker.CircuitBreaker
}

func NewMailer(host string, port int, email, password string) *Mailer {
	if host == "" || email == "" {
		return nil
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, email, password),
		from:   email,
		cb:     CircuitBreaker("announcementMailer"),
	}
}

func (mailer *Mailer) SendAnnouncement(title, description string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	_, err := mailer.cb.Execute(func() (interface{}, error) {
		m := gomail.NewMessage()
		m.SetHeader("From", mailer.from)
		m.SetHeader("To", recipients...)
		m.SetHeader("Subject", fmt.Sprintf("New announcement: %s", title))
		m.SetBody("text/plain", description)

		return nil, mailer.dialer.DialAndSend(m)
	})

	return err
}

func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
			},
		},
	)
}
