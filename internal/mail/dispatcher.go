package mail

import (
	"context"
	"log"
	"sync"
	"time"
)

const defaultSendTimeout = 30 * time.Second

// Dispatcher sends messages on detached goroutines. Delivery failures are
// logged and never reported to the caller: a mail outage must not turn an
// already-committed order into an error response.
type Dispatcher struct {
	mailer  Mailer
	logger  *log.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(mailer Mailer, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		mailer:  mailer,
		logger:  logger,
		timeout: defaultSendTimeout,
	}
}

// Dispatch starts delivery and returns immediately. The send runs on its own
// context so it survives the originating request's cancellation.
func (d *Dispatcher) Dispatch(msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.mailer.Send(ctx, msg); err != nil {
			d.logger.Printf("email dispatch failed subject=%q err=%v", msg.Subject, err)
			return
		}
		d.logger.Printf("email dispatched subject=%q recipients=%d", msg.Subject, len(msg.To))
	}()
}

// Wait blocks until all in-flight sends finish. Called on shutdown and in
// tests; request handlers never wait.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
