package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsefit/internal/logger"
	"pulsefit/internal/metrics"
)

const (
	queueKey       = "contact:submissions"
	failedQueueKey = "contact:submissions:failed"
)

// Submission is one contact form entry queued for delivery to the staff
// inbox. The validate tags gate relaying only; the form itself accepts
// anything.
type Submission struct {
	Name    string    `json:"name" validate:"omitempty,max=200"`
	Email   string    `json:"email" validate:"required,email"`
	Goal    string    `json:"goal" validate:"omitempty,max=200"`
	Message string    `json:"message" validate:"required,max=4000"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Relay forwards contact form submissions to a staff inbox through a Redis
// queue, so a slow or down SMTP server never blocks the form handler.
type Relay struct {
	redis    *redis.Client
	inbox    string
	from     string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func NewRelay(inbox, fromEmail, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Relay {
	return &Relay{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		inbox:    inbox,
		from:     fromEmail,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (r *Relay) Enqueue(ctx context.Context, sub Submission) error {
	sub.Tries = 0
	sub.Created = time.Now()

	data, err := json.Marshal(sub)
	if err != nil {
		logger.Errorf("Failed to marshal contact submission: %v", err)
		return err
	}

	if err := r.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue contact submission from %s: %v", sub.Email, err)
		return err
	}

	logger.Infof("Contact submission queued from %s", sub.Email)
	return nil
}

func (r *Relay) Start(ctx context.Context) {
	logger.Info("Contact relay started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Contact relay stopped")
			return
		default:
			r.processNext(ctx)
		}
	}
}

func (r *Relay) processNext(ctx context.Context) {
	result, err := r.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}
	metrics.ContactQueueLength.Set(float64(r.QueueLength(ctx)))

	var sub Submission
	if err := json.Unmarshal([]byte(result[1]), &sub); err != nil {
		logger.Errorf("Bad contact submission data: %v", err)
		return
	}

	sub.Tries++
	if err := r.sendNow(sub); err != nil {
		logger.Errorf("Failed to relay contact submission from %s: %v", sub.Email, err)

		if sub.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(sub)
			r.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying contact submission from %s (attempt %d)", sub.Email, sub.Tries+1)
		} else {
			logger.Errorf("Contact submission from %s failed after 3 attempts", sub.Email)
			metrics.RecordRelay("failed")
			r.saveFailed(sub, err)
		}
		return
	}

	metrics.RecordRelay("success")
	logger.Infof("Contact submission relayed to %s", r.inbox)
}

func (r *Relay) sendNow(sub Submission) error {
	subject := "New contact form submission"
	if sub.Goal != "" {
		subject += ": " + sub.Goal
	}

	message := fmt.Sprintf("From: PulseFit <%s>\r\n", r.from)
	message += fmt.Sprintf("To: %s\r\n", r.inbox)
	message += fmt.Sprintf("Reply-To: %s\r\n", sub.Email)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "\r\n" + fmt.Sprintf(`Name: %s
Email: %s
Goal: %s

%s

Submitted: %s`, sub.Name, sub.Email, sub.Goal, sub.Message, sub.Created.Format("Jan 2, 2006 at 3:04 PM"))

	var auth smtp.Auth
	if r.smtpUser != "" && r.smtpPass != "" {
		auth = smtp.PlainAuth("", r.smtpUser, r.smtpPass, r.smtpHost)
	}

	addr := r.smtpHost + ":" + r.smtpPort
	return smtp.SendMail(addr, auth, r.from, []string{r.inbox}, []byte(message))
}

func (r *Relay) saveFailed(sub Submission, err error) {
	failed := map[string]interface{}{
		"submission": sub,
		"error":      err.Error(),
		"time":       time.Now(),
	}
	data, _ := json.Marshal(failed)
	r.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Contact submission moved to failed queue: %s", sub.Email)
}

func (r *Relay) QueueLength(ctx context.Context) int64 {
	length, _ := r.redis.LLen(ctx, queueKey).Result()
	return length
}

func (r *Relay) Close() error {
	return r.redis.Close()
}
