package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/propati/propati/internal/pkg/metrics"
	"github.com/propati/propati/internal/pkg/models"
	"github.com/propati/propati/services/newsletter"
	"github.com/sirupsen/logrus"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewsletterUC implements the newsletter.NewsletterUC interface
type NewsletterUC struct {
	cfg    *models.Config
	repo   newsletter.NewsletterRepo
	gw     newsletter.NewsletterGW
	logger *logrus.Logger
}

// NewNewsletterUC creates a new newsletter use case
func NewNewsletterUC(cfg *models.Config, repo newsletter.NewsletterRepo, gw newsletter.NewsletterGW, logger *logrus.Logger) newsletter.NewsletterUC {
	return &NewsletterUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		logger: logger,
	}
}

func (uc *NewsletterUC) fromAddress() string {
	return fmt.Sprintf("%s <%s>", uc.cfg.Email.FromName, uc.cfg.Email.FromAddress)
}

// Subscribe upserts a subscription keyed by email. An active subscription is
// reported back without side effects; an inactive one is reactivated in
// place, so repeated subscribing converges on exactly one row. The welcome
// email is best-effort and never fails the subscription.
func (uc *NewsletterUC) Subscribe(ctx context.Context, email string) (*models.Subscriber, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, false, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}

	existing, err := uc.repo.GetSubscriberByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up subscriber: %w", err)
	}

	if existing != nil && existing.IsActive {
		return existing, true, nil
	}

	action := "subscribed"
	var subscriber *models.Subscriber
	if existing != nil {
		if err := uc.repo.ReactivateSubscriber(ctx, email); err != nil {
			return nil, false, fmt.Errorf("failed to reactivate subscriber: %w", err)
		}
		action = "resubscribed"
		existing.IsActive = true
		existing.UnsubscribedAt = nil
		subscriber = existing
	} else {
		subscriber = &models.Subscriber{
			ID:           uuid.New(),
			Email:        email,
			IsActive:     true,
			SubscribedAt: time.Now(),
		}
		if err := uc.repo.CreateSubscriber(ctx, subscriber); err != nil {
			return nil, false, fmt.Errorf("failed to create subscriber: %w", err)
		}
	}

	msg := &models.EmailMessage{
		From:    uc.fromAddress(),
		To:      email,
		Subject: "Welcome to the Propati newsletter",
		HTML:    welcomeHTML(),
	}
	if _, err := uc.gw.SendEmail(ctx, msg); err != nil {
		uc.logger.WithError(err).WithField("email", email).
			Warn("Failed to send welcome email")
	}

	event := &models.SubscriberEvent{
		Email:     email,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.gw.PublishSubscriberEvent(ctx, event); err != nil {
		uc.logger.WithError(err).Warn("Failed to publish subscriber event")
	}

	return subscriber, false, nil
}

// Unsubscribe flips the subscription off. Unknown emails are a no-op so that
// unsubscribe links never error for the recipient.
func (uc *NewsletterUC) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}

	if err := uc.repo.DeactivateSubscriber(ctx, email); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// SendMarketTrends fans the newsletter out to every active subscriber, one
// goroutine per recipient. Individual failures are counted, logged, and never
// abort the batch.
func (uc *NewsletterUC) SendMarketTrends(ctx context.Context, req *models.MarketTrendsRequest) (*models.BatchReport, error) {
	subject := req.Subject
	if subject == "" {
		subject = defaultTrendsSubject
	}
	content := req.Content
	if content == "" {
		content = defaultTrendsContent
	}

	subscribers, err := uc.repo.GetActiveSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscribers: %w", err)
	}

	report := &models.BatchReport{Total: len(subscribers)}
	if len(subscribers) == 0 {
		return report, nil
	}

	html := newsletterHTML(content)
	from := uc.fromAddress()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, subscriber := range subscribers {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()

			msg := &models.EmailMessage{
				From:    from,
				To:      email,
				Subject: subject,
				HTML:    html,
			}
			_, sendErr := uc.gw.SendEmail(ctx, msg)

			mu.Lock()
			defer mu.Unlock()
			if sendErr != nil {
				report.Failed++
				metrics.NotificationsSent.WithLabelValues(metrics.OutcomeFailed).Inc()
				uc.logger.WithError(sendErr).WithField("email", email).
					Warn("Failed to send market trends email")
			} else {
				report.Successful++
				metrics.NotificationsSent.WithLabelValues(metrics.OutcomeDelivered).Inc()
			}
		}(subscriber.Email)
	}
	wg.Wait()

	uc.logger.WithFields(logrus.Fields{
		"total":      report.Total,
		"successful": report.Successful,
		"failed":     report.Failed,
	}).Info("Market trends batch completed")

	return report, nil
}

// SendAgentWelcome sends the agent onboarding email and returns the provider
// acknowledgement.
func (uc *NewsletterUC) SendAgentWelcome(ctx context.Context, req *models.AgentWelcomeRequest) (*models.EmailResult, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}

	msg := &models.EmailMessage{
		From:    uc.fromAddress(),
		To:      email,
		Subject: "Welcome to Propati",
		HTML:    agentWelcomeHTML(req.Name),
	}

	result, err := uc.gw.SendEmail(ctx, msg)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("failed to send agent welcome email: %w", err)
	}

	metrics.NotificationsSent.WithLabelValues(metrics.OutcomeDelivered).Inc()
	return result, nil
}
