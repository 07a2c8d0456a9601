package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends transactional mail over SES.
type Mailer struct {
	client *ses.Client
	from   string
}

func NewMailer(ctx context.Context) (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &Mailer{
		client: ses.NewFromConfig(cfg),
		from:   os.Getenv("SES_EMAIL"),
	}, nil
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendReceiptEmail mails a settlement receipt to the buyer.
func (m *Mailer) SendReceiptEmail(ctx context.Context, to, reference string, amount float64, orderCount int) error {
	subject := "Your Foodlane payment receipt"
	body := fmt.Sprintf(
		"Thanks for your order!\n\nPayment reference: %s\nAmount: %.2f\nOrders settled: %d\n",
		reference, amount, orderCount,
	)
	return m.send(ctx, to, subject, body)
}
