package services

import (
	"fmt"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"html"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce sync.Once
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	if _, err := es.client.Emails.Send(params); err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}
	return nil
}

// SendNewOrderEmail tells the kitchen staff about an order that was just placed
func (es *EmailService) SendNewOrderEmail(order *tables.Order) error {
	if len(es.cfg.Email.Recipients) == 0 {
		return nil
	}

	subject := fmt.Sprintf("New order %s", shortOrderID(order))
	return es.SendEmail(es.cfg.Email.Recipients, subject, renderNewOrderEmail(order))
}

func shortOrderID(order *tables.Order) string {
	return strings.ToUpper(order.Id.String()[:8])
}

func renderNewOrderEmail(order *tables.Order) string {
	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, `<tr><td>%dx %s</td><td style="text-align:right">%s</td></tr>`,
			item.Quantity, html.EscapeString(item.Title), item.Price.StringFixed(2))

		for _, c := range item.Customizations {
			fmt.Fprintf(&lines, `<tr><td style="padding-left:20px">+ %dx %s</td><td style="text-align:right">%s</td></tr>`,
				c.Quantity, html.EscapeString(c.Title), c.Price.StringFixed(2))
		}

		if item.Observation != nil && *item.Observation != "" {
			fmt.Fprintf(&lines, `<tr><td colspan="2" style="padding-left:20px"><em>%s</em></td></tr>`,
				html.EscapeString(*item.Observation))
		}
	}

	observation := ""
	if order.Observation != nil && *order.Observation != "" {
		observation = fmt.Sprintf("<p><strong>Observation:</strong> %s</p>", html.EscapeString(*order.Observation))
	}

	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #d35400; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				table { width: 100%%; border-collapse: collapse; }
				td { padding: 6px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>New order %s</h1>
				</div>
				<div class="content">
					<p>Status: %s</p>
					<table>%s</table>
					<p style="text-align:right"><strong>Total: %s</strong></p>
					%s
				</div>
			</div>
		</body>
		</html>
	`, shortOrderID(order), order.Status, lines.String(), order.Amount.StringFixed(2), observation)
}
