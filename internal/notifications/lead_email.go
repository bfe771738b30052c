package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

const leadEmailTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New {{.RequestType}} request</h3>
  <p><strong>Name:</strong> {{.FullName}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p>Open the admin console to review it.</p>
</body>
</html>`

var leadEmailTmpl = template.Must(template.New("lead_email").Parse(leadEmailTemplate))

// leadSummary feeds the notification template. The full document stays in
// the admin console, not in email.
type leadSummary struct {
	RequestType string
	ID          string
	FullName    string
	Email       string
	Phone       string
}

// LeadNotifier routes new-lead notifications to a fixed admin inbox.
type LeadNotifier struct {
	client  *BrevoClient
	toEmail string
}

func NewLeadNotifier(client *BrevoClient, toEmail string) *LeadNotifier {
	if client == nil || toEmail == "" {
		return nil
	}
	return &LeadNotifier{client: client, toEmail: toEmail}
}

func (n *LeadNotifier) SendLeadNotification(ctx context.Context, requestType, id, fullName, email, phone string) (string, error) {
	summary := leadSummary{
		RequestType: requestType,
		ID:          id,
		FullName:    fullName,
		Email:       email,
		Phone:       phone,
	}
	var buf bytes.Buffer
	if err := leadEmailTmpl.Execute(&buf, summary); err != nil {
		return "", err
	}
	subject := fmt.Sprintf("New %s request from %s", requestType, fullName)
	return n.client.sendHTML(ctx, n.toEmail, "", subject, buf.String())
}
