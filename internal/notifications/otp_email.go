package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

const otpEmailTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Hello {{.Name}},</p>
  <p>Your admin login code is:</p>
  <h2>{{.Code}}</h2>
  <p>The code expires in {{.TTLMinutes}} minutes. If you did not request it,
  you can ignore this email.</p>
</body>
</html>`

var otpEmailTmpl = template.Must(template.New("otp_email").Parse(otpEmailTemplate))

type otpEmailData struct {
	Name       string
	Code       string
	TTLMinutes int
}

func (c *BrevoClient) SendOTPEmail(ctx context.Context, toEmail, toName, code string, ttlMinutes int) (string, error) {
	var buf bytes.Buffer
	if err := otpEmailTmpl.Execute(&buf, otpEmailData{Name: toName, Code: code, TTLMinutes: ttlMinutes}); err != nil {
		return "", err
	}
	subject := fmt.Sprintf("Your admin login code: %s", code)
	return c.sendHTML(ctx, toEmail, toName, subject, buf.String())
}
