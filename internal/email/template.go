package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/invera/website-backend/internal/domain"
)

// contactTemplate is the notification document sent for each contact-form
// submission. The company block is rendered only when a company was given.
// html/template escapes user-supplied values on interpolation.
var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background: linear-gradient(135deg, #8b5cf6 0%, #3b82f6 100%);
            color: white;
            padding: 30px;
            text-align: center;
            border-radius: 8px 8px 0 0;
        }
        .content {
            background: #f9fafb;
            padding: 30px;
            border-radius: 0 0 8px 8px;
        }
        .field {
            margin-bottom: 20px;
        }
        .field-label {
            font-weight: bold;
            color: #8b5cf6;
            margin-bottom: 5px;
        }
        .field-value {
            background: white;
            padding: 12px;
            border-left: 3px solid #8b5cf6;
            border-radius: 4px;
        }
        .footer {
            text-align: center;
            margin-top: 20px;
            color: #6b7280;
            font-size: 14px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1 style="margin: 0;">New Contact Form Submission</h1>
            <p style="margin: 10px 0 0 0;">INVERA Website</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="field-label">Name:</div>
                <div class="field-value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="field-label">Email:</div>
                <div class="field-value">{{.Email}}</div>
            </div>
            {{if .Company}}<div class="field">
                <div class="field-label">Company:</div>
                <div class="field-value">{{.Company}}</div>
            </div>{{end}}
            <div class="field">
                <div class="field-label">Message:</div>
                <div class="field-value">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the INVERA contact form.</p>
            <p>Received at: {{.ReceivedAt}}</p>
        </div>
    </div>
</body>
</html>
`))

// RenderContactEmail renders the notification subject and HTML body for a
// contact-form submission. receivedAt stamps the footer and is independent
// of the timestamp later stored on the archived record.
func RenderContactEmail(req domain.ContactFormRequest, receivedAt time.Time) (subject, body string, err error) {
	data := struct {
		Name, Email, Company, Message, ReceivedAt string
	}{
		Name:       req.Name,
		Email:      req.Email,
		Company:    req.Company,
		Message:    req.Message,
		ReceivedAt: receivedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
	}

	var sb strings.Builder
	if err := contactTemplate.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render contact email: %w", err)
	}
	subject = "New Contact Form Submission from " + req.Name
	return subject, sb.String(), nil
}
