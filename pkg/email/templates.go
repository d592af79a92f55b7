package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// EnquiryEmailData is the view passed to the enquiry notification templates.
type EnquiryEmailData struct {
	Name     string
	Lastname string
	Email    string
	Subject  string
	Notes    string
}

var enquiryHTML = htmltemplate.Must(htmltemplate.New("enquiry_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New Website Enquiry</h2>
    <div style="background-color: #f3f4f6; padding: 20px; border-radius: 6px; margin: 20px 0;">
        <p><strong>Name:</strong> {{.Name}} {{.Lastname}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
        <p><strong>Subject:</strong> {{.Subject}}</p>
    </div>
    <div style="padding: 20px; border-left: 4px solid #2563eb; border-radius: 4px;">
        <h3 style="margin-top: 0;">Notes</h3>
        <p style="white-space: pre-wrap;">{{.Notes}}</p>
    </div>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Reply to this email to answer {{.Name}} directly.</p>
</body>
</html>`))

var enquiryText = texttemplate.Must(texttemplate.New("enquiry_text").Parse(`New Website Enquiry

Name: {{.Name}} {{.Lastname}}
Email: {{.Email}}
Subject: {{.Subject}}

Notes:
{{.Notes}}
`))

// BuildEnquiryNotification renders the admin notification for a new enquiry.
func BuildEnquiryNotification(adminAddress string, data EnquiryEmailData) (Message, error) {
	var html, text bytes.Buffer
	if err := enquiryHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render enquiry html: %w", err)
	}
	if err := enquiryText.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("render enquiry text: %w", err)
	}

	return Message{
		To:       []string{adminAddress},
		ReplyTo:  data.Email,
		Subject:  fmt.Sprintf("New Enquiry from %s %s", data.Name, data.Lastname),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
