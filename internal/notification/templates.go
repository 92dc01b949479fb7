package notification

import "html/template"

var (
	adminTemplate  = template.Must(template.New("admin").Parse(adminEmailTemplate))
	clientTemplate = template.Must(template.New("client").Parse(clientEmailTemplate))
)

// adminEmailTemplate summarizes the full submission for the sales team
const adminEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Quote Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1e3a8a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .services { background: white; padding: 15px; border-left: 4px solid #1e3a8a; margin-top: 10px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1e3a8a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Quote Request {{.RequestNumber}}</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}}{{if .Company}} ({{.Company}}){{end}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            {{if .Phone}}
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            {{end}}
            <div class="field">
                <div class="label">Budget:</div>
                <div class="value">{{.Budget}}</div>
            </div>
            <div class="field">
                <div class="label">Timeline:</div>
                <div class="value">{{.TimelineLabel}}</div>
            </div>
            <div class="field">
                <div class="label">Requested services:</div>
                <div class="services">
                    <ul>
                        {{range .ServiceTitles}}<li>{{.}}</li>{{end}}
                    </ul>
                </div>
            </div>
            {{if .Message}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>Submitted {{.SubmittedDate}}. A PDF summary is attached.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// clientEmailTemplate is the confirmation the submitter receives
const clientEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Quote Request Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1e3a8a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .summary { background: white; padding: 15px; border-left: 4px solid #1e3a8a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you, {{.Name}}!</h1>
        </div>
        <div class="content">
            <p>We received your quote request <strong>{{.RequestNumber}}</strong> and our team will get back to you within one business day.</p>
            <div class="summary">
                <p>Services selected: <strong>{{.ServiceCount}}</strong></p>
                <p>Budget: <strong>{{.Budget}}</strong></p>
                <p>Timeline: <strong>{{.TimelineLabel}}</strong></p>
            </div>
        </div>
        <div class="footer">
            <p>This is an automated confirmation. Replies to this address are not monitored.</p>
        </div>
    </div>
</body>
</html>`
