package service

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
)

const cellLabel = `padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;`
const cellValue = `padding: 8px; border-bottom: 1px solid #eee;`

var contactTmpl = template.Must(template.New("contact").Parse(`
<h2>New Contact Form Submission</h2>
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
  <tr><td style="` + cellLabel + `">Name</td><td style="` + cellValue + `">{{.Name}}</td></tr>
  <tr><td style="` + cellLabel + `">Email</td><td style="` + cellValue + `"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td style="` + cellLabel + `">Company</td><td style="` + cellValue + `">{{.Company}}</td></tr>
  <tr><td style="` + cellLabel + `">Service</td><td style="` + cellValue + `">{{.Service}}</td></tr>
  <tr><td style="padding: 8px; font-weight: bold; vertical-align: top;">Message</td><td style="padding: 8px;">{{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</td></tr>
</table>
<p style="margin-top: 16px; color: #888; font-size: 12px;">Sent from Digiweb Agency website contact form</p>
`))

var quickTmpl = template.Must(template.New("quick").Parse(`
<h2>Quick Contact Request</h2>
{{if .ProjectName}}<p><strong>Interested in a project similar to:</strong> {{.ProjectName}}</p>{{end}}
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
  <tr><td style="` + cellLabel + `">Name</td><td style="` + cellValue + `">{{.Name}}</td></tr>
  <tr><td style="` + cellLabel + `">Phone</td><td style="` + cellValue + `">{{.Phone}}</td></tr>
</table>
<p style="margin-top: 16px; color: #888; font-size: 12px;">Sent from Digiweb Agency website - project detail page</p>
`))

type contactView struct {
	Name         string
	Email        string
	Company      string
	Service      string
	MessageLines []string
}

func renderContact(s domain.Submission) (string, error) {
	company := s.Company
	if company == "" {
		company = "Not provided"
	}
	view := contactView{
		Name:         s.Name,
		Email:        s.Email,
		Company:      company,
		Service:      domain.ServiceLabel(s.Service),
		MessageLines: strings.Split(strings.ReplaceAll(s.Message, "\r\n", "\n"), "\n"),
	}

	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderQuick(q domain.QuickRequest) (string, error) {
	var buf bytes.Buffer
	if err := quickTmpl.Execute(&buf, q); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func contactSubject(s domain.Submission) string {
	return "New Contact Form Submission from " + s.Name
}

func quickSubject(q domain.QuickRequest) string {
	if q.ProjectName == "" {
		return "Quick Contact Request"
	}
	return "Quick Contact Request - Similar to " + q.ProjectName
}
