// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package relay

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
)

const notProvided = "Não informado"

// Message is a contact submission to be relayed to the site owner.
type Message struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// EmailSubject returns the subject line of the notification.
func (m Message) EmailSubject() string {
	subject := strings.TrimSpace(m.Subject)
	if subject == "" {
		subject = "Sem assunto"
	}
	return "Contato do Portfólio: " + subject
}

var bodyPolicy = bluemonday.UGCPolicy()

type emailView struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    template.HTML
	Text    string
}

func (m Message) view() emailView {
	orDefault := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return notProvided
		}
		return s
	}

	sanitized := bodyPolicy.Sanitize(m.Body)
	sanitized = strings.ReplaceAll(sanitized, "\r\n", "\n")
	sanitized = strings.ReplaceAll(sanitized, "\n", "<br>\n")

	return emailView{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   orDefault(m.Phone),
		Subject: orDefault(m.Subject),
		Body:    template.HTML(sanitized),
		Text:    m.Body,
	}
}

var htmlTemplate = template.Must(template.New("contact.html").Parse(`<h2>Nova mensagem do portfólio</h2>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Telefone:</strong> {{.Phone}}</p>
<p><strong>Assunto:</strong> {{.Subject}}</p>
<p><strong>Mensagem:</strong></p>
<p>{{.Body}}</p>
<hr>
<p><small>Mensagem enviada através do formulário de contato do portfólio</small></p>
`))

var textTemplate = texttemplate.Must(texttemplate.New("contact.txt").Parse(`Nova mensagem do portfólio

Nome: {{.Name}}
Email: {{.Email}}
Telefone: {{.Phone}}
Assunto: {{.Subject}}

Mensagem:
{{.Text}}

---
Mensagem enviada através do formulário de contato do portfólio
`))

// Render produces the HTML and plain text bodies of the notification.
func (m Message) Render() (html, text string, err error) {
	v := m.view()

	var hb, tb bytes.Buffer
	if err := htmlTemplate.Execute(&hb, v); err != nil {
		return "", "", fmt.Errorf("relay: render html: %w", err)
	}
	if err := textTemplate.Execute(&tb, v); err != nil {
		return "", "", fmt.Errorf("relay: render text: %w", err)
	}
	return hb.String(), tb.String(), nil
}
