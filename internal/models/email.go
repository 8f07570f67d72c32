package models

type EmailMessage struct {
	To          string   `json:"to"`
	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	ReplyTo     string   `json:"replyTo,omitempty"`
	Subject     string   `json:"subject"`
	Content     string   `json:"content"`
	HTMLContent string   `json:"htmlContent,omitempty"`
}
