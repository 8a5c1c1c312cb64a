// Package email delivers order and contact notifications over SMTP. Every
// send either succeeds or reports false; the shop never fails an order
// because mail did.
package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/jeltev/printbaarn/internal/config"
	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/transport"
)

type Sender struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

func NewSender(cfg config.Config) *Sender {
	return &Sender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		To:       cfg.OrderEmail,
	}
}

// SendOrderEmail mails the full order form to the shop owner.
func (s *Sender) SendOrderEmail(ctx context.Context, order transport.OrderRequest) bool {
	l := logging.FromContext(ctx).With("mail", "order")

	body, err := renderOrder(order)
	if err != nil {
		l.Error("render_failed", "error", err)
		return false
	}

	subject := fmt.Sprintf("\U0001F3AF Nieuwe Bestelling van %s", order.Name)
	if err := s.send(subject, body); err != nil {
		l.Error("send_failed", "error", err)
		return false
	}
	l.Info("sent")
	return true
}

// SendContactEmail mails a contact-form message to the shop owner.
func (s *Sender) SendContactEmail(ctx context.Context, req transport.ContactRequest) bool {
	l := logging.FromContext(ctx).With("mail", "contact")

	view := contactView{
		Name:    req.Name,
		Email:   req.Email,
		Message: strings.Split(req.Message, "\n"),
	}
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, view); err != nil {
		l.Error("render_failed", "error", err)
		return false
	}

	subject := fmt.Sprintf("\U0001F4AC Nieuw Contactbericht van %s", req.Name)
	if err := s.send(subject, buf.String()); err != nil {
		l.Error("send_failed", "error", err)
		return false
	}
	l.Info("sent")
	return true
}

func renderOrder(order transport.OrderRequest) (string, error) {
	view := orderView{
		Name:              order.Name,
		Address:           order.Address,
		PostalCode:        order.PostalCode,
		City:              order.City,
		ContactLabel:      "Telefoon",
		ContactFieldLabel: "Telefoonnummer",
		ContactValue:      order.ContactValue,
		DropoffLocation:   order.DropoffLocation,
	}
	if order.ContactMethod == "email" {
		view.ContactLabel = "E-mail"
		view.ContactFieldLabel = "E-mailadres"
	}
	if order.Comments != "" {
		view.Comments = strings.Split(order.Comments, "\n")
	}

	var total float64
	for _, p := range order.Products {
		lineTotal := p.Price * float64(p.Quantity)
		total += lineTotal
		label := "Volwassen prijs"
		if p.PriceType == "child" {
			label = "Kinderprijs"
		}
		view.Lines = append(view.Lines, orderLine{
			ProductName:    p.ProductName,
			Quantity:       p.Quantity,
			PriceTypeLabel: label,
			Price:          fmt.Sprintf("%.2f", p.Price),
			LineTotal:      fmt.Sprintf("%.2f", lineTotal),
		})
	}
	view.Total = fmt.Sprintf("%.2f", total)

	var buf bytes.Buffer
	if err := orderTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// send delivers one HTML message over implicit TLS (port 465 style).
func (s *Sender) send(subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	c, err := smtp.DialTLS(addr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer c.Close()

	if err := c.Auth(sasl.NewPlainClient("", s.Username, s.Password)); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Mail(s.Username, nil); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(s.To, nil); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write([]byte(s.message(subject, htmlBody))); err != nil {
		w.Close()
		return fmt.Errorf("write body: %w", err)
	}
	return w.Close()
}

func (s *Sender) message(subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString("From: " + s.Username + "\r\n")
	b.WriteString("To: " + s.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return b.String()
}
