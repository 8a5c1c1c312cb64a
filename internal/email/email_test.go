package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeltev/printbaarn/internal/transport"
)

func TestRenderOrder_TotalsAndLabels(t *testing.T) {
	t.Parallel()

	order := transport.OrderRequest{
		Name:            "Jan Jansen",
		Address:         "Dorpsstraat 1",
		PostalCode:      "3741 AA",
		City:            "Baarn",
		ContactMethod:   "phone",
		ContactValue:    "0612345678",
		DropoffLocation: "Bij de voordeur",
		Products: []transport.OrderProduct{
			{ProductName: "Dino Skelet", Quantity: 2, Price: 3.5, PriceType: "child"},
			{ProductName: "Robot", Quantity: 1, Price: 7.25, PriceType: "adult"},
		},
	}

	body, err := renderOrder(order)
	require.NoError(t, err)

	assert.Contains(t, body, "Nieuwe Bestelling")
	assert.Contains(t, body, "Klantgegevens")
	assert.Contains(t, body, "Jan Jansen")
	assert.Contains(t, body, "Dorpsstraat 1")
	assert.Contains(t, body, "Telefoonnummer")
	assert.Contains(t, body, "0612345678")
	assert.Contains(t, body, "Bij de voordeur")

	assert.Contains(t, body, "Dino Skelet")
	assert.Contains(t, body, "Kinderprijs")
	assert.Contains(t, body, "Volwassen prijs")
	// 2 x 3.50 + 1 x 7.25
	assert.Contains(t, body, "7.00")
	assert.Contains(t, body, "7.25")
	assert.Contains(t, body, "14.25")
	assert.Contains(t, body, "Totaalbedrag")
}

func TestRenderOrder_EmailContactMethod(t *testing.T) {
	t.Parallel()

	order := transport.OrderRequest{
		Name:          "Jan",
		ContactMethod: "email",
		ContactValue:  "jan@example.com",
	}

	body, err := renderOrder(order)
	require.NoError(t, err)

	assert.Contains(t, body, "E-mailadres")
	assert.Contains(t, body, "jan@example.com")
	assert.NotContains(t, body, "Telefoonnummer")
}

func TestRenderOrder_CommentsSplitPerLine(t *testing.T) {
	t.Parallel()

	order := transport.OrderRequest{
		Name:          "Jan",
		ContactMethod: "phone",
		Comments:      "regel een\nregel twee",
	}

	body, err := renderOrder(order)
	require.NoError(t, err)

	assert.Contains(t, body, "regel een")
	assert.Contains(t, body, "regel twee")
}

func TestContactTemplate_EscapesHTML(t *testing.T) {
	t.Parallel()

	view := contactView{
		Name:    "Jan",
		Email:   "jan@example.com",
		Message: []string{"<script>alert(1)</script>"},
	}

	var buf bytes.Buffer
	require.NoError(t, contactTmpl.Execute(&buf, view))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestMessage_Headers(t *testing.T) {
	t.Parallel()

	s := &Sender{Username: "mailer@example.com", To: "shop@example.com"}
	msg := s.message("Nieuwe Bestelling", "<p>hoi</p>")

	assert.Contains(t, msg, "From: mailer@example.com\r\n")
	assert.Contains(t, msg, "To: shop@example.com\r\n")
	assert.Contains(t, msg, "Subject: Nieuwe Bestelling\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, msg, "\r\n\r\n<p>hoi</p>")
}
