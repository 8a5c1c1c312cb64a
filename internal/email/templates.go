package email

import "html/template"

var orderTmpl = template.Must(template.New("order").Parse(`<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    h1 { color: #007AFF; border-bottom: 2px solid #007AFF; padding-bottom: 10px; }
    h2 { color: #555; margin-top: 25px; }
    .info-row { margin: 10px 0; }
    .label { font-weight: bold; display: inline-block; width: 150px; }
    table { border-collapse: collapse; width: 100%; margin: 15px 0; }
    th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    th { background-color: #007AFF; color: white; }
    .total-row { font-weight: bold; background-color: #f0f8ff; font-size: 1.1em; }
    .text-right { text-align: right; }
  </style>
</head>
<body>
  <h1>&#127919; Nieuwe Bestelling - 3D Print Baarn</h1>

  <h2>Klantgegevens</h2>
  <div class="info-row"><span class="label">Naam:</span> {{.Name}}</div>
  <div class="info-row"><span class="label">Adres:</span> {{.Address}}</div>
  <div class="info-row"><span class="label">Postcode:</span> {{.PostalCode}}</div>
  <div class="info-row"><span class="label">Woonplaats:</span> {{.City}}</div>
  <div class="info-row"><span class="label">Contact via:</span> {{.ContactLabel}}</div>
  <div class="info-row"><span class="label">{{.ContactFieldLabel}}:</span> {{.ContactValue}}</div>

  <h2>Bestelde Producten</h2>
  <table>
    <thead>
      <tr>
        <th>Product</th>
        <th>Aantal</th>
        <th>Prijs Type</th>
        <th class="text-right">Prijs per stuk</th>
        <th class="text-right">Totaal</th>
      </tr>
    </thead>
    <tbody>
      {{range .Lines}}
      <tr>
        <td>{{.ProductName}}</td>
        <td>{{.Quantity}}</td>
        <td>{{.PriceTypeLabel}}</td>
        <td class="text-right">&euro;{{.Price}}</td>
        <td class="text-right">&euro;{{.LineTotal}}</td>
      </tr>
      {{end}}
      <tr class="total-row">
        <td colspan="4" class="text-right">Totaalbedrag:</td>
        <td class="text-right">&euro;{{.Total}}</td>
      </tr>
    </tbody>
  </table>

  <h2>Bezorggegevens</h2>
  <div class="info-row"><span class="label">Aflevering:</span> {{.DropoffLocation}}</div>

  {{if .Comments}}
  <h2>Opmerkingen</h2>
  <p style="background-color: #f9f9f9; padding: 15px; border-left: 4px solid #007AFF;">
    {{range $i, $line := .Comments}}{{if $i}}<br>{{end}}{{$line}}{{end}}
  </p>
  {{end}}

  <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">
  <p style="color: #666; font-size: 0.9em;">
    Deze e-mail is automatisch gegenereerd door het bestelsysteem van 3D Print Baarn.
  </p>
</body>
</html>
`))

var contactTmpl = template.Must(template.New("contact").Parse(`<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    h1 { color: #007AFF; }
    .info { background-color: #f9f9f9; padding: 15px; border-left: 4px solid #007AFF; }
  </style>
</head>
<body>
  <h1>&#128172; Nieuw Contactbericht</h1>
  <p><strong>Van:</strong> {{.Name}}</p>
  <p><strong>E-mail:</strong> {{.Email}}</p>
  <h2>Bericht:</h2>
  <div class="info">
    {{range $i, $line := .Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}
  </div>
</body>
</html>
`))

type orderLine struct {
	ProductName    string
	Quantity       int
	PriceTypeLabel string
	Price          string
	LineTotal      string
}

type orderView struct {
	Name              string
	Address           string
	PostalCode        string
	City              string
	ContactLabel      string
	ContactFieldLabel string
	ContactValue      string
	Lines             []orderLine
	Total             string
	DropoffLocation   string
	Comments          []string
}

type contactView struct {
	Name    string
	Email   string
	Message []string
}
