package notify

import "html/template"

var page = template.Must(template.New("notification").Parse(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; color: #161410; background: #f7f4f1; padding: 20px; }
.container { max-width: 600px; margin: 0 auto; background: white; padding: 30px; border-radius: 16px; border: 1px solid #e6d9c8; }
h1 { font-family: Georgia, serif; color: #1b1915; font-size: 24px; margin-bottom: 8px; }
p { margin: 6px 0; color: #5c5247; line-height: 1.5; }
.brand { color: #8b7a66; font-size: 12px; text-transform: uppercase; letter-spacing: 0.08em; }
.label { font-weight: 600; color: #8b7a66; text-transform: uppercase; font-size: 11px; letter-spacing: 0.08em; }
.value { font-size: 15px; color: #1b1915; margin-top: 4px; }
.mono { font-family: monospace; font-size: 13px; }
.signature-box { margin-top: 16px; padding: 12px; border: 1px dashed #d8c8b1; border-radius: 12px; background: #fefbf7; }
.signature-box img { max-width: 100%; border-radius: 8px; }
.payment-badge { display: inline-block; background: #2ecc71; color: white; padding: 6px 12px; border-radius: 6px; font-size: 12px; font-weight: 600; text-transform: uppercase; letter-spacing: 0.05em; margin-top: 8px; }
.footer { font-size: 12px; color: #8b7a66; }
hr { border: none; border-top: 1px solid #efe5d8; margin: 20px 0; }
</style>
</head>
<body>
<div class="container">
<h1>{{.Title}}</h1>
<p class="brand">{{.Brand}}</p>
{{- if .Badge}}
<div class="payment-badge">&#10003; {{.Badge}}</div>
{{- end}}
<hr />
{{- range .Rows}}
<div style="margin-top: 16px;">
<p class="label">{{.Label}}</p>
<p class="value{{if .Mono}} mono{{end}}">{{.Value}}</p>
</div>
{{- end}}
{{- if .Signature}}
<div class="signature-box">
<p class="label">Customer Signature</p>
<img src="{{.Signature}}" alt="Customer Signature" />
<p class="footer mono">{{.Fingerprint}}</p>
</div>
{{- end}}
<hr />
<p class="footer">This {{.Noun}} was {{.Verb}} on {{.When}}.</p>
</div>
</body>
</html>
`))
