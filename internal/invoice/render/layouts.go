package render

// The five invoice layouts. Each is a complete standalone HTML document;
// the browser's print dialog does the rest.

const layoutBasic = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
body { font-family: {{font .Style.FontFamily}}, sans-serif; margin: 24px; color: #222; }
.header { text-align: center; border-bottom: 2px solid #222; padding-bottom: 12px; }
.header h1 { margin: 0; font-size: 22px; }
.meta { margin-top: 16px; display: flex; justify-content: space-between; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { border: 1px solid #999; padding: 6px 8px; font-size: 13px; text-align: left; }
th { background: #f0f0f0; }
td.num, th.num { text-align: right; }
.totals { margin-top: 12px; width: 40%; margin-left: auto; }
.totals td { border: none; }
.words { margin-top: 12px; font-size: 13px; font-style: italic; }
.bank { margin-top: 20px; font-size: 12px; }
{{if .Watermark}}.watermark { position: fixed; top: 40%; left: 20%; font-size: 90px; color: rgba(0,128,0,0.12); transform: rotate(-25deg); font-weight: bold; }{{end}}
@media print { body { margin: 0; } }
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="header">
  <h1>{{.Company.CompanyName}}</h1>
  {{if .Company.Tagline}}<div>{{.Company.Tagline}}</div>{{end}}
  <div>{{.Company.Address}}</div>
  {{if .Company.Phone}}<div>Phone: {{.Company.Phone}}</div>{{end}}
</div>
<div class="meta">
  <div>
    <strong>Bill To:</strong><br>
    {{.BillToName}}<br>
    {{if .BillToAddress}}{{.BillToAddress}}<br>{{end}}
    {{if .BillToPhone}}{{.BillToPhone}}{{end}}
  </div>
  <div>
    <strong>Invoice No:</strong> {{.InvoiceNumber}}<br>
    <strong>Order No:</strong> {{.OrderNumber}}<br>
    <strong>Date:</strong> {{.IssueDate}}
  </div>
</div>
<table>
  <tr><th>#</th><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
  {{range $i, $l := .Lines}}
  <tr><td>{{inc $i}}</td><td>{{$l.Name}}</td><td class="num">{{$l.Quantity}}</td><td class="num">{{$l.UnitPrice}}</td><td class="num">{{$l.LineTotal}}</td></tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
  <tr><td>GST</td><td class="num">{{.GSTTotal}}</td></tr>
  {{if .HasShipping}}<tr><td>Shipping</td><td class="num">{{.Shipping}}</td></tr>{{end}}
  {{if .HasDiscount}}<tr><td>Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
  <tr><td><strong>Grand Total</strong></td><td class="num"><strong>{{.GrandTotal}}</strong></td></tr>
</table>
<div class="words">Amount in words: {{.AmountInWords}}</div>
<div class="bank">
  <strong>Payment Details</strong><br>
  Bank: {{.Company.Bank.BankName}} | A/C: {{.Company.Bank.AccountNumber}} | IFSC: {{.Company.Bank.IFSC}}
  {{if .Company.Bank.UPIID}}<br>UPI: {{.Company.Bank.UPIID}}{{end}}
</div>
{{if .Style.ShowFooter}}<div class="bank">{{.Style.FooterNote}}</div>{{end}}
</body>
</html>`

const layoutTax = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tax Invoice {{.InvoiceNumber}}</title>
<style>
body { font-family: {{font .Style.FontFamily}}, sans-serif; margin: 24px; color: #1b1b1b; }
.title { text-align: center; font-size: 15px; font-weight: bold; letter-spacing: 2px; margin-bottom: 8px; }
.header { border: 1px solid #333; padding: 10px; }
.header h1 { margin: 0; font-size: 20px; }
.gstin { font-size: 12px; margin-top: 4px; }
.blocks { display: flex; justify-content: space-between; border: 1px solid #333; border-top: none; padding: 10px; font-size: 13px; }
table.items { width: 100%; border-collapse: collapse; margin-top: 12px; }
table.items th, table.items td { border: 1px solid #333; padding: 5px 7px; font-size: 12px; }
table.items th { background: #e8e8e8; }
td.num, th.num { text-align: right; }
.totals { width: 45%; margin-left: auto; margin-top: 10px; font-size: 13px; }
.totals td { padding: 3px 7px; }
.words { border: 1px solid #333; padding: 8px; margin-top: 10px; font-size: 12px; }
.bank { margin-top: 14px; font-size: 12px; }
{{if .Watermark}}.watermark { position: fixed; top: 38%; left: 18%; font-size: 100px; color: rgba(0,100,0,0.1); transform: rotate(-25deg); font-weight: bold; }{{end}}
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="title">TAX INVOICE</div>
<div class="header">
  <h1>{{.Company.CompanyName}}</h1>
  <div>{{.Company.Address}}</div>
  {{if .Company.GSTIN}}<div class="gstin">GSTIN: {{.Company.GSTIN}}</div>{{end}}
</div>
<div class="blocks">
  <div>
    <strong>Bill To</strong><br>
    {{.BillToName}}<br>
    {{if .BillToAddress}}{{.BillToAddress}}<br>{{end}}
    {{if .BillToGSTIN}}GSTIN: {{.BillToGSTIN}}{{end}}
  </div>
  <div>
    Invoice No: {{.InvoiceNumber}}<br>
    Date: {{.IssueDate}}<br>
    Order Ref: {{.OrderNumber}}
  </div>
</div>
<table class="items">
  <tr><th>#</th><th>Description</th><th class="num">Qty</th><th class="num">Taxable Value</th><th class="num">GST %</th><th class="num">GST Amt</th><th class="num">Total</th></tr>
  {{range $i, $l := .Lines}}
  <tr><td>{{inc $i}}</td><td>{{$l.Name}}</td><td class="num">{{$l.Quantity}}</td><td class="num">{{$l.LineSubtotal}}</td><td class="num">{{$l.GSTRate}}%</td><td class="num">{{$l.GSTAmount}}</td><td class="num">{{$l.LineTotal}}</td></tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Taxable Value</td><td class="num">{{.Subtotal}}</td></tr>
  <tr><td>CGST</td><td class="num">{{.CGST}}</td></tr>
  <tr><td>SGST</td><td class="num">{{.SGST}}</td></tr>
  {{if .HasShipping}}<tr><td>Shipping</td><td class="num">{{.Shipping}}</td></tr>{{end}}
  {{if .HasDiscount}}<tr><td>Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
  <tr><td><strong>Invoice Total</strong></td><td class="num"><strong>{{.GrandTotal}}</strong></td></tr>
</table>
<div class="words"><strong>Amount Chargeable (in words):</strong> {{.AmountInWords}}</div>
<div class="bank">
  <strong>Bank Details:</strong> {{.Company.Bank.BankName}}, A/C {{.Company.Bank.AccountNumber}}, IFSC {{.Company.Bank.IFSC}}
  {{if .Company.Bank.UPIID}}| UPI: {{.Company.Bank.UPIID}}{{end}}
</div>
{{if .Style.ShowSignature}}<div style="margin-top:40px;text-align:right;font-size:12px;">For {{.Company.CompanyName}}<br><br><br>Authorised Signatory</div>{{end}}
</body>
</html>`

const layoutDetailed = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
body { font-family: {{font .Style.FontFamily}}, sans-serif; margin: 24px; color: #222; }
.top { display: flex; justify-content: space-between; align-items: flex-start; }
.top h1 { margin: 0; font-size: 24px; color: {{accent .Style.AccentColor}}; }
.contact { font-size: 12px; text-align: right; }
.section { margin-top: 18px; }
.section h3 { font-size: 13px; text-transform: uppercase; color: #666; margin: 0 0 6px; }
table { width: 100%; border-collapse: collapse; }
th { background: {{accent .Style.AccentColor}}; color: #fff; padding: 7px 8px; font-size: 12px; text-align: left; }
td { padding: 6px 8px; font-size: 13px; border-bottom: 1px solid #ddd; }
td.num, th.num { text-align: right; }
.totals { width: 45%; margin-left: auto; margin-top: 10px; }
.totals td { border: none; padding: 3px 8px; }
.grand { border-top: 2px solid {{accent .Style.AccentColor}}; font-weight: bold; }
.status { display: inline-block; padding: 3px 10px; border-radius: 3px; font-size: 12px; color: #fff; background: {{if .Paid}}#2e7d32{{else}}#c62828{{end}}; }
.words { margin-top: 10px; font-size: 12px; font-style: italic; }
{{if .Watermark}}.watermark { position: fixed; top: 40%; left: 22%; font-size: 90px; color: rgba(46,125,50,0.12); transform: rotate(-25deg); font-weight: bold; }{{end}}
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="top">
  <div>
    <h1>{{.Company.CompanyName}}</h1>
    {{if .Company.Tagline}}<div>{{.Company.Tagline}}</div>{{end}}
  </div>
  <div class="contact">
    {{.Company.Address}}<br>
    {{if .Company.Phone}}{{.Company.Phone}}<br>{{end}}
    {{if .Company.Email}}{{.Company.Email}}{{end}}
  </div>
</div>
<div class="section">
  <h3>Invoice {{.InvoiceNumber}} &middot; {{.IssueDate}} &middot; <span class="status">{{.PaymentStatus}}</span></h3>
  <strong>Billed To:</strong> {{.BillToName}}{{if .BillToAddress}}, {{.BillToAddress}}{{end}}
</div>
<div class="section">
  <table>
    <tr><th>Item</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Taxable</th><th class="num">GST %</th><th class="num">GST</th><th class="num">Total</th></tr>
    {{range .Lines}}
    <tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineSubtotal}}</td><td class="num">{{.GSTRate}}%</td><td class="num">{{.GSTAmount}}</td><td class="num">{{.LineTotal}}</td></tr>
    {{end}}
  </table>
</div>
<table class="totals">
  <tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
  <tr><td>Total GST</td><td class="num">{{.GSTTotal}}</td></tr>
  {{if .HasShipping}}<tr><td>Shipping</td><td class="num">{{.Shipping}}</td></tr>{{end}}
  {{if .HasDiscount}}<tr><td>Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
  <tr class="grand"><td>Grand Total</td><td class="num">{{.GrandTotal}}</td></tr>
  <tr><td>Paid</td><td class="num">{{.PaidAmount}}</td></tr>
  <tr><td>Balance Due</td><td class="num">{{.Balance}}</td></tr>
</table>
<div class="words">Amount in words: {{.AmountInWords}}</div>
<div class="section" style="font-size:12px;">
  <strong>Payment:</strong> {{.Company.Bank.BankName}} | {{.Company.Bank.AccountName}} | A/C {{.Company.Bank.AccountNumber}} | IFSC {{.Company.Bank.IFSC}}
</div>
{{if .Style.ShowFooter}}<div class="section" style="font-size:12px;color:#666;">{{.Style.FooterNote}}</div>{{end}}
</body>
</html>`

const layoutProfessional = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
body { font-family: {{font .Style.FontFamily}}, sans-serif; margin: 0; color: #2b2b2b; }
.band { background: {{accent .Style.AccentColor}}; color: #fff; padding: 28px 36px; }
.band h1 { margin: 0; font-size: 26px; letter-spacing: 1px; }
.band .tagline { opacity: 0.85; font-size: 13px; margin-top: 2px; }
.wrap { padding: 24px 36px; }
.cols { display: flex; justify-content: space-between; font-size: 13px; }
.label { text-transform: uppercase; font-size: 11px; color: #888; letter-spacing: 1px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th { border-bottom: 2px solid {{accent .Style.AccentColor}}; padding: 8px; font-size: 12px; text-align: left; text-transform: uppercase; letter-spacing: 1px; }
td { padding: 8px; font-size: 13px; border-bottom: 1px solid #eee; }
td.num, th.num { text-align: right; }
.totals { width: 40%; margin-left: auto; margin-top: 14px; }
.totals td { border: none; padding: 4px 8px; }
.grand td { background: {{accent .Style.AccentColor}}; color: #fff; font-weight: bold; }
.words { margin-top: 14px; font-size: 12px; font-style: italic; }
.foot { margin-top: 26px; font-size: 12px; color: #555; }
{{if .Watermark}}.watermark { position: fixed; top: 42%; left: 24%; font-size: 84px; color: rgba(0,0,0,0.07); transform: rotate(-25deg); font-weight: bold; }{{end}}
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="band">
  <h1>{{.Company.CompanyName}}</h1>
  {{if .Company.Tagline}}<div class="tagline">{{.Company.Tagline}}</div>{{end}}
</div>
<div class="wrap">
  <div class="cols">
    <div>
      <div class="label">Billed To</div>
      {{.BillToName}}<br>
      {{if .BillToAddress}}{{.BillToAddress}}<br>{{end}}
      {{if .BillToPhone}}{{.BillToPhone}}{{end}}
    </div>
    <div>
      <div class="label">Invoice</div>
      {{.InvoiceNumber}}<br>
      {{.IssueDate}}<br>
      Order {{.OrderNumber}}
    </div>
    <div>
      <div class="label">From</div>
      {{.Company.Address}}<br>
      {{if .Company.GSTIN}}GSTIN {{.Company.GSTIN}}{{end}}
    </div>
  </div>
  <table>
    <tr><th>Description</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
    {{range .Lines}}
    <tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
    {{end}}
  </table>
  <table class="totals">
    <tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
    <tr><td>GST</td><td class="num">{{.GSTTotal}}</td></tr>
    {{if .HasShipping}}<tr><td>Shipping</td><td class="num">{{.Shipping}}</td></tr>{{end}}
    {{if .HasDiscount}}<tr><td>Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
    <tr class="grand"><td>Total</td><td class="num">{{.GrandTotal}}</td></tr>
  </table>
  <div class="words">{{.AmountInWords}}</div>
  <div class="foot">
    {{.Company.Bank.BankName}} &middot; A/C {{.Company.Bank.AccountNumber}} &middot; IFSC {{.Company.Bank.IFSC}}
    {{if .Company.Bank.UPIID}}&middot; UPI {{.Company.Bank.UPIID}}{{end}}
    {{if .Style.ShowFooter}}<br>{{.Style.FooterNote}}{{end}}
  </div>
</div>
</body>
</html>`

const layoutA4Professional = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
@page { size: A4 {{if eq .Style.Orientation "landscape"}}landscape{{else}}portrait{{end}}; margin: 18mm; }
body { font-family: {{font .Style.FontFamily}}, sans-serif; color: #222; max-width: 190mm; margin: auto; }
.head { display: flex; justify-content: space-between; border-bottom: 3px solid {{accent .Style.AccentColor}}; padding-bottom: 10px; }
.head h1 { margin: 0; font-size: 24px; color: {{accent .Style.AccentColor}}; }
.head .right { text-align: right; font-size: 12px; }
.doc-title { text-align: center; font-size: 14px; font-weight: bold; letter-spacing: 3px; margin: 14px 0; }
.parties { display: flex; justify-content: space-between; font-size: 13px; margin-bottom: 12px; }
.parties .label { font-size: 11px; text-transform: uppercase; color: #777; }
table.items { width: 100%; border-collapse: collapse; }
table.items th { background: {{accent .Style.AccentColor}}; color: #fff; padding: 6px 8px; font-size: 12px; text-align: left; }
table.items td { padding: 6px 8px; font-size: 12px; border-bottom: 1px solid #ddd; }
td.num, th.num { text-align: right; }
.totals { width: 42%; margin-left: auto; margin-top: 10px; font-size: 13px; }
.totals td { padding: 3px 8px; }
.grand { font-weight: bold; border-top: 2px solid {{accent .Style.AccentColor}}; }
.words { border: 1px solid #ccc; padding: 8px; margin-top: 12px; font-size: 12px; }
.bank { margin-top: 14px; font-size: 12px; }
.sig { margin-top: 36px; display: flex; justify-content: space-between; font-size: 12px; }
{{if .Watermark}}.watermark { position: fixed; top: 40%; left: 20%; font-size: 96px; color: rgba(0,120,0,0.1); transform: rotate(-25deg); font-weight: bold; }{{end}}
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="head">
  <div>
    <h1>{{.Company.CompanyName}}</h1>
    {{if .Company.Tagline}}<div style="font-size:12px;">{{.Company.Tagline}}</div>{{end}}
  </div>
  <div class="right">
    {{.Company.Address}}<br>
    {{if .Company.Phone}}Ph: {{.Company.Phone}}<br>{{end}}
    {{if .Company.Email}}{{.Company.Email}}<br>{{end}}
    {{if .Company.GSTIN}}GSTIN: {{.Company.GSTIN}}{{end}}
  </div>
</div>
<div class="doc-title">TAX INVOICE</div>
<div class="parties">
  <div>
    <div class="label">Bill To</div>
    <strong>{{.BillToName}}</strong><br>
    {{if .BillToAddress}}{{.BillToAddress}}<br>{{end}}
    {{if .BillToGSTIN}}GSTIN: {{.BillToGSTIN}}{{end}}
  </div>
  <div style="text-align:right;">
    <div class="label">Invoice Details</div>
    No: {{.InvoiceNumber}}<br>
    Date: {{.IssueDate}}<br>
    Order: {{.OrderNumber}}
  </div>
</div>
<table class="items">
  <tr><th>#</th><th>Description</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Taxable</th><th class="num">GST %</th><th class="num">GST</th><th class="num">Amount</th></tr>
  {{range $i, $l := .Lines}}
  <tr><td>{{inc $i}}</td><td>{{$l.Name}}</td><td class="num">{{$l.Quantity}}</td><td class="num">{{$l.UnitPrice}}</td><td class="num">{{$l.LineSubtotal}}</td><td class="num">{{$l.GSTRate}}%</td><td class="num">{{$l.GSTAmount}}</td><td class="num">{{$l.LineTotal}}</td></tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Taxable Value</td><td class="num">{{.Subtotal}}</td></tr>
  <tr><td>CGST</td><td class="num">{{.CGST}}</td></tr>
  <tr><td>SGST</td><td class="num">{{.SGST}}</td></tr>
  {{if .HasShipping}}<tr><td>Shipping</td><td class="num">{{.Shipping}}</td></tr>{{end}}
  {{if .HasDiscount}}<tr><td>Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
  <tr class="grand"><td>Grand Total</td><td class="num">{{.GrandTotal}}</td></tr>
</table>
<div class="words"><strong>In Words:</strong> {{.AmountInWords}}</div>
<div class="bank">
  <strong>Bank:</strong> {{.Company.Bank.BankName}} &middot; {{.Company.Bank.AccountName}} &middot; A/C {{.Company.Bank.AccountNumber}} &middot; IFSC {{.Company.Bank.IFSC}}
  {{if .Company.Bank.UPIID}}&middot; UPI {{.Company.Bank.UPIID}}{{end}}
</div>
<div class="sig">
  <div>{{if .Style.ShowFooter}}{{.Style.FooterNote}}{{end}}</div>
  {{if .Style.ShowSignature}}<div style="text-align:right;">For {{.Company.CompanyName}}<br><br><br>Authorised Signatory</div>{{end}}
</div>
</body>
</html>`
