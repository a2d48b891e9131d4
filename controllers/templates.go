package controllers

import "html/template"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))
var errorTmpl = template.Must(template.New("error").Parse(errorHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1,user-scalable=no">
<meta name="apple-mobile-web-app-capable" content="yes">
<meta name="apple-mobile-web-app-status-bar-style" content="black-translucent">
<meta property="og:title" content="CIFR Portfolio | {{.PnLSign}}{{.TotalPnL}} ({{.TotalPnLPct}})">
<meta property="og:description" content="CIFR {{.StockPrice}} | Portfolio {{.TotalValue}} | P&amp;L {{.PnLSign}}{{.TotalPnL}}">
<meta property="og:image" content="/profile.jpg">
<meta name="theme-color" content="#0a0e17">
<title>CIFR {{.PnLSign}}{{.TotalPnL}}</title>
<link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;600;700&display=swap" rel="stylesheet">
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{background:#0a0e17;color:#e2e8f0;font-family:'JetBrains Mono','SF Mono','Courier New',monospace;padding:20px;padding-top:max(20px,env(safe-area-inset-top));-webkit-font-smoothing:antialiased;min-height:100dvh}
.header{border-bottom:1px solid #1e293b;padding-bottom:16px;margin-bottom:20px}
.eyebrow{font-size:9px;letter-spacing:3px;color:#64748b;text-transform:uppercase;margin-bottom:4px}
.title{font-size:22px;font-weight:700;color:#f8fafc}
.title span{color:#64748b;font-weight:400;font-size:13px}
.stock-price{font-size:32px;font-weight:700;color:#f8fafc;margin-top:8px}
.ts{font-size:9px;color:#475569;margin-top:4px}
.grid2{display:grid;grid-template-columns:1fr 1fr;gap:10px;margin-bottom:20px}
.scard{background:#111827;border:1px solid #1e293b;border-radius:10px;padding:14px}
.scard .sl{font-size:9px;color:#64748b;text-transform:uppercase;letter-spacing:2px;margin-bottom:4px}
.scard .sv{font-size:20px;font-weight:700;color:#f8fafc}
.scard .sub{font-size:12px;margin-top:2px}
.card{background:#111827;border:1px solid #1e293b;border-radius:10px;padding:14px;margin-bottom:10px}
.card-head{display:flex;justify-content:space-between;align-items:center;margin-bottom:10px}
.card-title{font-size:13px;font-weight:700;color:#e2e8f0}
.dte{font-size:11px;font-weight:600;padding:2px 8px;border-radius:4px}
.row3{display:grid;grid-template-columns:repeat(3,1fr);gap:8px}
.stat .sl{font-size:8px;color:#64748b;text-transform:uppercase;letter-spacing:1.5px}
.stat .sv{font-size:13px;font-weight:600;color:#94a3b8;margin-top:2px}
.stat .sv.bright{color:#f8fafc}
.pnl-row{display:flex;justify-content:space-between;align-items:center;margin-top:10px;padding-top:10px;border-top:1px solid #1e293b}
.footer{font-size:10px;color:#475569;text-align:center;margin-top:16px;line-height:1.5}
.refresh{display:block;width:100%;background:#1e293b;border:1px solid #334155;color:#94a3b8;padding:14px;border-radius:8px;font-size:13px;font-family:inherit;cursor:pointer;margin-top:14px;text-align:center;text-decoration:none}
.refresh:active{background:#334155}
</style>
</head>
<body>

<div class="header">
  <div class="eyebrow">CIFR Options Portfolio</div>
  <div class="title">CIFR <span>Cipher Digital</span></div>
  <div class="stock-price">{{.StockPrice}}</div>
  <div class="ts">{{.Timestamp}} &middot; Nasdaq Delayed</div>
</div>

<div class="grid2">
  <div class="scard">
    <div class="sl">Portfolio Value</div>
    <div class="sv">{{.TotalValue}}</div>
  </div>
  <div class="scard" style="background:{{.PnLBG}};border-color:{{.PnLBorder}}">
    <div class="sl">Total P&amp;L</div>
    <div class="sv" style="color:{{.PnLColor}}">{{.PnLSign}}{{.TotalPnL}}</div>
    <div class="sub" style="color:{{.PnLColor}}">{{.TotalPnLPct}} on {{.CostBasis}} basis</div>
  </div>
</div>

{{range .Positions}}
<div class="card">
  <div class="card-head">
    <div class="card-title">{{.Label}}</div>
    <div class="dte" style="background:{{.DTEBG}};color:{{.DTEColor}}">{{.DTE}}d</div>
  </div>
  <div class="row3">
    <div class="stat"><div class="sl">Contracts</div><div class="sv bright">{{.Contracts}}</div></div>
    <div class="stat"><div class="sl">Bid / Ask</div><div class="sv">{{.Bid}} / {{.Ask}}</div></div>
    <div class="stat"><div class="sl">Mid</div><div class="sv bright">{{.Mid}}</div></div>
  </div>
  <div class="row3" style="margin-top:8px">
    <div class="stat"><div class="sl">Intrinsic</div><div class="sv">{{.Intrinsic}}</div></div>
    <div class="stat"><div class="sl">Time Value</div><div class="sv">{{.TimeValue}}</div></div>
    <div class="stat"><div class="sl">Position Value</div><div class="sv bright">{{.Value}}</div></div>
  </div>
  <div class="pnl-row">
    <div><span class="sl">P&amp;L</span><span style="color:{{.PnLColor}};font-weight:700;font-size:15px;margin-left:8px">{{.PnLSign}}{{.PnL}}</span></div>
    <div style="color:{{.PnLColor}};font-weight:700;font-size:15px">{{.PnLPct}}</div>
  </div>
</div>
{{end}}

<a class="refresh" href="/" onclick="this.textContent='Refreshing...'">&#10227; Refresh Quotes</a>

<div class="footer">
  {{.TotalContracts}} contracts &middot; ~{{.DollarPerMove}} per $1 move &middot; Data cached {{.TTLSeconds}}s<br>
  Cost basis: {{.CostBasis}} &middot; DTE: <span style="color:#fbbf24">yellow &lt;120d</span> &middot; <span style="color:#fca5a5">red &lt;60d</span>
</div>

</body>
</html>`

const errorHTML = `<html><body style="background:#0a0e17;color:#fca5a5;font-family:monospace;padding:40px">
<h2>Error fetching data</h2><p>{{.Error}}</p>
<a href="/" style="color:#94a3b8">Try again</a></body></html>`
