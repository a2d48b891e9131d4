package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-monitor/interfaces"
	"portfolio-monitor/models"
)

// DashboardController serves the HTML dashboard and the raw JSON endpoint,
// both backed by the same cached aggregate.
type DashboardController struct {
	portfolio interfaces.PortfolioProvider
	logger    *logrus.Logger
}

// NewDashboardController creates a new dashboard controller.
func NewDashboardController(portfolio interfaces.PortfolioProvider) *DashboardController {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &DashboardController{
		portfolio: portfolio,
		logger:    logger,
	}
}

// HandleDashboard renders the portfolio page.
// GET /
func (dc *DashboardController) HandleDashboard(c *gin.Context) {
	aggregate, err := dc.portfolio.GetAggregate(c.Request.Context())
	if err != nil {
		dc.logger.WithError(err).Error("Failed to gather portfolio data")
		var buf bytes.Buffer
		if tmplErr := errorTmpl.Execute(&buf, gin.H{"Error": err.Error()}); tmplErr != nil {
			c.String(http.StatusInternalServerError, "error rendering page")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
		return
	}

	view := dc.buildView(aggregate)

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		dc.logger.WithError(err).Error("Failed to render dashboard")
		c.String(http.StatusInternalServerError, "error rendering page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// HandleAPI returns the aggregate as JSON.
// GET /api
func (dc *DashboardController) HandleAPI(c *gin.Context) {
	aggregate, err := dc.portfolio.GetAggregate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, aggregate)
}

// dashboardView is the fully formatted page model; all money/percent fields
// are pre-rendered strings with absent values shown as a dash.
type dashboardView struct {
	StockPrice  string
	Timestamp   string
	TotalValue  string
	TotalPnL    string
	TotalPnLPct string
	CostBasis   string
	PnLSign     string
	PnLColor    string
	PnLBG       string
	PnLBorder   string

	TotalContracts int
	DollarPerMove  string
	TTLSeconds     int

	Positions []positionView
}

type positionView struct {
	Label     string
	DTE       int
	DTEBG     string
	DTEColor  string
	Contracts int
	Bid       string
	Ask       string
	Mid       string
	Intrinsic string
	TimeValue string
	Value     string
	PnL       string
	PnLPct    string
	PnLColor  string
	PnLSign   string
}

func (dc *DashboardController) buildView(a *models.PortfolioAggregate) dashboardView {
	basis := dc.portfolio.TotalCostBasis()

	view := dashboardView{
		StockPrice:  optUSD2(a.StockPrice),
		Timestamp:   a.Timestamp,
		TotalValue:  fmtUSD(a.TotalValue),
		TotalPnL:    fmtUSD(a.TotalPnL),
		TotalPnLPct: fmtPct(a.TotalPnLPct),
		CostBasis:   fmtUSD(basis),
		PnLSign:     "",
		PnLColor:    "#22c55e",
		PnLBG:       "#0a1f0a",
		PnLBorder:   "#14532d",
		TTLSeconds:  int(dc.portfolio.TTL().Seconds()),
	}
	if a.TotalPnL >= 0 {
		view.PnLSign = "+"
	} else {
		view.PnLColor = "#ef4444"
		view.PnLBG = "#1f0a0a"
		view.PnLBorder = "#7f1d1d"
	}

	for _, p := range a.Positions {
		pv := positionView{
			Label:     p.Label,
			DTE:       p.DTE,
			Contracts: p.Contracts,
			Bid:       optUSD2(p.Bid),
			Ask:       optUSD2(p.Ask),
			Mid:       optUSD2(p.Mid),
			Intrinsic: optUSD2(p.Intrinsic),
			TimeValue: optUSD2(p.TimeValue),
			Value:     optUSD(p.Value),
			PnL:       optUSD(p.PnL),
			PnLPct:    optPct(p.PnLPct),
		}

		switch {
		case p.DTE < 60:
			pv.DTEBG, pv.DTEColor = "#7f1d1d33", "#fca5a5"
		case p.DTE < 120:
			pv.DTEBG, pv.DTEColor = "#78350f33", "#fbbf24"
		default:
			pv.DTEBG, pv.DTEColor = "#1e293b", "#94a3b8"
		}

		if p.PnL == nil || *p.PnL >= 0 {
			pv.PnLColor, pv.PnLSign = "#22c55e", "+"
		} else {
			pv.PnLColor = "#ef4444"
		}

		view.TotalContracts += p.Contracts
		view.Positions = append(view.Positions, pv)
	}

	// 100 shares per contract, so each $1 move on the underlying moves the
	// portfolio by 100x the contract count.
	view.DollarPerMove = fmtUSD(float64(view.TotalContracts) * 100)

	return view
}

// fmtUSD renders a dollar amount with thousands separators and no cents.
func fmtUSD(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := addCommas(fmt.Sprintf("%.0f", n))
	if neg {
		return "$-" + s
	}
	return "$" + s
}

// fmtUSD2 renders a dollar amount with cents.
func fmtUSD2(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%.2f", n)
	dot := strings.IndexByte(s, '.')
	s = addCommas(s[:dot]) + s[dot:]
	if neg {
		return "$-" + s
	}
	return "$" + s
}

// fmtPct renders a ratio as a signed percentage.
func fmtPct(n float64) string {
	sign := ""
	if n >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, n*100)
}

func optUSD(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmtUSD(*p)
}

func optUSD2(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmtUSD2(*p)
}

func optPct(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmtPct(*p)
}

func addCommas(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
