package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-monitor/models"
)

func TestPositionsAreValid(t *testing.T) {
	require.NoError(t, Validate(Positions()))
}

func TestValidateRejectsBadSpecs(t *testing.T) {
	good := models.PositionSpec{
		Label: "Nov 20 '26 $13 Call", Strike: "13.00", StrikeNum: 13,
		Expiry: "2026-11-20", Contracts: 220, CostPer: 5.007,
		FromDate: "2026-11-20", ToDate: "2026-11-20",
	}

	cases := []struct {
		name   string
		mutate func(*models.PositionSpec)
	}{
		{"zero contracts", func(s *models.PositionSpec) { s.Contracts = 0 }},
		{"negative contracts", func(s *models.PositionSpec) { s.Contracts = -1 }},
		{"zero cost", func(s *models.PositionSpec) { s.CostPer = 0 }},
		{"malformed expiry", func(s *models.PositionSpec) { s.Expiry = "11/20/2026" }},
		{"empty expiry", func(s *models.PositionSpec) { s.Expiry = "" }},
		{"malformed fromdate", func(s *models.PositionSpec) { s.FromDate = "soon" }},
		{"malformed todate", func(s *models.PositionSpec) { s.ToDate = "2026-13-40" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := good
			tc.mutate(&spec)
			require.Error(t, Validate([]models.PositionSpec{spec}))
		})
	}
}
