package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestWithDefaultCommand(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{nil, []string{"update"}},
		{[]string{"-v"}, []string{"-v", "update"}},
		{[]string{"show", "-n", "3"}, []string{"show", "-n", "3"}},
		{[]string{"help"}, []string{"help"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, withDefaultCommand(tt.args)); diff != "" {
			t.Errorf("withDefaultCommand(%v) mismatch (-want +got):\n%s", tt.args, diff)
		}
	}
}

func TestUSD(t *testing.T) {
	tests := map[string]string{
		"1234.567": "$1,234.57",
		"100":      "$100.00",
		"0.004":    "$0.00",
	}
	for in, want := range tests {
		if got := usd(decimal.RequireFromString(in)); got != want {
			t.Errorf("usd(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestInvestPlan(t *testing.T) {
	tests := []struct {
		name    string
		cmd     investCmd
		wantErr bool
	}{
		{"ok", investCmd{from: "26/12/1964", monthly: 100}, false},
		{"ok with end", investCmd{from: "1/1/2000", to: "31/01/2025", monthly: 50}, false},
		{"missing from", investCmd{monthly: 100}, true},
		{"bad from", investCmd{from: "1964-12-26", monthly: 100}, true},
		{"end before start", investCmd{from: "01/01/2020", to: "01/01/2019", monthly: 100}, true},
		{"zero monthly", investCmd{from: "01/01/2020"}, true},
		{"retirement", investCmd{from: "01/01/2020", monthly: 100, birth: "26/12/1964", retireAge: 67}, false},
		{"retirement without birth", investCmd{from: "01/01/2020", monthly: 100, retireAge: 67}, true},
		{"bad birth", investCmd{from: "01/01/2020", monthly: 100, birth: "1964", retireAge: 67}, true},
		{"negative retire age", investCmd{from: "01/01/2020", monthly: 100, retireAge: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.plan()
			if (err != nil) != tt.wantErr {
				t.Errorf("plan() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
