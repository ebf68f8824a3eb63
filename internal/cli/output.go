// Package cli renders calculator, rate and completion results for the terminal.
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Palette colours status labels. The zero value prints plain text.
type Palette struct {
	good func(...any) string
	warn func(...any) string
	bad  func(...any) string
}

// NewPalette returns a colouring palette, or a plain one when useColors is false.
func NewPalette(useColors bool) Palette {
	if !useColors {
		return Palette{good: fmt.Sprint, warn: fmt.Sprint, bad: fmt.Sprint}
	}
	return Palette{
		good: color.New(color.FgGreen).SprintFunc(),
		warn: color.New(color.FgYellow).SprintFunc(),
		bad:  color.New(color.FgRed).SprintFunc(),
	}
}

func (p Palette) paint(f func(...any) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// StatusLabel colours a completion tier.
func (p Palette) StatusLabel(status domain.CompletionStatus) string {
	switch status {
	case domain.CompletionComplete:
		return p.paint(p.good, string(status))
	case domain.CompletionReady:
		return p.paint(p.warn, string(status))
	default:
		return p.paint(p.bad, string(status))
	}
}

// WriteCalculation renders a calculation session as a two-column table
// followed by the conversion line and any input warnings.
func WriteCalculation(w io.Writer, resp *dto.CalculateResponse, p Palette) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Item", "Amount (" + resp.OutputCurrency + ")"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Gross income", resp.Display.GrossIncome},
		{"Platform fee", resp.Display.FeeAmount},
		{"Tax", resp.Display.TaxAmount},
		{"Take-home pay", resp.Display.NetPay},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, resp.ExchangeLabel); err != nil {
		return err
	}
	if err := writeRateStatus(w, resp.Rates, p); err != nil {
		return err
	}
	if !resp.Result.IsValid {
		if _, err := fmt.Fprintln(w, p.paint(p.bad, "Enter a value for every field to see results.")); err != nil {
			return err
		}
	}
	for _, warning := range resp.Warnings {
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", p.paint(p.warn, "warning"), warning.Field, warning.Message); err != nil {
			return err
		}
	}
	return nil
}

// WriteCompletion renders the completion checklist with the overall tier.
func WriteCompletion(w io.Writer, resp *dto.ProfileCompletionResponse, p Palette) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Weight", "Status", "Hint"})

	var data [][]string
	for _, r := range resp.Requirements {
		state := p.paint(p.good, "done")
		hint := ""
		if r.IsMissing {
			state = p.paint(p.bad, "missing")
			hint = r.Description
		}
		data = append(data, []string{r.Label, fmt.Sprintf("%d%%", r.Weight), state, hint})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Profile completion: %d%% [%s] %s\n",
		resp.Percentage, p.StatusLabel(resp.Status), resp.StatusMessage); err != nil {
		return err
	}
	if resp.ReportedCompletion != nil && resp.Drift {
		if _, err := fmt.Fprintf(w, "%s backend reports %d%%, computed %d%%\n",
			p.paint(p.warn, "drift"), *resp.ReportedCompletion, resp.Percentage); err != nil {
			return err
		}
	}
	return nil
}

// WriteRates renders the rate snapshot sorted by currency code.
func WriteRates(w io.Writer, resp dto.ExchangeRatesResponse, p Palette) error {
	codes := make([]string, 0, len(resp.Rates))
	for code := range resp.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Code", "Name", "Symbol", "Per 1 " + resp.Base})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, code := range codes {
		name, symbol := "", ""
		if cc, ok := domain.ParseCurrencyCode(code); ok {
			if c, ok := domain.LookupCurrency(cc); ok {
				name, symbol = c.Name, c.Symbol
			}
		}
		data = append(data, []string{code, name, symbol, resp.Rates[code].StringFixed(4)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeRateStatus(w, resp.RateStatus, p)
}

func writeRateStatus(w io.Writer, status dto.RateStatus, p Palette) error {
	var line string
	switch {
	case status.Error != "":
		line = p.paint(p.warn, status.Error)
	case status.LastUpdated != nil:
		line = "Live rates updated " + status.LastUpdated.Format("2006-01-02 15:04:05 MST")
	default:
		line = "Using built-in rates"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
