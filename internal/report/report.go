// Package report renders the after-action PDF report.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/akorchagin/procsim/internal/domain"
	"github.com/go-pdf/fpdf"
)

// Render produces the after-action report as PDF bytes. The layout is a pure
// function of its inputs: a header with the scenario title, the scorecard
// row, the sanitized feedback text, then the full role-labelled transcript.
func Render(scenarioTitle, brief string, card domain.Scorecard, transcript []domain.Turn) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Fixed metadata and no stream compression keep the output byte-stable
	// for identical inputs.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetCompression(false)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 10, "Negotiation AAR Report", "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 10, "Scenario: "+sanitize(scenarioTitle), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "1. Briefing", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 5, textLine(brief), "", "", false)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "2. Scorecard", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(60, 10, fmt.Sprintf("Total: %d/%d", card.TotalScore, domain.MaxTotalScore), "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 10, fmt.Sprintf("Commercial: %d/%d", card.Commercial, domain.MaxCommercialScore), "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 10, fmt.Sprintf("Strategic: %d/%d", card.Strategy, domain.MaxStrategyScore), "1", 1, "", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "3. Feedback", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, textLine(card.Feedback), "", "", false)
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "4. Transcript", "", 1, "", false, 0, "")
	pdf.SetFont("Courier", "", 9)
	for _, turn := range transcript {
		label := strings.ToUpper(string(turn.Role))
		pdf.MultiCell(0, 5, label+": "+sanitize(turn.Content), "", "", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// textLine sanitizes a free-text block, degrading to an empty line when
// nothing representable survives. A blank block beats a failed render.
func textLine(text string) string {
	s := strings.TrimSpace(sanitize(text))
	if s == "" {
		return " "
	}
	return s
}

// sanitize drops characters outside the latin-1 range the core PDF fonts can
// encode. Newlines and tabs are kept; other control characters are dropped.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 0x20:
			// skip control characters
		case r < 0x100:
			b.WriteRune(r)
		}
	}
	return b.String()
}
