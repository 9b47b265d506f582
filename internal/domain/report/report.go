package report

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/dermacare/dermacare/internal/domain/identity"
	"github.com/dermacare/dermacare/internal/domain/scan"
)

// Renderer turns scan records into self-contained printable HTML documents.
// Rendering is a pure function of its inputs: no network, no storage.
type Renderer struct {
	scanTmpl    *template.Template
	historyTmpl *template.Template
	now         func() time.Time
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"percent": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"date":    func(t time.Time) string { return t.Format("02 Jan 2006") },
	}
	return &Renderer{
		scanTmpl:    template.Must(template.New("scan").Funcs(funcs).Parse(scanDocument)),
		historyTmpl: template.Must(template.New("history").Funcs(funcs).Parse(historyDocument)),
		now:         time.Now,
	}
}

type patientBox struct {
	DisplayName string
	Email       string
}

type scanDocumentData struct {
	Patient     patientBox
	Record      *scan.ScanRecord
	GeneratedAt time.Time
}

type historyDocumentData struct {
	Patient     patientBox
	Records     []*scan.ScanRecord
	GeneratedAt time.Time
}

func patientFromProfile(profile *identity.UserAccount) patientBox {
	if profile == nil {
		return patientBox{}
	}
	return patientBox{DisplayName: profile.DisplayName, Email: profile.Email}
}

// RenderScan produces the printable document for one analysis.
func (r *Renderer) RenderScan(record *scan.ScanRecord, profile *identity.UserAccount) (string, error) {
	var b strings.Builder
	err := r.scanTmpl.Execute(&b, scanDocumentData{
		Patient:     patientFromProfile(profile),
		Record:      record,
		GeneratedAt: r.now(),
	})
	if err != nil {
		return "", fmt.Errorf("rendering scan report: %w", err)
	}
	return b.String(), nil
}

// RenderHistory produces one card per record, newest first regardless of
// input order.
func (r *Renderer) RenderHistory(records []*scan.ScanRecord, profile *identity.UserAccount) (string, error) {
	ordered := make([]*scan.ScanRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	var b strings.Builder
	err := r.historyTmpl.Execute(&b, historyDocumentData{
		Patient:     patientFromProfile(profile),
		Records:     ordered,
		GeneratedAt: r.now(),
	})
	if err != nil {
		return "", fmt.Errorf("rendering history report: %w", err)
	}
	return b.String(), nil
}

const documentHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>DermaCare Report</title>
<style>
body { font-family: Georgia, serif; margin: 40px; color: #1a1a1a; }
header { border-bottom: 2px solid #2a6f6f; padding-bottom: 12px; margin-bottom: 24px; }
.patient { border: 1px solid #ccc; padding: 12px; margin-bottom: 24px; }
.card { border: 1px solid #ddd; padding: 16px; margin-bottom: 16px; page-break-inside: avoid; }
.confidence { font-weight: bold; }
img.scan { max-width: 320px; display: block; margin: 12px 0; }
footer { margin-top: 32px; font-size: 0.8em; color: #666; border-top: 1px solid #ccc; padding-top: 8px; }
</style>
</head>
<body>
<header>
<h1>DermaCare Skin Screening</h1>
<p>Generated {{date .GeneratedAt}}</p>
</header>
<div class="patient">
<strong>{{.Patient.DisplayName}}</strong><br>
{{.Patient.Email}}
</div>`

const documentFoot = `<footer>
This report was generated by an AI screening tool. It is not a medical
diagnosis. Please consult a qualified dermatologist for clinical advice.
</footer>
</body>
</html>`

const scanCard = `<div class="card">
{{if .ImageURL}}<img class="scan" src="{{.ImageURL}}" alt="scan image">{{end}}
<h2>{{.Disease}}</h2>
<p class="confidence">Confidence: {{percent .Confidence}}</p>
<p>{{.Description}}</p>
<p>Analyzed {{date .CreatedAt}}</p>
</div>`

const scanDocument = documentHead + `
{{with .Record}}` + scanCard + `{{end}}
` + documentFoot

const historyDocument = documentHead + `
<h2>Scan History</h2>
{{range .Records}}` + scanCard + `{{end}}
` + documentFoot
