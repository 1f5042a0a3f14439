package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// printer renders command output with styles resolved for the target writer,
// so piping strips colors.
type printer struct {
	out   io.Writer
	title lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style
	bad   lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:   out,
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Faint(true).Width(14),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.out, p.title.Render(s))
}

func (p *printer) field(name string, value any) {
	fmt.Fprintf(p.out, "%s %v\n", p.label.Render(name), value)
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.out, t.Render())
}

func (p *printer) status(s models.SyncStatus) string {
	if s == models.StatusCompleted {
		return p.ok.Render(string(s))
	}
	return p.bad.Render(string(s))
}

func (p *printer) syncResult(r models.SyncResult) {
	p.heading("Sync pass")
	p.field("status", p.status(r.Status))
	if !r.StartedAt.IsZero() {
		p.field("started", formatTime(r.StartedAt))
		p.field("duration", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	}
	if len(r.PerKind) == 0 {
		return
	}

	rows := make([][]string, 0, len(r.PerKind))
	for _, kind := range models.SyncOrder {
		kr, ok := r.PerKind[kind]
		if !ok {
			continue
		}
		outcome := "ok"
		if kr.Err != nil {
			outcome = kr.Err.Error()
		}
		rows = append(rows, []string{kind.String(), fmt.Sprint(kr.Synced), outcome})
	}
	p.table([]string{"kind", "synced", "result"}, rows)
}

func (p *printer) bootstrapResult(r models.BootstrapResult) {
	p.heading("Bootstrap")
	p.field("downloaded", r.Total())

	kinds := make([]string, 0, len(r.Downloaded))
	for kind := range r.Downloaded {
		kinds = append(kinds, kind.String())
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		p.field("  "+kind, r.Downloaded[models.EntityKind(kind)])
	}

	if len(r.Skipped) > 0 {
		skipped := make([]string, 0, len(r.Skipped))
		for _, kind := range r.Skipped {
			skipped = append(skipped, kind.String())
		}
		p.field("skipped", strings.Join(skipped, ", "))
	}
}

func (p *printer) history(records []models.SyncPassRecord) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, "no sync passes recorded")
		return
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		counts := make([]string, 0, len(rec.Counts))
		for _, kc := range rec.NonZeroCounts() {
			counts = append(counts, fmt.Sprintf("%s=%d", kc.Kind, kc.Count))
		}
		rows = append(rows, []string{formatTime(rec.OccurredAt), string(rec.Source), fmt.Sprint(rec.Total()), strings.Join(counts, " ")})
	}
	p.table([]string{"occurred", "source", "total", "counts"}, rows)
}

func (p *printer) operations(ops []models.MutationOperation) {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		lastError := ""
		if op.LastError != nil {
			lastError = *op.LastError
		}
		rows = append(rows, []string{
			fmt.Sprint(op.ID),
			op.Kind.String(),
			string(op.Type),
			op.EntityID,
			operationSummary(op),
			fmt.Sprint(op.RetryCount),
			lastError,
		})
	}
	p.table([]string{"id", "kind", "op", "entity", "summary", "retries", "last error"}, rows)
}

// operationSummary describes the queued entity in a few words. Payloads that
// do not decode into their kind are left blank.
func operationSummary(op models.MutationOperation) string {
	if op.IsDelete() {
		return ""
	}

	switch op.Kind {
	case models.KindCategory:
		if c, err := models.DecodePayload[models.Category](op); err == nil {
			return c.Name
		}
	case models.KindItem:
		if item, err := models.DecodePayload[models.Item](op); err == nil {
			return fmt.Sprintf("%s @ %d", item.Name, item.Price)
		}
	case models.KindBill:
		if bill, err := models.DecodePayload[models.Bill](op); err == nil {
			return strings.TrimSpace(fmt.Sprintf("total %d %s", bill.Total, bill.Currency))
		}
	}
	return ""
}

func (p *printer) rows(rows []models.EntityRow) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "no rows")
		return
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		synced := "pending"
		if row.SyncedAt != nil {
			synced = formatTime(*row.SyncedAt)
		}
		out = append(out, []string{row.EntityID, synced, string(row.Payload)})
	}
	p.table([]string{"id", "synced", "payload"}, out)
}

func formatTime(t time.Time) string {
	return t.Local().Format(time.DateTime)
}
