package usecase

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"agency_crm/internal/domain/entities"
)

// RelatedData is the entity bundle a contract's templates are expanded
// against. Any slice may be nil or empty; the compiler never fails on
// missing data.

type RelatedData struct {
	Products           []entities.Product
	SelectedMilestones []entities.Milestone
	Payments           []entities.Payment
}

var (
	eachBlockRe     = regexp.MustCompile(`(?s)\{\{#each\s+([A-Za-z0-9_]+)\}\}(.*?)\{\{/each\}\}`)
	numericPrefixRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// CompileContractContent renders the final contract document from ordered
// part templates, the flat contract record and the related-entity bundle.
//
// Three passes per part, in this exact order:
//  1. each-block expansion (only selectedMilestones and products are
//     recognized; any other block name stays literal)
//  2. {{payments}} table injection
//  3. contract field substitution
//
// Parts with is_included=false must be filtered out before this call; the
// compiler still sorts by order_index so section ordering never depends on
// fetch order. No parts yields an empty string.
func CompileContractContent(record map[string]string, parts []entities.ContractPartView, related RelatedData) string {
	if len(parts) == 0 {
		return ""
	}

	ordered := make([]entities.ContractPartView, len(parts))
	copy(ordered, parts)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].OrderIndex < ordered[j].OrderIndex })

	sections := make([]string, 0, len(ordered))
	for _, part := range ordered {
		content := part.Content
		content = expandEachBlocks(content, related)
		content = strings.ReplaceAll(content, "{{payments}}", renderPaymentsTable(related.Payments))
		content = substituteRecordFields(content, record)

		var b strings.Builder
		b.WriteString(`<div class="contract-section">`)
		b.WriteString("\n<h2>")
		b.WriteString(part.Title)
		b.WriteString("</h2>\n")
		b.WriteString(content)
		b.WriteString("\n</div>")
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n")
}

// expandEachBlocks resolves {{#each name}}...{{/each}} blocks. Blocks naming
// anything other than selectedMilestones or products are intentionally left
// as literal text rather than guessed at.
func expandEachBlocks(content string, related RelatedData) string {
	return eachBlockRe.ReplaceAllStringFunc(content, func(block string) string {
		m := eachBlockRe.FindStringSubmatch(block)
		name, body := m[1], m[2]
		switch name {
		case "selectedMilestones":
			return expandMilestones(body, related.SelectedMilestones)
		case "products":
			return expandProducts(body, related.Products)
		default:
			return block
		}
	})
}

func expandMilestones(body string, milestones []entities.Milestone) string {
	var b strings.Builder
	for _, ms := range milestones {
		item := strings.ReplaceAll(body, "{{title}}", ms.Title)
		item = strings.ReplaceAll(item, "{{description}}", ms.Description)
		b.WriteString(item)
	}
	return b.String()
}

func expandProducts(body string, products []entities.Product) string {
	var b strings.Builder
	total := 0.0
	for _, p := range products {
		item := strings.ReplaceAll(body, "{{title}}", p.Title)
		item = strings.ReplaceAll(item, "{{description}}", p.Description)
		item = strings.ReplaceAll(item, "{{deliverables}}", renderDeliverables(p.Deliverables))
		// Per-line prices are suppressed; only the aggregate total is shown.
		item = strings.ReplaceAll(item, "{{price}}", "")
		b.WriteString(item)
		total += parseAmount(p.Price)
	}
	b.WriteString(`<div class="total-cost"><strong>Total Project Cost: `)
	b.WriteString(formatUSD(total))
	b.WriteString("</strong></div>")
	return b.String()
}

func renderDeliverables(deliverables []entities.ProductDeliverable) string {
	if len(deliverables) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, d := range deliverables {
		label := d.Title
		if label == "" {
			label = d.Name
		}
		b.WriteString("<li>")
		b.WriteString(label)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func renderPaymentsTable(payments []entities.Payment) string {
	if len(payments) == 0 {
		return "<p><em>No payment schedule defined.</em></p>"
	}

	var b strings.Builder
	total := 0.0
	b.WriteString(`<table class="payments-table">`)
	b.WriteString("<thead><tr><th>Payment</th><th>Amount</th><th>Due Date</th><th>Alternative Due Date</th></tr></thead><tbody>")
	for _, p := range payments {
		due := "TBD"
		if p.DueDate != "" {
			due = formatLocaleDate(p.DueDate)
		} else if p.AltDueDate != "" {
			due = p.AltDueDate
		}
		alt := "—"
		if p.DueDate != "" && p.AltDueDate != "" {
			alt = p.AltDueDate
		}
		b.WriteString("<tr><td>")
		b.WriteString(p.Title)
		b.WriteString("</td><td>")
		b.WriteString(formatUSD(parseAmount(p.Amount)))
		b.WriteString("</td><td>")
		b.WriteString(due)
		b.WriteString("</td><td>")
		b.WriteString(alt)
		b.WriteString("</td></tr>")
		total += parseAmount(p.Amount)
	}
	b.WriteString("<tr><td><strong>Total Project Cost</strong></td><td><strong>")
	b.WriteString(formatUSD(total))
	b.WriteString("</strong></td><td></td><td></td></tr>")
	b.WriteString("</tbody></table>")
	return b.String()
}

// substituteRecordFields is the last pass: every non-empty contract field
// replaces its own {{key}} token. Unmatched placeholders stay literal.
func substituteRecordFields(content string, record map[string]string) string {
	if len(record) == 0 {
		return content
	}
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		content = strings.ReplaceAll(content, "{{"+k+"}}", record[k])
	}
	return content
}

// parseAmount mirrors JS parseFloat(x)||0: a leading numeric prefix parses,
// everything else is zero. Never panics.
func parseAmount(s string) float64 {
	m := numericPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// formatUSD renders a currency amount as $1,234.56.
func formatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + "$" + b.String() + "." + fracPart
}

// formatLocaleDate renders stored dates the way the dashboard shows them
// (en-US short form). Unparseable values pass through untouched.
func formatLocaleDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Day()) + "/" + strconv.Itoa(t.Year())
		}
	}
	return s
}
