package usecase

import (
	"strings"
	"testing"

	"agency_crm/internal/domain/entities"
)

func TestCompileContractContent_Basics(t *testing.T) {
	t.Run("no parts yields empty string", func(t *testing.T) {
		got := CompileContractContent(map[string]string{"client_name": "Acme"}, nil, RelatedData{})
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})

	t.Run("single part wraps in section div", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Scope", Content: "Hello {{client_name}}", OrderIndex: 0},
		}
		got := CompileContractContent(map[string]string{"client_name": "Acme"}, parts, RelatedData{})
		want := "<div class=\"contract-section\">\n<h2>Scope</h2>\nHello Acme\n</div>"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("parts render in order_index order", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Second", Content: "b", OrderIndex: 2},
			{Title: "First", Content: "a", OrderIndex: 1},
		}
		got := CompileContractContent(nil, parts, RelatedData{})
		if strings.Index(got, "First") > strings.Index(got, "Second") {
			t.Fatalf("expected First before Second, got %q", got)
		}
	})

	t.Run("unmatched placeholder stays literal", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Scope", Content: "Hi {{missing_field}}", OrderIndex: 0},
		}
		got := CompileContractContent(map[string]string{"client_name": "Acme"}, parts, RelatedData{})
		if !strings.Contains(got, "{{missing_field}}") {
			t.Fatalf("expected literal placeholder to survive, got %q", got)
		}
	})

	t.Run("empty field value erases placeholder", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Scope", Content: "Start: {{start_date}}.", OrderIndex: 0},
		}
		got := CompileContractContent(map[string]string{"start_date": ""}, parts, RelatedData{})
		if !strings.Contains(got, "Start: .") {
			t.Fatalf("expected placeholder replaced by empty string, got %q", got)
		}
	})
}

func TestCompileContractContent_EachBlocks(t *testing.T) {
	t.Run("selectedMilestones expands per milestone", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Milestones", Content: "{{#each selectedMilestones}}<p>{{title}}: {{description}}</p>{{/each}}", OrderIndex: 0},
		}
		related := RelatedData{SelectedMilestones: []entities.Milestone{
			{Title: "Kickoff", Description: "Discovery"},
			{Title: "Launch", Description: "Go live"},
		}}
		got := CompileContractContent(nil, parts, related)
		if !strings.Contains(got, "<p>Kickoff: Discovery</p><p>Launch: Go live</p>") {
			t.Fatalf("expected expanded milestones, got %q", got)
		}
	})

	t.Run("products suppress price and append total", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Products", Content: "{{#each products}}<h3>{{title}}</h3><span>{{price}}</span>{{deliverables}}{{/each}}", OrderIndex: 0},
		}
		related := RelatedData{Products: []entities.Product{
			{Title: "Website", Price: "3000", Deliverables: []entities.ProductDeliverable{{Title: "Design"}, {Name: "Build"}}},
			{Title: "SEO", Price: "1500.50"},
		}}
		got := CompileContractContent(nil, parts, related)
		if !strings.Contains(got, "<span></span>") {
			t.Fatalf("expected per-line price suppressed, got %q", got)
		}
		if !strings.Contains(got, "<ul><li>Design</li><li>Build</li></ul>") {
			t.Fatalf("expected deliverables list, got %q", got)
		}
		if !strings.Contains(got, `<div class="total-cost"><strong>Total Project Cost: $4,500.50</strong></div>`) {
			t.Fatalf("expected total cost div, got %q", got)
		}
	})

	t.Run("empty products still render total", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Products", Content: "{{#each products}}x{{/each}}", OrderIndex: 0},
		}
		got := CompileContractContent(nil, parts, RelatedData{})
		if !strings.Contains(got, "Total Project Cost: $0.00") {
			t.Fatalf("expected zero total, got %q", got)
		}
	})

	t.Run("unknown block name stays literal", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Other", Content: "{{#each gadgets}}{{title}}{{/each}}", OrderIndex: 0},
		}
		got := CompileContractContent(nil, parts, RelatedData{})
		if !strings.Contains(got, "{{#each gadgets}}{{title}}{{/each}}") {
			t.Fatalf("expected unknown block untouched, got %q", got)
		}
	})
}

func TestCompileContractContent_PaymentsTable(t *testing.T) {
	t.Run("no payments shows placeholder", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Payments", Content: "{{payments}}", OrderIndex: 0},
		}
		got := CompileContractContent(nil, parts, RelatedData{})
		if !strings.Contains(got, "<p><em>No payment schedule defined.</em></p>") {
			t.Fatalf("expected placeholder, got %q", got)
		}
	})

	t.Run("table rows and total", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Payments", Content: "{{payments}}", OrderIndex: 0},
		}
		related := RelatedData{Payments: []entities.Payment{
			{Title: "Deposit", Amount: "500", DueDate: "2026-03-01"},
			{Title: "Final payment", Amount: "500", AltDueDate: "On completion"},
		}}
		got := CompileContractContent(nil, parts, related)
		if !strings.Contains(got, "<tr><td>Deposit</td><td>$500.00</td><td>3/1/2026</td><td>—</td></tr>") {
			t.Fatalf("expected deposit row, got %q", got)
		}
		if !strings.Contains(got, "<tr><td>Final payment</td><td>$500.00</td><td>On completion</td><td>—</td></tr>") {
			t.Fatalf("expected final row using alt due date, got %q", got)
		}
		if !strings.Contains(got, "<tr><td><strong>Total Project Cost</strong></td><td><strong>$1,000.00</strong></td><td></td><td></td></tr>") {
			t.Fatalf("expected total row, got %q", got)
		}
	})

	t.Run("no dates shows TBD", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Payments", Content: "{{payments}}", OrderIndex: 0},
		}
		related := RelatedData{Payments: []entities.Payment{
			{Title: "Deposit", Amount: "100"},
		}}
		got := CompileContractContent(nil, parts, related)
		if !strings.Contains(got, "<td>TBD</td>") {
			t.Fatalf("expected TBD due date, got %q", got)
		}
	})

	t.Run("both dates show alt in its own column", func(t *testing.T) {
		parts := []entities.ContractPartView{
			{Title: "Payments", Content: "{{payments}}", OrderIndex: 0},
		}
		related := RelatedData{Payments: []entities.Payment{
			{Title: "Deposit", Amount: "100", DueDate: "2026-01-02", AltDueDate: "On approval"},
		}}
		got := CompileContractContent(nil, parts, related)
		if !strings.Contains(got, "<td>1/2/2026</td><td>On approval</td>") {
			t.Fatalf("expected both date columns, got %q", got)
		}
	})
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1234.56", 1234.56},
		{"  42  ", 42},
		{"1500.00 USD", 1500},
		{"-12.5", -12.5},
		{".5", 0.5},
		{"$500", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseAmount(c.in); got != c.want {
			t.Fatalf("parseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{999, "$999.00"},
		{-42.1, "-$42.10"},
	}
	for _, c := range cases {
		if got := formatUSD(c.in); got != c.want {
			t.Fatalf("formatUSD(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatLocaleDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-01-02", "1/2/2026"},
		{"2025-12-31", "12/31/2025"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}
	for _, c := range cases {
		if got := formatLocaleDate(c.in); got != c.want {
			t.Fatalf("formatLocaleDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
