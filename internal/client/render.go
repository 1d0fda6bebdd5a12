package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-delivery-board/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// newTable returns a bordered table whose numeric columns are right-aligned.
func newTable(numeric map[int]bool, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func renderSession(w io.Writer, view models.SessionView) {
	if view.ActiveProfile == "" {
		fmt.Fprintln(w, "no active profile")
	} else {
		fmt.Fprintf(w, "active profile: %s\n", titleStyle.Render(view.DisplayName))
	}

	authenticated := make([]string, 0, len(view.Authenticated))
	for _, p := range view.Authenticated {
		authenticated = append(authenticated, p.DisplayName())
	}
	if len(authenticated) > 0 {
		fmt.Fprintf(w, "authenticated:  %s\n", strings.Join(authenticated, ", "))
	}
	if len(view.Visibility) > 0 {
		fmt.Fprintf(w, "visible:        %s\n", joinDepartments(view.Visibility))
	}
}

func renderIngestResult(w io.Writer, result models.IngestResult) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("batch"), result.BatchID)

	t := newTable(map[int]bool{1: true}, "Outcome", "Rows").
		Row("written", strconv.Itoa(result.Written)).
		Row("dropped (invalid date)", strconv.Itoa(result.DroppedInvalidDate)).
		Row("ignored collaborator", strconv.Itoa(result.IgnoredCollaborator)).
		Row("classified by fallback", strconv.Itoa(result.FallbackClassified))
	fmt.Fprintln(w, t.String())

	fmt.Fprintf(w, "months: %s\n", strings.Join(result.Months, ", "))
	if len(result.ReplacedMonths) > 0 {
		fmt.Fprintf(w, "replaced: %s\n", strings.Join(result.ReplacedMonths, ", "))
	}
}

func renderRecords(w io.Writer, records []models.DeliveryRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no records"))
		return
	}

	t := newTable(nil, "Date", "Collaborator", "Task", "Status", "Department")
	for _, r := range records {
		t.Row(r.DeliveryDate, r.Collaborator, r.Task, string(r.Status), string(r.Department))
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintf(w, "%d records\n", len(records))
}

func renderSummary(w io.Writer, summary models.ReportSummary) {
	fmt.Fprintf(w, "%s %d\n", titleStyle.Render("total deliveries:"), summary.Total)
	if summary.Total == 0 {
		return
	}

	byStatus := newTable(map[int]bool{1: true, 2: true}, "Status", "Count", "Share")
	for _, s := range models.Statuses {
		n := summary.ByStatus[s]
		byStatus.Row(string(s), strconv.Itoa(n), fmt.Sprintf("%.1f%%", 100*float64(n)/float64(summary.Total)))
	}
	fmt.Fprintln(w, byStatus.String())

	if len(summary.TopTasks) > 0 {
		tasks := newTable(map[int]bool{1: true}, "Task", "Count")
		for _, tc := range summary.TopTasks {
			tasks.Row(tc.Task, strconv.Itoa(tc.Total))
		}
		fmt.Fprintln(w, titleStyle.Render("top tasks"))
		fmt.Fprintln(w, tasks.String())
	}

	if len(summary.ByCollaborator) > 0 {
		headers := []string{"Collaborator"}
		numeric := map[int]bool{}
		for i, s := range models.Statuses {
			headers = append(headers, string(s))
			numeric[i+1] = true
		}
		headers = append(headers, "Total")
		numeric[len(headers)-1] = true

		collaborators := newTable(numeric, headers...)
		for _, c := range summary.ByCollaborator {
			row := []string{c.Collaborator}
			for _, s := range models.Statuses {
				row = append(row, strconv.Itoa(c.ByStatus[s]))
			}
			collaborators.Row(append(row, strconv.Itoa(c.Total))...)
		}
		fmt.Fprintln(w, titleStyle.Render("by collaborator"))
		fmt.Fprintln(w, collaborators.String())
	}
}

func renderFilters(w io.Writer, options models.FilterOptions) {
	fmt.Fprintf(w, "months:        %s\n", strings.Join(options.Months, ", "))
	fmt.Fprintf(w, "departments:   %s\n", joinDepartments(options.Departments))
	fmt.Fprintf(w, "collaborators: %s\n", strings.Join(options.Collaborators, ", "))
}

func joinDepartments(departments []models.Department) string {
	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
