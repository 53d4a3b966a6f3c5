package format

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/queuectl/queuectl/job"
)

// TableFormatter formats output as a table.
type TableFormatter struct {
	writer io.Writer
}

// Format implements the Formatter interface for tables.
func (f *TableFormatter) Format(data interface{}) error {
	switch v := data.(type) {
	case []*job.Job:
		return f.formatJobs(v)
	case []*job.DLQEntry:
		return f.formatDLQ(v)
	default:
		return fmt.Errorf("table format not supported for type %T", data)
	}
}

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true)

func (f *TableFormatter) formatJobs(jobs []*job.Job) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(f.writer, emptyStyle.Render("No jobs."))
		return err
	}
	rows := lo.Map(jobs, func(jb *job.Job, _ int) table.Row {
		return table.Row{
			jb.ID,
			jb.State.String(),
			fmt.Sprintf("%d/%d", jb.Attempts, jb.MaxRetries),
			fmt.Sprintf("%d", jb.Priority),
			jb.RunAt.UTC().Format(time.DateTime),
			jb.UpdatedAt.UTC().Format(time.DateTime),
			jb.Command,
		}
	})
	columns := []table.Column{
		{Title: "ID", Width: 20},
		{Title: "STATE", Width: 10},
		{Title: "ATTEMPTS", Width: 8},
		{Title: "PRIO", Width: 5},
		{Title: "RUN AT", Width: 20},
		{Title: "UPDATED", Width: 20},
		{Title: "COMMAND", Width: 48},
	}
	return f.render(columns, rows)
}

func (f *TableFormatter) formatDLQ(entries []*job.DLQEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(f.writer, emptyStyle.Render("DLQ is empty."))
		return err
	}
	rows := lo.Map(entries, func(entry *job.DLQEntry, _ int) table.Row {
		return table.Row{
			entry.ID,
			fmt.Sprintf("%d/%d", entry.Attempts, entry.MaxRetries),
			entry.FailedAt.UTC().Format(time.DateTime),
			entry.LastError,
			entry.Command,
		}
	})
	columns := []table.Column{
		{Title: "ID", Width: 20},
		{Title: "ATTEMPTS", Width: 8},
		{Title: "FAILED AT", Width: 20},
		{Title: "LAST ERROR", Width: 32},
		{Title: "COMMAND", Width: 40},
	}
	return f.render(columns, rows)
}

func (f *TableFormatter) render(columns []table.Column, rows []table.Row) error {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	_, err := fmt.Fprintln(f.writer, t.View())
	return err
}
