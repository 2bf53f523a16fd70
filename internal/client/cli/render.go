package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/client/view"
)

const (
	headerTitle   = "InnovateHub Collab"
	headerTagline = "Your all-in-one workspace for innovation"
	timeLayout    = "2006-01-02 15:04"
)

type tabInfo struct {
	title       string
	description string
	empty       string
}

var tabs = map[models.Kind]tabInfo{
	models.KindProject: {
		title:       "Projects",
		description: "Manage your projects and tasks here.",
		empty:       "No projects yet. Use 'newproject' to create one.",
	},
	models.KindDocument: {
		title:       "Documents",
		description: "Create and manage your documents here.",
		empty:       "No documents yet. Use 'newdoc' to create one.",
	},
	models.KindFile: {
		title:       "Files",
		description: "Upload and manage your files here.",
		empty:       "No files yet. Use 'upload <path>' to add one.",
	},
}

func renderHeader(w io.Writer) {
	fmt.Fprintln(w, headerTitle)
	fmt.Fprintln(w, headerTagline)
}

// renderTab prints the tab card. While the overall gate is loading or
// errored the list is replaced by a placeholder.
func renderTab(w io.Writer, kind models.Kind, overall view.Overall, records []models.Record) {
	info := tabs[kind]
	fmt.Fprintf(w, "== %s ==\n%s\n\n", info.title, info.description)

	switch {
	case overall.Loading:
		fmt.Fprintln(w, "Loading...")
		return
	case overall.Err != nil:
		fmt.Fprintf(w, "Error: %v\n", overall.Err)
		fmt.Fprintln(w, "Type 'refresh' to try again.")
		return
	case len(records) == 0:
		fmt.Fprintln(w, info.empty)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch kind {
	case models.KindProject:
		fmt.Fprintln(tw, "NAME\tDESCRIPTION\tCREATED")
		for _, r := range records {
			p, ok := r.(models.Project)
			if !ok {
				continue
			}
			desc := "-"
			if p.Description != nil {
				desc = *p.Description
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, desc, p.CreatedAt.Local().Format(timeLayout))
		}
	case models.KindFile:
		fmt.Fprintln(tw, "NAME\tTYPE\tCREATED")
		for _, r := range records {
			f, ok := r.(models.FileRecord)
			if !ok {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.FileType, f.CreatedAt.Local().Format(timeLayout))
		}
	default:
		fmt.Fprintln(tw, "NAME\tCREATED")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\n", r.RecordName(), r.Created().Local().Format(timeLayout))
		}
	}
	_ = tw.Flush()
}

// renderStatus prints one line per kind plus the overall gate.
func renderStatus(w io.Writer, overall view.Overall, lines []statusLine) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\n", tabs[l.kind].title, l.text)
	}
	_ = tw.Flush()

	switch {
	case overall.Loading:
		fmt.Fprintln(w, "Overall: loading")
	case overall.Err != nil:
		fmt.Fprintf(w, "Overall: error: %v\n", overall.Err)
	default:
		fmt.Fprintln(w, "Overall: ready")
	}
}

type statusLine struct {
	kind models.Kind
	text string
}
