package cli

import (
	"context"
	"fmt"

	"github.com/innovatehub/collab/internal/client/models"
	"github.com/innovatehub/collab/internal/client/query"
)

// ShowTab makes kind the active tab and renders it. It waits up to the
// request timeout for outstanding fetches; if they are still running the
// loading placeholder is shown.
func (a *App) ShowTab(ctx context.Context, kind models.Kind) error {
	a.mu.Lock()
	a.tab = kind
	a.mu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	overall, err := a.view.Wait(wctx)
	cancel()
	if err != nil {
		a.logger.Debug(ctx, "lists not settled", "error", err)
		overall = a.view.Overall()
	}

	renderTab(a.out, kind, overall, a.cache.Snapshot(kind).Records)
	return nil
}

func (a *App) NewProject(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter project name", a.prompts)
	if err != nil {
		return err
	}
	desc, err := GetSimpleText(a.reader, "Enter project description (optional)", a.prompts)
	if err != nil {
		return err
	}

	a.dispatcher.SetProjectName(name)
	a.dispatcher.SetProjectDescription(desc)
	invalid := a.dispatcher.ProjectForm().Validate()

	submitted, err := a.dispatcher.SubmitProject(ctx)
	return a.afterSubmit(ctx, models.KindProject, submitted, err, invalid)
}

func (a *App) NewDocument(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter document name", a.prompts)
	if err != nil {
		return err
	}

	a.dispatcher.SetDocumentName(name)
	invalid := a.dispatcher.DocumentForm().Validate()

	submitted, err := a.dispatcher.SubmitDocument(ctx)
	return a.afterSubmit(ctx, models.KindDocument, submitted, err, invalid)
}

func (a *App) Upload(ctx context.Context, path string) error {
	fh, err := models.OpenFile(path)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.dispatcher.SetUploadFile(fh)
	invalid := a.dispatcher.UploadForm().Validate()

	submitted, err := a.dispatcher.SubmitUpload(ctx)
	return a.afterSubmit(ctx, models.KindFile, submitted, err, invalid)
}

// afterSubmit reports the outcome of a mutation and, on success, renders
// the kind's tab from the refetched list.
func (a *App) afterSubmit(ctx context.Context, kind models.Kind, submitted bool, err error, invalid error) error {
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if !submitted {
		switch {
		case a.dispatcher.IsPending(kind):
			fmt.Fprintf(a.out, "%s already in progress\n", kind.Op())
		case invalid != nil:
			fmt.Fprintf(a.out, "Nothing submitted: %v\n", invalid)
		}
		return nil
	}

	fmt.Fprintf(a.out, "%s: done\n", kind.Op())
	return a.ShowTab(ctx, kind)
}

// Chat sends text to the assistant and waits for its reply.
func (a *App) Chat(ctx context.Context, text string) error {
	reply := a.chat.Send(text)
	if reply == nil {
		return nil
	}
	fmt.Fprintf(a.out, "you: %s\n", text)

	select {
	case m, ok := <-reply:
		if ok {
			fmt.Fprintf(a.out, "assistant: %s\n", m.Text)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (a *App) History(ctx context.Context) error {
	msgs := a.chat.Messages()
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "Ask me anything about your projects, documents, or files.")
		return nil
	}
	for _, m := range msgs {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.At.Local().Format("15:04:05"), m.Role, m.Text)
	}
	return nil
}

// Refresh revalidates every list, clearing sticky failures, and renders the
// active tab.
func (a *App) Refresh(ctx context.Context) error {
	for _, k := range models.Kinds {
		a.cache.Invalidate(k)
	}
	return a.ShowTab(ctx, a.activeTab())
}

func (a *App) Status(ctx context.Context) error {
	lines := make([]statusLine, 0, len(models.Kinds))
	for _, k := range models.Kinds {
		lines = append(lines, statusLine{kind: k, text: a.describe(k)})
	}
	renderStatus(a.out, a.view.Overall(), lines)
	return nil
}

func (a *App) describe(kind models.Kind) string {
	st := a.cache.Snapshot(kind)

	var s string
	switch {
	case st.Loading():
		s = "loading"
	case st.Status == query.StatusFailed:
		s = fmt.Sprintf("error: %v", st.Err)
	case st.Status == query.StatusReady:
		s = fmt.Sprintf("%d records", len(st.Records))
	default:
		s = "not loaded"
	}
	if st.Fetching && !st.Loading() {
		s += " (refreshing)"
	}
	if a.dispatcher.IsPending(kind) {
		s += "; " + kind.Op() + " pending"
	}
	if err := a.dispatcher.LastError(kind); err != nil {
		s += "; last " + err.Error()
	}
	return s
}
