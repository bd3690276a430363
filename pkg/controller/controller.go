package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/export"
	"github.com/matzehuels/careermap/pkg/graph"
	"github.com/matzehuels/careermap/pkg/progress"
	"github.com/matzehuels/careermap/pkg/roadmap"
	"github.com/matzehuels/careermap/pkg/timeline"
)

// User-facing messages.
const (
	MsgEmptyRole       = "Please enter a job role"
	MsgNoSkills        = "No skills data found for this role."
	MsgGenerated       = "Roadmap generated successfully!"
	MsgDisplayFailed   = "Error displaying the roadmap. Please try again."
	MsgFetchFailed     = "An error occurred while fetching the roadmap."
	MsgSaved           = "Your progress has been saved locally!"
	MsgNoExportData    = "No roadmap data available to export"
	MsgExporting       = "Generating PDF..."
	MsgExported        = "PDF exported successfully! Check your downloads folder."
	MsgExportFailed    = "Failed to export PDF. Please try again."
	MsgExportSetupFail = "Error setting up PDF export. Please try again."
)

// Busy action names.
const (
	ActionSubmit = "submit"
	ActionExport = "export"
)

// Backend answers suggestion and roadmap requests. The HTTP client and the
// local catalog both satisfy it.
type Backend interface {
	Suggestions(ctx context.Context, query string) ([]string, error)
	Roadmap(ctx context.Context, role string) (roadmap.Roadmap, error)
}

// View is a rendered roadmap: the graph and the timeline built from it.
type View struct {
	Roadmap  roadmap.Roadmap
	Graph    graph.Graph
	Timeline []timeline.Stage
}

// Controller orchestrates user actions.
type Controller struct {
	Backend  Backend
	Progress progress.Store // optional; Save and Resume are no-ops without it
	PDF      export.PDFRenderer
	Logger   *log.Logger
	Now      func() time.Time

	State     State
	Suggester Suggester
	Tabs      Tabs
	Modal     Modal
	Notifier  Notifier
	Busy      Busy
}

// New returns a controller for backend. A nil logger discards output.
func New(backend Backend, store progress.Store, pdf export.PDFRenderer, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if pdf == nil {
		pdf = export.CommandRenderer{}
	}
	return &Controller{
		Backend:  backend,
		Progress: store,
		PDF:      pdf,
		Logger:   logger,
		Now:      time.Now,
	}
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Suggest fetches suggestions for query and applies them unless a newer
// query was started meanwhile. Fetch failures are logged and leave the list
// untouched. It reports whether the list changed.
func (c *Controller) Suggest(ctx context.Context, query string) bool {
	gen, ok := c.Suggester.Begin(query)
	if !ok {
		return true
	}
	items, err := c.Backend.Suggestions(ctx, c.Suggester.Query())
	if err != nil {
		c.Logger.Warn("fetch suggestions", "query", query, "err", err)
		c.Suggester.Fail(gen)
		return false
	}
	return c.Suggester.Apply(gen, items)
}

// Submit generates the roadmap for role and makes it current. Every outcome
// is also reported through the notifier.
func (c *Controller) Submit(ctx context.Context, role string) (*View, error) {
	role = strings.TrimSpace(role)
	if err := errors.ValidateRole(role); err != nil {
		c.Notifier.Show(KindError, errors.UserMessage(err))
		return nil, err
	}

	release, ok := c.Busy.Acquire(ActionSubmit)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a roadmap is already being generated")
	}
	defer release()
	c.Suggester.Escape()

	rm, err := c.Backend.Roadmap(ctx, role)
	if err != nil {
		if errors.Is(err, errors.ErrCodeBackend) {
			c.Notifier.Show(KindError, errors.UserMessage(err))
		} else {
			c.Logger.Error("fetch roadmap", "role", role, "err", err)
			c.Notifier.Show(KindError, MsgFetchFailed)
		}
		return nil, err
	}
	if !rm.HasSkills() {
		c.Notifier.Show(KindError, MsgNoSkills)
		return nil, errors.New(errors.ErrCodeNoSkills, MsgNoSkills)
	}

	rm = roadmap.Repair(rm)
	if rm.Role == "" {
		rm.Role = role
	}
	// The roadmap becomes current even if drawing it fails, so save and
	// export still act on what was fetched.
	c.State.Replace(rm)
	view, err := buildView(rm)
	if err != nil {
		c.Logger.Error("display roadmap", "role", role, "err", err)
		c.Notifier.Show(KindError, MsgDisplayFailed)
		return nil, err
	}

	c.Modal.Close()
	c.Notifier.Show(KindSuccess, MsgGenerated)
	c.Logger.Debug("roadmap displayed", "role", rm.Role, "skills", len(rm.Skills), "dangling", len(view.Graph.Dangling))
	return view, nil
}

// buildGraph is swapped in tests to force a render failure.
var buildGraph = graph.Build

// buildView turns a panic in the view builders into an error so a bad
// roadmap never takes the interface down.
func buildView(rm roadmap.Roadmap) (v *View, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, errors.New(errors.ErrCodeRenderFailed, "%v", r)
		}
	}()
	return &View{
		Roadmap:  rm,
		Graph:    buildGraph(rm.Skills, rm.Dependencies),
		Timeline: timeline.Build(rm.Progression),
	}, nil
}

// Current returns the view for the current roadmap.
func (c *Controller) Current() (*View, bool) {
	rm, ok := c.State.Current()
	if !ok {
		return nil, false
	}
	v, err := buildView(rm)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Details returns the details panel for skill in the current roadmap.
func (c *Controller) Details(skill string) (SkillDetails, bool) {
	rm, ok := c.State.Current()
	if !ok {
		return SkillDetails{}, false
	}
	return NewSkillDetails(rm, skill), true
}

// ShowCourses opens the courses modal for skill.
func (c *Controller) ShowCourses(skill string) CourseView {
	rm, _ := c.State.Current()
	v := NewCourseView(skill, rm.Courses[skill])
	c.Modal.Open(v)
	return v
}

// Save stores a snapshot of the current roadmap. Without a roadmap or a
// store it does nothing.
func (c *Controller) Save(ctx context.Context) error {
	rm, ok := c.State.Current()
	if !ok || c.Progress == nil {
		return nil
	}
	p := roadmap.Snapshot(rm, c.now())
	if err := c.Progress.Save(ctx, p); err != nil {
		c.Logger.Error("save progress", "err", err)
		c.Notifier.Show(KindError, errors.UserMessage(err))
		return err
	}
	c.Notifier.Show(KindSuccess, MsgSaved)
	return nil
}

// Resume loads the saved snapshot, if any, and announces it. The caller
// prefills the role input from the result; nothing is generated.
func (c *Controller) Resume(ctx context.Context) (*roadmap.Progress, error) {
	if c.Progress == nil {
		return nil, nil
	}
	p, err := c.Progress.Load(ctx, roadmap.DefaultProgressID)
	if err != nil {
		c.Logger.Warn("load progress", "err", err)
		return nil, err
	}
	if p == nil || p.Role == "" {
		return nil, nil
	}
	c.Notifier.Show(KindInfo, fmt.Sprintf("Found saved progress for %q. Click \"Generate Roadmap\" to continue.", p.Role))
	return p, nil
}

// Export renders the current roadmap to PDF and returns the file name and
// contents. An open courses modal is hidden while exporting and restored
// afterwards.
func (c *Controller) Export(ctx context.Context) (string, []byte, error) {
	rm, ok := c.State.Current()
	if !ok {
		c.Notifier.Show(KindError, MsgNoExportData)
		return "", nil, errors.New(errors.ErrCodeInvalidInput, MsgNoExportData)
	}
	release, ok := c.Busy.Acquire(ActionExport)
	if !ok {
		return "", nil, errors.New(errors.ErrCodeInvalidInput, "an export is already running")
	}
	defer release()

	if open, wasOpen := c.Modal.Current(); wasOpen {
		c.Modal.Close()
		defer c.Modal.Open(open)
	}
	c.Notifier.Show(KindInfo, MsgExporting)

	if c.PDF == nil {
		c.Notifier.Show(KindError, MsgExportSetupFail)
		return "", nil, errors.New(errors.ErrCodeExportFailed, MsgExportSetupFail)
	}
	name, data, err := export.PDF(ctx, c.PDF, rm, c.now())
	if err != nil {
		c.Logger.Error("export pdf", "role", rm.Role, "err", err)
		c.Notifier.Show(KindError, MsgExportFailed)
		return "", nil, errors.Wrap(errors.ErrCodeExportFailed, err, MsgExportFailed)
	}
	c.Notifier.Show(KindSuccess, MsgExported)
	return name, data, nil
}
