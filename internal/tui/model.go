package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	tuiactions "github.com/glabrego/hackernews-cli/internal/tui/actions"
	tuiplatform "github.com/glabrego/hackernews-cli/internal/tui/platform"
	tuistate "github.com/glabrego/hackernews-cli/internal/tui/state"
	tuitheme "github.com/glabrego/hackernews-cli/internal/tui/theme"
	tuiview "github.com/glabrego/hackernews-cli/internal/tui/view"

	"github.com/glabrego/hackernews-cli/internal/cache"
	"github.com/glabrego/hackernews-cli/internal/command"
	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/logging"
	"github.com/glabrego/hackernews-cli/internal/nav"
	"github.com/glabrego/hackernews-cli/internal/transport"
)

const historyLimit = 20

type startMsg struct{}

type clearStatusMsg struct {
	id int
}

type Options struct {
	PageSize    int
	Timeout     time.Duration
	DownloadDir string
	WebBaseURL  string
	// StatusTTL clears status lines after the delay; zero keeps them until
	// replaced.
	StatusTTL time.Duration
	Logger    *slog.Logger
}

// Model is the only owner of the cache and the navigation machine. Both are
// mutated from Update and nowhere else.
type Model struct {
	service     tuiactions.Service
	cache       *cache.Cache
	nav         *nav.Machine
	input       textinput.Model
	spinner     spinner.Model
	theme       tuitheme.Theme
	logger      *slog.Logger
	pageSize    int
	timeout     time.Duration
	downloadDir string
	webBaseURL  string
	statusTTL   time.Duration
	width       int
	height      int
	offset      int
	overlay     []string
	status      string
	statusID    int
	err         error
	openURLFn   func(string) error
	copyURLFn   func(string) error
	nowFn       func() time.Time
}

func NewModel(service tuiactions.Service, c *cache.Cache, machine *nav.Machine, opts Options) Model {
	th := tuitheme.Default()

	input := textinput.New()
	input.Prompt = "hn> "
	input.PromptStyle = th.Prompt
	input.Placeholder = "top, next, comments 3, help"
	input.CharLimit = 128
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(th.Spinner))

	if opts.PageSize <= 0 {
		opts.PageSize = nav.DefaultPageSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = tuiactions.DefaultTimeout
	}
	if opts.DownloadDir == "" {
		opts.DownloadDir = "."
	}
	if opts.WebBaseURL == "" {
		opts.WebBaseURL = "https://news.ycombinator.com"
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if machine.State() == nav.Starting {
		_ = machine.Started()
	}

	return Model{
		service:     service,
		cache:       c,
		nav:         machine,
		input:       input,
		spinner:     spin,
		theme:       th,
		logger:      opts.Logger,
		pageSize:    opts.PageSize,
		timeout:     opts.Timeout,
		downloadDir: opts.DownloadDir,
		webBaseURL:  opts.WebBaseURL,
		statusTTL:   opts.StatusTTL,
		openURLFn:   tuiplatform.OpenURLInBrowser,
		copyURLFn:   tuiplatform.CopyURLToClipboard,
		nowFn:       time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, func() tea.Msg { return startMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-2)
		m.offset = tuistate.ClampOffset(m.offset, len(m.bodyLines()), m.bodyHeight())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.overlay = nil
			m.status = ""
			m.err = nil
			m.offset = 0
			return m, nil
		case "pgup", "ctrl+b":
			m.scroll(-tuistate.PageStep(m.height, m.hasStatus()))
			return m, nil
		case "pgdown", "ctrl+f":
			m.scroll(tuistate.PageStep(m.height, m.hasStatus()))
			return m, nil
		case "enter":
			line := m.input.Value()
			m.input.Reset()
			return m.runLine(line)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case startMsg:
		return m.runLine(string(hn.CategoryTop))
	case spinner.TickMsg:
		if !m.nav.ConnectionWorking() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tuiactions.StoriesLoadedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		stories := msg.Stories
		m.cache.StoreStoryList(stories.Category, stories.IDs)
		m.cache.StoreStoryPage(stories.Category, stories.Page, stories.Items)
		m.nav.ShowStories(stories.Category, stories.Page)
		m.resetBody()
		m.logger.Info("stories loaded",
			"category", stories.Category,
			"count", len(stories.IDs),
			"duration_ms", msg.Duration.Milliseconds(),
		)
		return m.setStatus(fmt.Sprintf("Loaded %d %s stories in %dms", len(stories.IDs), stories.Category, msg.Duration.Milliseconds()))
	case tuiactions.StoryPageLoadedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		m.cache.StoreStoryPage(msg.Category, msg.Page, msg.Items)
		m.nav.ShowStories(msg.Category, msg.Page)
		m.resetBody()
		return m, nil
	case tuiactions.ItemOpenedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		m.cache.StoreOpenItemAndComments(msg.Item, msg.Comments)
		m.nav.ShowComments(msg.Item.ID)
		m.resetBody()
		m.logger.Info("item opened", "id", msg.Item.ID, "comments", len(msg.Comments))
		return m, nil
	case tuiactions.CommentExpandedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		if comment, ok := m.cache.CommentAt(msg.Index); !ok || comment.ID != msg.Parent.ID {
			return m.fail("expand", fmt.Errorf("comment %d is no longer cached: %w", msg.Index+1, cache.ErrCacheMiss))
		}
		if _, ok := m.cache.TakeCommentWithChildren(msg.Index); !ok {
			return m.fail("expand", fmt.Errorf("comment %d has no replies: %w", msg.Index+1, cache.ErrCacheMiss))
		}
		m.cache.DescendInto(msg.Parent, msg.Comments)
		m.nav.ShowComments(msg.Parent.ID)
		m.resetBody()
		m.logger.Debug("comment expanded", "id", msg.Parent.ID, "depth", m.cache.Depth())
		return m, nil
	case tuiactions.AscendedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		if err := m.cache.Ascend(msg.Parent, msg.Comments); err != nil {
			return m.fail("up", err)
		}
		m.nav.ShowComments(msg.Parent.ID)
		m.resetBody()
		return m, nil
	case tuiactions.UserLoadedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		m.cache.StoreUser(msg.User)
		lines := tuiview.UserLines(msg.User, m.nowFn(), m.contentWidth(), m.theme)
		lines = append(lines, "", m.theme.MetaLabel.Render("profile")+" "+tuiplatform.UserURL(m.webBaseURL, msg.User.ID))
		m.showOverlay(lines)
		return m, nil
	case tuiactions.PageSavedMsg:
		if !m.finishFetch() {
			return m, nil
		}
		m.logger.Info("page saved", "id", msg.Item.ID, "path", msg.Path)
		return m.setStatus("Saved " + msg.Path)
	case tuiactions.FetchErrorMsg:
		if err := m.nav.FailFetch(); err != nil {
			m.logger.Error("fetch error outside retrieval", "op", msg.Op, "err", err)
		}
		return m.fail(msg.Op, msg.Err)

	case tuiactions.HistoryLoadedMsg:
		m.finishLocalWork()
		m.showOverlay(tuiview.HistoryLines(msg.Entries, m.nowFn(), m.contentWidth(), m.theme))
		return m, nil
	case tuiactions.OpenURLSuccessMsg:
		m.finishLocalWork()
		m.logger.Debug("url handled", "url", msg.URL, "opened", msg.Opened)
		return m.setStatus(msg.Status)
	case tuiactions.OpenURLErrorMsg:
		m.nav.Halt()
		return m.fail("open", msg.Err)
	case tuiactions.LocalErrorMsg:
		m.nav.Halt()
		return m.fail(msg.Op, msg.Err)
	}
	return m, nil
}

func (m Model) runLine(line string) (tea.Model, tea.Cmd) {
	cmd, err := command.Parse(line)
	if errors.Is(err, command.ErrEmpty) {
		return m, nil
	}
	if err != nil {
		return m.fail("parse", err)
	}
	m.logger.Debug("command", "kind", cmd.Kind, "index", cmd.Index, "state", m.nav.State())

	if m.nav.State() == nav.Idle {
		if err := m.nav.Resume(); err != nil {
			return m.fail(cmd.Kind.String(), err)
		}
	}

	switch cmd.Kind {
	case command.Exit:
		return m, tea.Quit
	case command.Help:
		m.showOverlay(strings.Split(command.HelpText, "\n"))
		return m, nil
	}

	if m.nav.State() != nav.WaitingUserInput {
		return m.fail(cmd.Kind.String(), fmt.Errorf("busy while %s: %w", m.nav.State(), nav.ErrInvalidState))
	}
	if err := m.nav.Require(cmd.Mode()); err != nil {
		return m.fail(cmd.Kind.String(), err)
	}
	m.err = nil

	if cmd.Fetches() {
		return m.runRetrieval(cmd)
	}
	return m.runLocal(cmd)
}

// runRetrieval dispatches commands that may need the network. Results already
// in the cache are shown as local work instead.
func (m Model) runRetrieval(cmd command.Command) (tea.Model, tea.Cmd) {
	switch cmd.Kind {
	case command.Stories:
		if page, ok := m.cachedStoryPage(cmd.Category); ok {
			return m.reshowStories(page)
		}
		return m.fetch(fmt.Sprintf("Loading %s stories", cmd.Category),
			tuiactions.LoadStoriesCmd(m.service, cmd.Category, m.pageSize, m.timeout))
	case command.Refresh:
		category := m.nav.Category()
		return m.fetch(fmt.Sprintf("Refreshing %s stories", category),
			tuiactions.LoadStoriesCmd(m.service, category, m.pageSize, m.timeout))
	case command.Next, command.Back:
		return m.turnPage(cmd.Kind == command.Next)
	case command.Comments:
		id, err := m.storyIDAt(cmd.Index)
		if err != nil {
			return m.fail("comments", err)
		}
		return m.fetch(fmt.Sprintf("Loading comments for %d", id),
			tuiactions.OpenItemCmd(m.service, id, m.timeout))
	case command.Expand:
		comment, ok := m.cache.CommentAt(cmd.Index)
		if !ok {
			return m.fail("expand", fmt.Errorf("no comment %d: %w", cmd.Index+1, nav.ErrPastIndex))
		}
		if !comment.HasKids() {
			return m.fail("expand", fmt.Errorf("comment %d has no replies: %w", cmd.Index+1, cache.ErrCacheMiss))
		}
		return m.fetch(fmt.Sprintf("Expanding comment %d", cmd.Index+1),
			tuiactions.ExpandCommentCmd(m.service, cmd.Index, comment, m.timeout))
	case command.Up:
		parent, ok := m.cache.PeekAncestor()
		if !ok {
			return m.fail("up", fmt.Errorf("already at the top of the thread: %w", cache.ErrCacheMiss))
		}
		return m.fetch(fmt.Sprintf("Returning to %d", parent.ID),
			tuiactions.AscendCmd(m.service, parent, m.timeout))
	case command.Load:
		item, err := m.itemAt(cmd.Index)
		if err != nil {
			return m.fail("load", err)
		}
		return m.fetch(fmt.Sprintf("Saving %s", item.URLOr("page")),
			tuiactions.DownloadPageCmd(m.service, item, m.downloadDir, m.timeout))
	case command.User:
		return m.fetch("Loading user "+cmd.Name,
			tuiactions.FetchUserCmd(m.service, cmd.Name, m.timeout))
	}
	return m.fail(cmd.Kind.String(), command.ErrUnknown)
}

func (m Model) runLocal(cmd command.Command) (tea.Model, tea.Cmd) {
	switch cmd.Kind {
	case command.Open, command.Yank:
		return m.handleURL(cmd)
	case command.JSON:
		return m.showJSON(cmd.Index)
	case command.History:
		if err := m.nav.BeginLocalWork(); err != nil {
			return m.fail("history", err)
		}
		return m, tuiactions.HistoryCmd(m.service, historyLimit)
	}
	return m.fail(cmd.Kind.String(), command.ErrUnknown)
}

// fetch gates a network command behind the machine. A second fetch while one
// is outstanding never reaches the service.
func (m Model) fetch(status string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.service == nil {
		return m, nil
	}
	if err := m.nav.BeginFetch(); err != nil {
		return m.fail("fetch", err)
	}
	m.status = status
	m.err = nil
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) turnPage(forward bool) (tea.Model, tea.Cmd) {
	if m.nav.ViewingComments() {
		if err := m.nav.BeginLocalWork(); err != nil {
			return m.fail("page", err)
		}
		count, _ := m.cache.CommentCount()
		var err error
		if forward {
			err = m.nav.NextPage(count, m.pageSize)
		} else {
			err = m.nav.PrevPage()
		}
		m.finishLocalWork()
		if err != nil {
			return m.fail("page", err)
		}
		m.offset = 0
		return m, nil
	}

	category := m.nav.Category()
	ids, ok := m.cache.StoryList(category)
	if !ok {
		return m.fail("page", fmt.Errorf("no %s stories loaded: %w", category, cache.ErrCacheMiss))
	}
	var (
		page int
		err  error
	)
	if forward {
		page, err = m.nav.PeekNextListingPage(len(ids), m.pageSize)
	} else {
		page, err = m.nav.PeekPrevListingPage()
	}
	if err != nil {
		return m.fail("page", err)
	}
	return m.fetch(fmt.Sprintf("Loading page %d", page+1),
		tuiactions.LoadStoryPageCmd(m.service, category, ids, page, m.pageSize, m.timeout))
}

// cachedStoryPage returns the page on screen for category when its ranking is
// cached too.
func (m Model) cachedStoryPage(category hn.Category) (cache.StoryPage, bool) {
	if _, ok := m.cache.StoryCount(category); !ok {
		return cache.StoryPage{}, false
	}
	page, ok := m.cache.StoryPage()
	if !ok || page.Category != category {
		return cache.StoryPage{}, false
	}
	return page, true
}

// reshowStories switches back to a cached story page without fetching.
func (m Model) reshowStories(page cache.StoryPage) (tea.Model, tea.Cmd) {
	if err := m.nav.BeginLocalWork(); err != nil {
		return m.fail(string(page.Category), err)
	}
	m.nav.ShowStories(page.Category, page.Page)
	m.resetBody()
	m.finishLocalWork()
	return m, nil
}

func (m Model) handleURL(cmd command.Command) (tea.Model, tea.Cmd) {
	item, err := m.itemAt(cmd.Index)
	if err != nil {
		return m.fail(cmd.Kind.String(), err)
	}
	target := item.URLOr("")
	if target == "" {
		target = tuiplatform.ItemURL(m.webBaseURL, item.ID)
	}
	target, err = tuiplatform.ValidateURL(target)
	if err != nil {
		return m.fail(cmd.Kind.String(), err)
	}
	if err := m.nav.BeginLocalWork(); err != nil {
		return m.fail(cmd.Kind.String(), err)
	}
	if cmd.Kind == command.Yank {
		return m, tuiactions.CopyURLCmd(target, m.copyURLFn)
	}
	return m, tuiactions.OpenURLCmd(target, m.openURLFn, m.copyURLFn)
}

func (m Model) showJSON(index int) (tea.Model, tea.Cmd) {
	item, err := m.itemAt(index)
	if err != nil {
		return m.fail("json", err)
	}
	if err := m.nav.BeginLocalWork(); err != nil {
		return m.fail("json", err)
	}
	out, err := item.PrettyJSON()
	if err != nil {
		m.nav.Halt()
		return m.fail("json", fmt.Errorf("encode item %d: %w", item.ID, err))
	}
	m.finishLocalWork()
	m.showOverlay(strings.Split(out, "\n"))
	return m, nil
}

// storyIDAt maps a printed story number to its ID. Any rank in the cached
// ranking resolves, not only the page on screen.
func (m Model) storyIDAt(index int) (int64, error) {
	ids, ok := m.cache.StoryList(m.nav.Category())
	if !ok {
		return 0, fmt.Errorf("no stories loaded: %w", cache.ErrCacheMiss)
	}
	if index < 0 || index >= len(ids) {
		return 0, fmt.Errorf("no story %d: %w", index+1, nav.ErrPastIndex)
	}
	return ids[index], nil
}

// itemAt resolves a printed number against the active view: a comment in a
// thread, a headline on the story page.
func (m Model) itemAt(index int) (hn.Item, error) {
	switch {
	case m.nav.ViewingComments():
		comment, ok := m.cache.CommentAt(index)
		if !ok {
			return hn.Item{}, fmt.Errorf("no comment %d: %w", index+1, nav.ErrPastIndex)
		}
		return comment, nil
	case m.nav.ViewingTopStories():
		page, ok := m.cache.StoryPage()
		if !ok {
			return hn.Item{}, fmt.Errorf("no stories loaded: %w", cache.ErrCacheMiss)
		}
		i := index - page.Page*m.pageSize
		if i < 0 || i >= len(page.Items) {
			return hn.Item{}, fmt.Errorf("story %d is not on this page: %w", index+1, nav.ErrPastIndex)
		}
		return page.Items[i], nil
	}
	return hn.Item{}, nav.ErrWrongMode
}

func (m *Model) finishFetch() bool {
	if err := m.nav.FinishFetch(); err != nil {
		m.logger.Error("result outside retrieval", "err", err)
		return false
	}
	m.status = ""
	return true
}

func (m *Model) finishLocalWork() {
	if err := m.nav.FinishLocalWork(); err != nil {
		m.logger.Error("local result outside local work", "err", err)
	}
}

func (m Model) fail(op string, err error) (tea.Model, tea.Cmd) {
	m.err = errors.New(describeError(op, err))
	m.status = ""
	m.logger.Warn("command failed", "op", op, "err", err, "state", m.nav.State())
	return m, nil
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	if m.statusTTL <= 0 {
		return m, nil
	}
	return m, clearStatusCmd(m.statusID, m.statusTTL)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// describeError phrases err for the status line.
func describeError(op string, err error) string {
	var (
		navErr    *nav.Error
		decodeErr *hn.DecodeError
	)
	switch {
	case errors.As(err, &navErr):
		return fmt.Sprintf("%s: %v", op, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("%s: timed out", op)
	case errors.Is(err, transport.ErrUnsupportedScheme):
		return fmt.Sprintf("%s: only https links can be fetched", op)
	case transport.KindOf(err) != 0:
		return fmt.Sprintf("%s: %s", op, transport.KindOf(err))
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("%s: could not decode response", op)
	case errors.Is(err, hn.ErrBodyTooLarge):
		return fmt.Sprintf("%s: response too large", op)
	}
	return fmt.Sprintf("%s: %v", op, err)
}

func (m *Model) showOverlay(lines []string) {
	m.overlay = lines
	m.offset = 0
}

func (m *Model) resetBody() {
	m.overlay = nil
	m.offset = 0
}

func (m *Model) scroll(delta int) {
	m.offset = tuistate.ClampOffset(m.offset+delta, len(m.bodyLines()), m.bodyHeight())
}

func (m Model) hasStatus() bool {
	return m.status != "" || m.err != nil
}

func (m Model) bodyHeight() int {
	return tuistate.BodyHeight(m.height, m.hasStatus())
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 100
	}
	return m.width
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Hacker News"))
	b.WriteString(" ")
	b.WriteString(m.theme.ModePill.Render(m.modeLabel()))
	b.WriteString("\n")
	b.WriteString(m.theme.MetaLabel.Render(tuiview.Toolbar(m.nav.ViewingComments())))
	b.WriteString("\n\n")

	lines := m.bodyLines()
	start, end := tuistate.Window(len(lines), m.offset, m.bodyHeight())
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.messagePanel())
	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	if m.nav.ConnectionWorking() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) modeLabel() string {
	switch {
	case m.overlay != nil:
		return "info"
	case m.nav.ViewingComments():
		return "comments"
	case m.nav.ViewingTopStories():
		return string(m.nav.Category())
	}
	return "start"
}

func (m Model) bodyLines() []string {
	if m.overlay != nil {
		return m.overlay
	}
	switch {
	case m.nav.ViewingComments():
		return m.commentLines()
	case m.nav.ViewingTopStories():
		return m.storyLines()
	}
	if m.nav.ConnectionWorking() {
		return []string{"Fetching top stories..."}
	}
	return []string{"Type help to list the commands."}
}

func (m Model) storyLines() []string {
	page, ok := m.cache.StoryPage()
	if !ok || len(page.Items) == 0 {
		return []string{"No stories to show."}
	}
	now := m.nowFn()
	lines := make([]string, 0, len(page.Items)*2)
	for i, item := range page.Items {
		p := tuiview.HeadlineParams{
			Item:  item,
			Index: page.Page*m.pageSize + i,
			Now:   now,
			Width: m.contentWidth(),
		}
		lines = append(lines, tuiview.RenderHeadline(p, m.theme), tuiview.RenderHeadlineMeta(p, m.theme))
	}
	return lines
}

func (m Model) commentLines() []string {
	frame, ok := m.cache.Frame()
	if !ok {
		return []string{"No item open."}
	}
	lines := []string{tuiview.ThreadHeader(frame.Parent, frame.Depth, m.theme)}
	if body := tuiview.ItemBody(frame.Parent, m.contentWidth()); len(body) > 0 {
		lines = append(lines, body...)
	}
	lines = append(lines, "")
	if len(frame.Comments) == 0 {
		return append(lines, tuiview.EmptyThread(frame.Parent))
	}

	now := m.nowFn()
	start, end := tuistate.PageBounds(len(frame.Comments), m.nav.CommentsPage(), m.pageSize)
	for i := start; i < end; i++ {
		lines = append(lines, tuiview.RenderComment(tuiview.CommentParams{
			Item:  frame.Comments[i],
			Index: i,
			Now:   now,
			Width: m.contentWidth(),
		}, m.theme)...)
		lines = append(lines, "")
	}
	return lines
}

func (m Model) footer() string {
	switch {
	case m.nav.ViewingComments():
		count, _ := m.cache.CommentCount()
		return tuiview.Footer("comments", m.nav.CommentsPage(), tuiview.PageCount(count, m.pageSize), count, m.theme)
	case m.nav.ViewingTopStories():
		count, _ := m.cache.StoryCount(m.nav.Category())
		return tuiview.Footer(string(m.nav.Category()), m.nav.ListingPage(), tuiview.PageCount(count, m.pageSize), count, m.theme)
	}
	return tuiview.Footer("start", 0, 1, 0, m.theme)
}

func (m Model) messagePanel() string {
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	return tuiview.Message(m.nav.State().String(), m.nav.ConnectionWorking(), m.err != nil, m.status, warning, m.theme)
}
