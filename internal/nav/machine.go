// Package nav tracks which view is on screen, the page shown in each view,
// and whether the client is waiting for input or retrieving results.
package nav

import (
	"fmt"

	"github.com/glabrego/hackernews-cli/internal/hn"
)

type State int

const (
	Starting State = iota
	WaitingUserInput
	RetrievingResults
	DoingLocalWork
	Idle
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case WaitingUserInput:
		return "waiting"
	case RetrievingResults:
		return "retrieving"
	case DoingLocalWork:
		return "working"
	case Idle:
		return "idle"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Mode names the view a command requires.
type Mode int

const (
	ModeAny Mode = iota
	ModeStories
	ModeComments
)

func (m Mode) String() string {
	switch m {
	case ModeStories:
		return "story list"
	case ModeComments:
		return "comment thread"
	default:
		return "any view"
	}
}

type ErrorKind int

const (
	KindInvalidState ErrorKind = iota + 1
	KindPastIndex
	KindWrongMode
)

// Error reports a navigation request that was refused. The machine is left
// exactly as it was.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidState = &Error{Kind: KindInvalidState, Message: "command not allowed right now"}
	ErrPastIndex    = &Error{Kind: KindPastIndex, Message: "tried to navigate past the index"}
	ErrWrongMode    = &Error{Kind: KindWrongMode, Message: "command not valid in this view"}
)

// DefaultPageSize is the number of stories or comments shown per page.
const DefaultPageSize = 10

type Machine struct {
	viewingTopStories        bool
	viewingCommentsForAStory bool
	connectionWorking        bool
	listingPageIndex         int
	commentsPageIndex        int
	lastOpenedItemID         int64
	category                 hn.Category
	currentState             State
}

func New() *Machine {
	return &Machine{currentState: Starting, category: hn.CategoryTop}
}

func (m *Machine) State() State            { return m.currentState }
func (m *Machine) ViewingTopStories() bool { return m.viewingTopStories }
func (m *Machine) ViewingComments() bool   { return m.viewingCommentsForAStory }
func (m *Machine) ConnectionWorking() bool { return m.connectionWorking }
func (m *Machine) ListingPage() int        { return m.listingPageIndex }
func (m *Machine) CommentsPage() int       { return m.commentsPageIndex }
func (m *Machine) LastOpenedItemID() int64 { return m.lastOpenedItemID }
func (m *Machine) Category() hn.Category   { return m.category }

func (m *Machine) transition(from []State, to State, op string) error {
	for _, s := range from {
		if m.currentState == s {
			m.currentState = to
			return nil
		}
	}
	return &Error{
		Kind:    KindInvalidState,
		Message: fmt.Sprintf("cannot %s while %s", op, m.currentState),
	}
}

// Started fires once setup has succeeded.
func (m *Machine) Started() error {
	return m.transition([]State{Starting}, WaitingUserInput, "start")
}

// BeginFetch gates network commands. Only one fetch may be outstanding.
func (m *Machine) BeginFetch() error {
	if err := m.transition([]State{WaitingUserInput}, RetrievingResults, "fetch"); err != nil {
		return err
	}
	m.connectionWorking = true
	return nil
}

// FinishFetch ends a successful fetch. The caller updates the cache and then
// the view and page index.
func (m *Machine) FinishFetch() error {
	if err := m.transition([]State{RetrievingResults}, WaitingUserInput, "finish fetch"); err != nil {
		return err
	}
	m.connectionWorking = false
	return nil
}

// FailFetch ends a failed fetch. Views and indices are untouched so the
// previous page stays valid.
func (m *Machine) FailFetch() error {
	return m.FinishFetch()
}

func (m *Machine) BeginLocalWork() error {
	return m.transition([]State{WaitingUserInput}, DoingLocalWork, "start local work")
}

func (m *Machine) FinishLocalWork() error {
	return m.transition([]State{DoingLocalWork}, WaitingUserInput, "finish local work")
}

// Halt moves to Idle from any state after a local failure.
func (m *Machine) Halt() {
	m.currentState = Idle
	m.connectionWorking = false
}

func (m *Machine) Resume() error {
	return m.transition([]State{Idle}, WaitingUserInput, "resume")
}

// ShowStories switches to the story list for category at page.
func (m *Machine) ShowStories(category hn.Category, page int) {
	m.viewingTopStories = true
	m.viewingCommentsForAStory = false
	m.category = category
	m.listingPageIndex = clampZero(page)
}

// ShowComments switches to the comment thread of itemID, first page.
func (m *Machine) ShowComments(itemID int64) {
	m.viewingCommentsForAStory = true
	m.viewingTopStories = false
	m.lastOpenedItemID = itemID
	m.commentsPageIndex = 0
}

// Require refuses commands that do not apply to the current view.
func (m *Machine) Require(mode Mode) error {
	switch mode {
	case ModeStories:
		if !m.viewingTopStories {
			return &Error{Kind: KindWrongMode, Message: "open a story list first (top, best or new)"}
		}
	case ModeComments:
		if !m.viewingCommentsForAStory {
			return &Error{Kind: KindWrongMode, Message: "open a story's comments first (comments N)"}
		}
	}
	return nil
}

// PeekNextListingPage returns the listing page after the current one without
// moving, so the caller can fetch it first.
func (m *Machine) PeekNextListingPage(total, pageSize int) (int, error) {
	next := m.listingPageIndex + 1
	if !pageExists(next, total, pageSize) {
		return m.listingPageIndex, ErrPastIndex
	}
	return next, nil
}

// PeekPrevListingPage is PeekNextListingPage backwards.
func (m *Machine) PeekPrevListingPage() (int, error) {
	if m.listingPageIndex == 0 {
		return 0, ErrPastIndex
	}
	return m.listingPageIndex - 1, nil
}

// NextPage advances the active view's page. Moving past the end of the
// cached collection is refused and leaves the index unchanged.
func (m *Machine) NextPage(total, pageSize int) error {
	index := m.activeIndex()
	if index == nil {
		return ErrWrongMode
	}
	if !pageExists(*index+1, total, pageSize) {
		return ErrPastIndex
	}
	*index++
	return nil
}

// PrevPage moves the active view back one page, clamped at zero.
func (m *Machine) PrevPage() error {
	index := m.activeIndex()
	if index == nil {
		return ErrWrongMode
	}
	if *index == 0 {
		return ErrPastIndex
	}
	*index--
	return nil
}

func (m *Machine) activeIndex() *int {
	switch {
	case m.viewingCommentsForAStory:
		return &m.commentsPageIndex
	case m.viewingTopStories:
		return &m.listingPageIndex
	}
	return nil
}

func pageExists(page, total, pageSize int) bool {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return page >= 0 && page*pageSize < total
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
