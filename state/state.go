package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition indicates an action that is not legal from the
// article's current status.
var ErrInvalidTransition = errors.New("state: invalid transition")

// Status is the externally visible workflow position.
type Status string

// Workflow statuses.
const (
	StatusDraft     Status = "draft"
	StatusInReview  Status = "in_review"
	StatusPublished Status = "published"
)

// state owns the transitions legal from one workflow position.
// Each handler either moves the article or reports ErrInvalidTransition.
type state interface {
	submit(a *Article) error
	approve(a *Article) error
	reject(a *Article) error
	status() Status
}

// Article is the context: it holds a title and delegates every workflow
// action to its current state object.
type Article struct {
	title string
	cur   state
}

// NewArticle creates an Article in draft.
func NewArticle(title string) *Article {
	return &Article{title: title, cur: draft{}}
}

// Title returns the article title.
func (a *Article) Title() string { return a.title }

// Status returns the current workflow position.
func (a *Article) Status() Status { return a.cur.status() }

// Submit hands the article to review. Legal only from draft.
func (a *Article) Submit() error { return a.cur.submit(a) }

// Approve publishes the article. Legal only from in_review.
func (a *Article) Approve() error { return a.cur.approve(a) }

// Reject sends the article back to draft. Legal only from in_review.
func (a *Article) Reject() error { return a.cur.reject(a) }

// illegal builds the uniform rejection for an action in a status.
func illegal(action string, from Status) error {
	return fmt.Errorf("%w: %s from %q", ErrInvalidTransition, action, from)
}

// draft is the initial state; only Submit leads out of it.
type draft struct{}

func (draft) submit(a *Article) error {
	a.cur = review{}

	return nil
}
func (draft) approve(*Article) error { return illegal("approve", StatusDraft) }
func (draft) reject(*Article) error  { return illegal("reject", StatusDraft) }
func (draft) status() Status         { return StatusDraft }

// review awaits a decision; Approve and Reject lead out of it.
type review struct{}

func (review) submit(*Article) error { return illegal("submit", StatusInReview) }
func (review) approve(a *Article) error {
	a.cur = published{}

	return nil
}
func (review) reject(a *Article) error {
	a.cur = draft{}

	return nil
}
func (review) status() Status { return StatusInReview }

// published is terminal: no action leads out of it.
type published struct{}

func (published) submit(*Article) error  { return illegal("submit", StatusPublished) }
func (published) approve(*Article) error { return illegal("approve", StatusPublished) }
func (published) reject(*Article) error  { return illegal("reject", StatusPublished) }
func (published) status() Status         { return StatusPublished }
