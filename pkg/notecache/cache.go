// Package notecache maintains the client-side working copy of one user's
// notes and keeps it consistent with the server under latency and failure.
// Creates and mark-toggles apply optimistically and roll back to a saved
// pre-image when the server rejects them; edits and deletes only touch the
// local copy after the server confirms. The cache never silently diverges
// from confirmed server state.
package notecache

import (
	"context"
	"errors"
	"sync"
	"time"

	"notesy-be/pkg/noteclient"

	"github.com/rs/xid"
)

var (
	// ErrEmptyTitle is raised locally before any request is issued; a note
	// without a title never reaches the server.
	ErrEmptyTitle = errors.New("note title must not be empty")

	// ErrBusy means a mark toggle for the same note is still in flight.
	// Callers treat it as a no-op click.
	ErrBusy = errors.New("note update already in flight")

	ErrNotFound = errors.New("note not found in cache")
)

// NoteAPI is the slice of the server the cache needs. *noteclient.Client
// satisfies it.
type NoteAPI interface {
	List(ctx context.Context) ([]noteclient.Note, error)
	Create(ctx context.Context, note noteclient.Note) (noteclient.Note, error)
	Update(ctx context.Context, noteID string, changes noteclient.Changes) error
	Delete(ctx context.Context, noteID string) error
}

// Cache is the per-session collection. All exported methods are safe for
// concurrent use; reads return copies.
type Cache struct {
	api NoteAPI

	mu    sync.Mutex
	notes []noteclient.Note // newest first
	busy  map[string]bool   // mark toggles in flight, keyed by note id
}

func New(api NoteAPI) *Cache {
	return &Cache{
		api:  api,
		busy: make(map[string]bool),
	}
}

// Load replaces the collection with the server's list. Used on initial load;
// there is no background refresh.
func (c *Cache) Load(ctx context.Context) error {
	notes, err := c.api.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = notes
	return nil
}

// Notes returns a copy of the collection in its current order.
func (c *Cache) Notes() []noteclient.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]noteclient.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notes)
}

// Add creates a note optimistically: it appears at the front of the
// collection before the request resolves. On success the entry is replaced
// with the server's confirmed copy; on failure the optimistic entry is
// removed again.
func (c *Cache) Add(ctx context.Context, title, description string) (noteclient.Note, error) {
	if title == "" {
		return noteclient.Note{}, ErrEmptyTitle
	}

	note := noteclient.Note{
		Id:          xid.New().String(),
		Title:       title,
		Description: description,
		DateAdded:   time.Now().UTC().Format(time.RFC3339),
		Marked:      false,
	}

	c.mu.Lock()
	c.notes = append([]noteclient.Note{note}, c.notes...)
	c.mu.Unlock()

	created, err := c.api.Create(ctx, note)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// Rollback: the optimistic entry must not outlive the failure.
		c.removeLocked(note.Id)
		return noteclient.Note{}, err
	}

	if i := c.indexLocked(note.Id); i >= 0 {
		c.notes[i] = created
	}
	return created, nil
}

// ToggleMark flips the marked flag optimistically. A second toggle while one
// is in flight returns ErrBusy and changes nothing. On failure the flag
// reverts to its saved pre-image.
func (c *Cache) ToggleMark(ctx context.Context, noteID string) error {
	c.mu.Lock()
	i := c.indexLocked(noteID)
	if i < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	if c.busy[noteID] {
		c.mu.Unlock()
		return ErrBusy
	}

	prev := c.notes[i].Marked
	next := !prev
	c.notes[i].Marked = next
	c.busy[noteID] = true
	c.mu.Unlock()

	err := c.api.Update(ctx, noteID, noteclient.Changes{Marked: &next})

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.busy, noteID)

	if err != nil {
		if j := c.indexLocked(noteID); j >= 0 {
			c.notes[j].Marked = prev
		}
		return err
	}
	return nil
}

// Edit changes title and description. This path is not optimistic: the local
// copy is only updated once the server accepts the change.
func (c *Cache) Edit(ctx context.Context, noteID, title, description string) error {
	if title == "" {
		return ErrEmptyTitle
	}

	c.mu.Lock()
	if c.indexLocked(noteID) < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.mu.Unlock()

	changes := noteclient.Changes{
		Title:       &title,
		Description: &description,
	}
	if err := c.api.Update(ctx, noteID, changes); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(noteID); i >= 0 {
		c.notes[i].Title = title
		c.notes[i].Description = description
	}
	return nil
}

// Delete removes the note. The entry only leaves the collection after the
// server confirms; on failure it stays put.
func (c *Cache) Delete(ctx context.Context, noteID string) error {
	c.mu.Lock()
	if c.indexLocked(noteID) < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.mu.Unlock()

	if err := c.api.Delete(ctx, noteID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(noteID)
	return nil
}

func (c *Cache) indexLocked(noteID string) int {
	for i := range c.notes {
		if c.notes[i].Id == noteID {
			return i
		}
	}
	return -1
}

func (c *Cache) removeLocked(noteID string) {
	if i := c.indexLocked(noteID); i >= 0 {
		c.notes = append(c.notes[:i], c.notes[i+1:]...)
	}
}
