package notecache

import (
	"context"
	"errors"
	"testing"

	"notesy-be/pkg/noteclient"

	"github.com/stretchr/testify/assert"
)

// fakeAPI scripts server behavior per call. A nil hook means success.
type fakeAPI struct {
	listResult []noteclient.Note
	listErr    error

	createErr   error
	createCalls int

	updateErr   error
	updateCalls int
	lastChanges noteclient.Changes
	updateGate  chan struct{} // if set, Update blocks until the gate closes
	updateEnter chan struct{} // if set, signals when Update is entered

	deleteErr   error
	deleteCalls int
}

func (f *fakeAPI) List(ctx context.Context) ([]noteclient.Note, error) {
	return f.listResult, f.listErr
}

func (f *fakeAPI) Create(ctx context.Context, note noteclient.Note) (noteclient.Note, error) {
	f.createCalls++
	if f.createErr != nil {
		return noteclient.Note{}, f.createErr
	}
	confirmed := note
	confirmed.Email = "owner@example.com"
	return confirmed, nil
}

func (f *fakeAPI) Update(ctx context.Context, noteID string, changes noteclient.Changes) error {
	if f.updateEnter != nil {
		f.updateEnter <- struct{}{}
	}
	if f.updateGate != nil {
		<-f.updateGate
	}
	f.updateCalls++
	f.lastChanges = changes
	return f.updateErr
}

func (f *fakeAPI) Delete(ctx context.Context, noteID string) error {
	f.deleteCalls++
	return f.deleteErr
}

func seeded(t *testing.T, api *fakeAPI, notes ...noteclient.Note) *Cache {
	t.Helper()
	api.listResult = notes
	c := New(api)
	assert.NoError(t, c.Load(context.Background()))
	return c
}

func TestAddConfirmsOptimisticEntry(t *testing.T) {
	api := &fakeAPI{}
	c := New(api)

	created, err := c.Add(context.Background(), "Groceries", "milk, eggs")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.False(t, created.Marked)

	notes := c.Notes()
	assert.Len(t, notes, 1)
	// The confirmed server copy replaces the optimistic one.
	assert.Equal(t, "owner@example.com", notes[0].Email)
	assert.Equal(t, "Groceries", notes[0].Title)
}

func TestAddEmptyTitleNeverReachesServer(t *testing.T) {
	api := &fakeAPI{}
	c := New(api)

	_, err := c.Add(context.Background(), "", "desc")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Zero(t, api.createCalls)
	assert.Zero(t, c.Len())
}

func TestAddRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("store down")}
	c := New(api)

	_, err := c.Add(context.Background(), "Groceries", "milk")
	assert.Error(t, err)
	// The optimistic entry must not survive a failed create.
	assert.Zero(t, c.Len())
}

func TestToggleMarkRoundTrip(t *testing.T) {
	api := &fakeAPI{}
	c := seeded(t, api, noteclient.Note{Id: "n1", Title: "a"})

	assert.NoError(t, c.ToggleMark(context.Background(), "n1"))
	assert.True(t, c.Notes()[0].Marked)
	assert.NotNil(t, api.lastChanges.Marked)
	assert.Nil(t, api.lastChanges.Title)

	assert.NoError(t, c.ToggleMark(context.Background(), "n1"))
	assert.False(t, c.Notes()[0].Marked)
}

func TestToggleMarkRevertsOnFailure(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("store down")}
	c := seeded(t, api, noteclient.Note{Id: "n1", Title: "a", Marked: true})

	err := c.ToggleMark(context.Background(), "n1")
	assert.Error(t, err)
	// Pre-image restored: no silent divergence from server state.
	assert.True(t, c.Notes()[0].Marked)
}

func TestToggleMarkBusyGuard(t *testing.T) {
	api := &fakeAPI{
		updateGate:  make(chan struct{}),
		updateEnter: make(chan struct{}, 1),
	}
	c := seeded(t, api, noteclient.Note{Id: "n1", Title: "a"})

	done := make(chan error, 1)
	go func() {
		done <- c.ToggleMark(context.Background(), "n1")
	}()

	<-api.updateEnter // first toggle is now in flight

	// Second click while pending is a no-op.
	err := c.ToggleMark(context.Background(), "n1")
	assert.ErrorIs(t, err, ErrBusy)

	close(api.updateGate)
	assert.NoError(t, <-done)

	// Final state equals the result of exactly one toggle.
	assert.Equal(t, 1, api.updateCalls)
	assert.True(t, c.Notes()[0].Marked)

	// Guard clears once the request resolves.
	assert.NoError(t, c.ToggleMark(context.Background(), "n1"))
	assert.False(t, c.Notes()[0].Marked)
}

func TestEditIsNotOptimistic(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("store down")}
	c := seeded(t, api, noteclient.Note{Id: "n1", Title: "old", Description: "d"})

	err := c.Edit(context.Background(), "n1", "new", "d2")
	assert.Error(t, err)
	assert.Equal(t, "old", c.Notes()[0].Title)

	api.updateErr = nil
	assert.NoError(t, c.Edit(context.Background(), "n1", "new", "d2"))
	assert.Equal(t, "new", c.Notes()[0].Title)
	assert.Equal(t, "d2", c.Notes()[0].Description)
}

func TestEditEmptyTitleRejectedLocally(t *testing.T) {
	api := &fakeAPI{}
	c := seeded(t, api, noteclient.Note{Id: "n1", Title: "old"})

	err := c.Edit(context.Background(), "n1", "", "d")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Zero(t, api.updateCalls)
}

func TestDeleteOnlyRemovesOnSuccess(t *testing.T) {
	api := &fakeAPI{deleteErr: errors.New("store down")}
	c := seeded(t, api, noteclient.Note{Id: "n1", Title: "a"})

	assert.Error(t, c.Delete(context.Background(), "n1"))
	assert.Equal(t, 1, c.Len())

	api.deleteErr = nil
	assert.NoError(t, c.Delete(context.Background(), "n1"))
	assert.Zero(t, c.Len())
}

func TestUnknownNoteIsNotFound(t *testing.T) {
	api := &fakeAPI{}
	c := seeded(t, api)

	assert.ErrorIs(t, c.ToggleMark(context.Background(), "ghost"), ErrNotFound)
	assert.ErrorIs(t, c.Edit(context.Background(), "ghost", "t", "d"), ErrNotFound)
	assert.ErrorIs(t, c.Delete(context.Background(), "ghost"), ErrNotFound)
}

func TestLoadReplacesCollection(t *testing.T) {
	api := &fakeAPI{}
	c := seeded(t, api, noteclient.Note{Id: "n1"}, noteclient.Note{Id: "n2"})
	assert.Equal(t, 2, c.Len())

	api.listResult = []noteclient.Note{{Id: "n3"}}
	assert.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "n3", c.Notes()[0].Id)
}
