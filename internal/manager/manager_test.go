package manager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu        sync.Mutex
	items     []domain.Product
	listErr   error
	saveErr   error
	deleteErr error
	inserts   int
	updates   map[string]domain.Product
	deletes   []string
	nextID    int
}

func (s *memoryStore) List(context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memoryStore) Insert(_ context.Context, p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return domain.Product{}, s.saveErr
	}
	s.inserts++
	s.nextID++
	p.ID = "id-" + string(rune('0'+s.nextID))
	s.items = append([]domain.Product{p}, s.items...)
	return p, nil
}

func (s *memoryStore) Update(_ context.Context, id string, p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return domain.Product{}, s.saveErr
	}
	if s.updates == nil {
		s.updates = map[string]domain.Product{}
	}
	p.ID = id
	s.updates[id] = p
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = p
		}
	}
	return p, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, id)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

type recorder struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recorder) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return Notification{}
	}
	return r.notes[len(r.notes)-1]
}

type answer struct {
	yes     bool
	prompts []string
}

func (a *answer) Confirm(prompt string) bool {
	a.prompts = append(a.prompts, prompt)
	return a.yes
}

func newProductManager(store *memoryStore, yes bool) (*Manager[domain.Product], *recorder, *answer) {
	rec := &recorder{}
	ans := &answer{yes: yes}
	return New(schema.Products, store, rec, ans, nil), rec, ans
}

func TestLoad_ReplacesItems(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1", Name: "Ring"}}}
	m, rec, _ := newProductManager(store, true)

	require.NoError(t, m.Load(context.Background()))
	assert.Len(t, m.Items(), 1)
	assert.False(t, m.Loading())
	assert.Empty(t, rec.notes)
}

func TestLoad_FailureKeepsPreviousItems(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1", Name: "Ring"}}}
	m, rec, _ := newProductManager(store, true)
	require.NoError(t, m.Load(context.Background()))

	store.listErr = errors.New("offline")
	require.Error(t, m.Load(context.Background()))

	assert.Len(t, m.Items(), 1)
	assert.False(t, m.Loading())
	assert.Equal(t, Notification{Level: LevelError, Title: "Error", Description: "Failed to fetch products"}, rec.last())
}

func TestSubmit_InvalidNeverReachesStore(t *testing.T) {
	store := &memoryStore{}
	m, rec, _ := newProductManager(store, true)
	m.Open()
	require.NoError(t, m.Set("name", "Ring"))
	require.NoError(t, m.Set("price", "-1"))

	err := m.Submit(context.Background())
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("price"))
	assert.Zero(t, store.inserts)
	assert.Equal(t, LevelError, rec.last().Level)
	assert.True(t, m.FormOpen())
	assert.Equal(t, "-1", m.Form()["price"])
}

func TestSubmit_CreatesAndResets(t *testing.T) {
	store := &memoryStore{}
	m, rec, _ := newProductManager(store, true)
	m.Open()
	require.NoError(t, m.Set("name", "Aurora Ring"))
	require.NoError(t, m.Set("price", "12500"))
	require.NoError(t, m.Set("featured", "true"))

	require.NoError(t, m.Submit(context.Background()))

	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, "Product created successfully", rec.last().Title)
	assert.False(t, m.FormOpen())
	assert.Empty(t, m.EditingID())
	assert.Equal(t, schema.Products.Blank(), m.Form())
	require.Len(t, m.Items(), 1)
	assert.True(t, m.Items()[0].Featured)
}

func TestSubmit_UpdatesWhenEditing(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1", Name: "Ring", Price: 100}}}
	m, rec, _ := newProductManager(store, true)
	require.NoError(t, m.Load(context.Background()))

	m.Edit(m.Items()[0])
	assert.Equal(t, "p1", m.EditingID())
	assert.Equal(t, "Ring", m.Form()["name"])
	assert.Equal(t, "100", m.Form()["price"])

	require.NoError(t, m.Set("price", "150"))
	require.NoError(t, m.Submit(context.Background()))

	assert.Zero(t, store.inserts)
	assert.Equal(t, 150.0, store.updates["p1"].Price)
	assert.Equal(t, "Product updated successfully", rec.last().Title)
	assert.Equal(t, 150.0, m.Items()[0].Price)
}

func TestSubmit_StoreFailureKeepsForm(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1", Name: "Ring", Price: 100}}, saveErr: errors.New("rls denied")}
	m, rec, _ := newProductManager(store, true)
	m.Edit(store.items[0])
	require.NoError(t, m.Set("name", "Ring II"))

	require.Error(t, m.Submit(context.Background()))

	assert.Equal(t, "Failed to save product", rec.last().Description)
	assert.Equal(t, "p1", m.EditingID())
	assert.Equal(t, "Ring II", m.Form()["name"])
	assert.True(t, m.FormOpen())
}

func TestSet_RejectsUnknownField(t *testing.T) {
	m, _, _ := newProductManager(&memoryStore{}, true)
	err := m.Set("colour", "gold")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, present := m.Form()["colour"]
	assert.False(t, present)
}

func TestDelete_DeclinedDoesNothing(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1"}}}
	m, rec, ans := newProductManager(store, false)

	err := m.Delete(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, store.deletes)
	assert.Empty(t, rec.notes)
	assert.Equal(t, []string{"Are you sure you want to delete this product?"}, ans.prompts)
}

func TestDelete_ConfirmedRemovesAndReloads(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1"}, {ID: "p2"}}}
	m, rec, _ := newProductManager(store, true)
	require.NoError(t, m.Load(context.Background()))

	require.NoError(t, m.Delete(context.Background(), "p1"))

	assert.Equal(t, []string{"p1"}, store.deletes)
	assert.Equal(t, "Product deleted successfully", rec.last().Title)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "p2", m.Items()[0].ID)
}

func TestDelete_Failure(t *testing.T) {
	store := &memoryStore{items: []domain.Product{{ID: "p1"}}, deleteErr: errors.New("boom")}
	m, rec, _ := newProductManager(store, true)

	require.Error(t, m.Delete(context.Background(), "p1"))
	assert.Equal(t, "Failed to delete product", rec.last().Description)
}

func TestCancel_ClearsWithoutStore(t *testing.T) {
	store := &memoryStore{}
	m, _, _ := newProductManager(store, true)
	m.Edit(domain.Product{ID: "p9", Name: "Ring"})

	m.Cancel()

	assert.False(t, m.FormOpen())
	assert.Empty(t, m.EditingID())
	assert.Equal(t, schema.Products.Blank(), m.Form())
	assert.Zero(t, store.inserts)
	assert.Empty(t, store.updates)
}

func TestBlogMessages(t *testing.T) {
	store := &blogStore{}
	rec := &recorder{}
	ans := &answer{yes: true}
	m := New(schema.Blogs, store, rec, ans, nil)

	m.Open()
	assert.Equal(t, schema.DefaultBlogAuthor, m.Form()["author"])
	require.NoError(t, m.Set("title", "Caring for diamonds"))
	require.NoError(t, m.Set("content", "Soak in warm water."))
	require.NoError(t, m.Submit(context.Background()))
	assert.Equal(t, "Blog created successfully", rec.notes[0].Title)
	assert.True(t, store.saved.Published)

	require.NoError(t, m.Delete(context.Background(), "b1"))
	assert.Equal(t, "Are you sure you want to delete this blog post?", ans.prompts[0])
}

type blogStore struct {
	saved domain.BlogPost
}

func (s *blogStore) List(context.Context) ([]domain.BlogPost, error) { return nil, nil }

func (s *blogStore) Insert(_ context.Context, b domain.BlogPost) (domain.BlogPost, error) {
	s.saved = b
	return b, nil
}

func (s *blogStore) Update(_ context.Context, _ string, b domain.BlogPost) (domain.BlogPost, error) {
	return b, nil
}

func (s *blogStore) Delete(context.Context, string) error { return nil }
