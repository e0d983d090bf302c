package mirror

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint64
	Name string
}

var errBackendDown = errors.New("backend down")

// fakeSource is an in-memory Source with switchable failure mode.
type fakeSource struct {
	rows   []row
	nextID uint64
	fail   bool
}

func (f *fakeSource) List(_ context.Context, _ string, _ bool) []row {
	if f.fail {
		return make([]row, 0)
	}

	out := make([]row, len(f.rows))
	copy(out, f.rows)

	return out
}

func (f *fakeSource) Create(_ context.Context, e *row) error {
	if f.fail {
		return errBackendDown
	}

	f.nextID++
	e.ID = f.nextID
	f.rows = append(f.rows, *e)

	return nil
}

func (f *fakeSource) Update(_ context.Context, id uint64, changes map[string]any) (*row, error) {
	if f.fail {
		return nil, errBackendDown
	}

	for i := range f.rows {
		if f.rows[i].ID == id {
			if name, ok := changes["name"].(string); ok {
				f.rows[i].Name = name
			}

			updated := f.rows[i]

			return &updated, nil
		}
	}

	return nil, errors.New("not found")
}

func (f *fakeSource) UpsertBy(ctx context.Context, _, value string, e *row) (*row, error) {
	if f.fail {
		return nil, errBackendDown
	}

	for i := range f.rows {
		if f.rows[i].Name == value {
			e.ID = f.rows[i].ID
			f.rows[i] = *e
			stored := *e

			return &stored, nil
		}
	}

	if err := f.Create(ctx, e); err != nil {
		return nil, err
	}

	stored := *e

	return &stored, nil
}

func (f *fakeSource) Delete(_ context.Context, id uint64) error {
	if f.fail {
		return errBackendDown
	}

	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)

			return nil
		}
	}

	return errors.New("not found")
}

func keyOf(r *row) uint64 { return r.ID }

func newTestCollection(source *fakeSource) *Collection[row] {
	return NewCollection(context.Background(), source, keyOf, "", false)
}

func TestInitialFetch(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nextID: 2}

	c := newTestCollection(source)

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Loading())
	assert.Empty(t, c.Err())
}

func TestCreatePrepends(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "old"}}, nextID: 1}
	c := newTestCollection(source)

	require.NoError(t, c.Create(context.Background(), &row{Name: "new"}))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].Name, "created item goes to the front")
	assert.Equal(t, "old", items[1].Name)
}

func TestUpdateReplacesInPlace(t *testing.T) {
	source := &fakeSource{
		rows:   []row{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}},
		nextID: 3,
	}
	c := newTestCollection(source)

	require.NoError(t, c.Update(context.Background(), 2, map[string]any{"name": "B"}))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "B", items[1].Name, "updated item keeps its position")
}

func TestDeleteFilters(t *testing.T) {
	source := &fakeSource{
		rows:   []row{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
		nextID: 2,
	}
	c := newTestCollection(source)

	require.NoError(t, c.Delete(context.Background(), 1))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint64(2), items[0].ID)
}

func TestUpsertReplacesOrPrepends(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "hero"}}, nextID: 1}
	c := newTestCollection(source)

	// existing key: replace in place
	require.NoError(t, c.Upsert(context.Background(), "name", "hero", &row{Name: "hero"}))
	assert.Equal(t, 1, c.Len())

	// new key: prepend
	require.NoError(t, c.Upsert(context.Background(), "name", "footer", &row{Name: "footer"}))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "footer", items[0].Name)
}

func TestFailedMutationLeavesItemsUntouched(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Collection[row]) error
	}{
		{
			name: "create",
			mutate: func(c *Collection[row]) error {
				return c.Create(context.Background(), &row{Name: "x"})
			},
		},
		{
			name: "update",
			mutate: func(c *Collection[row]) error {
				return c.Update(context.Background(), 1, map[string]any{"name": "x"})
			},
		},
		{
			name: "upsert",
			mutate: func(c *Collection[row]) error {
				return c.Upsert(context.Background(), "name", "x", &row{Name: "x"})
			},
		},
		{
			name: "delete",
			mutate: func(c *Collection[row]) error {
				return c.Delete(context.Background(), 1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			source := &fakeSource{rows: []row{{ID: 1, Name: "a"}}, nextID: 1}
			c := newTestCollection(source)

			source.fail = true

			err := tc.mutate(c)
			require.Error(t, err)

			assert.Equal(t, []row{{ID: 1, Name: "a"}}, c.Items(), "local copy must stay untouched")
			assert.NotEmpty(t, c.Err(), "failure message must be cached")
		})
	}
}

func TestSuccessClearsCachedError(t *testing.T) {
	source := &fakeSource{nextID: 0}
	c := newTestCollection(source)

	source.fail = true
	require.Error(t, c.Create(context.Background(), &row{Name: "x"}))
	require.NotEmpty(t, c.Err())

	source.fail = false
	require.NoError(t, c.Create(context.Background(), &row{Name: "y"}))
	assert.Empty(t, c.Err())
}

func TestRefetchReplacesWholesale(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "a"}}, nextID: 1}
	c := newTestCollection(source)

	source.rows = []row{{ID: 5, Name: "fresh"}}

	c.Refetch(context.Background())

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint64(5), items[0].ID)
}

func TestCloseDropsLateWrites(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "a"}}, nextID: 1}
	c := newTestCollection(source)

	c.Close()

	// a mutation landing after teardown must not resurrect state
	require.NoError(t, c.Create(context.Background(), &row{Name: "late"}))
	assert.Equal(t, 1, c.Len(), "closed collection must not be written to")

	c.Refetch(context.Background())
	assert.Equal(t, 1, c.Len())
}

func TestItemsReturnsCopy(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "a"}}, nextID: 1}
	c := newTestCollection(source)

	items := c.Items()
	items[0].Name = "mutated"

	fresh := c.Items()
	assert.Equal(t, "a", fresh[0].Name, "callers must not reach the internal slice")
}

func TestFind(t *testing.T) {
	source := &fakeSource{rows: []row{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nextID: 2}
	c := newTestCollection(source)

	got, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)

	_, ok = c.Find(99)
	assert.False(t, ok)
}
