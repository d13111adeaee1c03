package ledger

import (
	"context"
	"log/slog"

	"grana/internal/common"
	"grana/internal/model"
	"grana/internal/service"
)

// CategoryManager holds the loaded category list, the current selection,
// and the edit-mode flag. It performs no locking: a session invokes its
// operations sequentially, one user action at a time.
type CategoryManager struct {
	store      service.Store
	categories []model.Category
	onChange   []func()
	selected   int64
	editingID  int64
	state      editState
}

// NewCategoryManager creates a manager backed by the given store. Call
// Load before using the list accessors.
func NewCategoryManager(store service.Store) *CategoryManager {
	return &CategoryManager{store: store}
}

// OnChange registers a callback invoked synchronously after every
// successful mutating operation.
func (m *CategoryManager) OnChange(fn func()) {
	m.onChange = append(m.onChange, fn)
}

func (m *CategoryManager) notify() {
	for _, fn := range m.onChange {
		fn()
	}
}

// Load replaces the in-memory list with all categories from the store,
// sorted by (kind, name). On failure the prior list is left unchanged.
func (m *CategoryManager) Load(ctx context.Context) error {
	categories, err := m.store.ListCategories(ctx)
	if err != nil {
		return err
	}
	m.categories = categories
	slog.Debug("loaded categories", "count", len(categories))
	return nil
}

// Categories returns a copy of the loaded list, active and inactive.
func (m *CategoryManager) Categories() []model.Category {
	out := make([]model.Category, len(m.categories))
	copy(out, m.categories)
	return out
}

// ActiveCategories returns the active-only view used by selection lists.
// Inactive categories stay resolvable by id for historical transactions.
func (m *CategoryManager) ActiveCategories() []model.Category {
	var out []model.Category
	for _, c := range m.categories {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

// CategoryByID looks up a loaded category by id.
func (m *CategoryManager) CategoryByID(id int64) (model.Category, bool) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Select marks a loaded category as the current selection.
func (m *CategoryManager) Select(id int64) error {
	if _, ok := m.CategoryByID(id); !ok {
		return common.NewNotFoundError("category", id)
	}
	m.selected = id
	return nil
}

// ClearSelection removes the current selection.
func (m *CategoryManager) ClearSelection() {
	m.selected = 0
}

// Selected returns the currently selected category, if any.
func (m *CategoryManager) Selected() (model.Category, bool) {
	if m.selected == 0 {
		return model.Category{}, false
	}
	return m.CategoryByID(m.selected)
}

// IsEditing reports whether an edit session is open.
func (m *CategoryManager) IsEditing() bool {
	return m.state == stateEditing
}

// Can-perform predicates, evaluated from current state each time the
// presentation layer renders control availability.

// CanBeginCreate reports whether a create is currently permitted.
func (m *CategoryManager) CanBeginCreate() bool { return m.state == stateIdle }

// CanBeginEdit reports whether an edit session can be opened.
func (m *CategoryManager) CanBeginEdit() bool { return m.state == stateIdle }

// CanDelete reports whether a delete is currently permitted.
func (m *CategoryManager) CanDelete() bool { return m.state == stateIdle }

// CanCommit reports whether an edit session is open for commit or cancel.
func (m *CategoryManager) CanCommit() bool { return m.state == stateEditing }

// BeginCreate validates the draft, persists it, and appends it to the
// in-memory list. Create is one-shot: the manager stays Idle. The new
// entry is appended at the end rather than re-sorted; callers reload to
// restore (kind, name) order.
func (m *CategoryManager) BeginCreate(ctx context.Context, draft model.Category) (model.Category, error) {
	if m.state != stateIdle {
		return model.Category{}, common.NewInvalidStateError("beginCreate", m.state.String())
	}

	draft.Active = true
	if err := model.ValidateCategory(&draft); err != nil {
		return model.Category{}, err
	}

	id, err := m.store.InsertCategory(ctx, &draft)
	if err != nil {
		return model.Category{}, err
	}
	draft.ID = id

	m.categories = append(m.categories, draft)
	slog.Info("created category", "id", id, "name", draft.Name, "kind", draft.Kind.String())
	m.notify()
	return draft, nil
}

// BeginEdit opens an edit session for the given category, selects it, and
// returns a snapshot of its fields as the editable draft.
func (m *CategoryManager) BeginEdit(id int64) (model.Category, error) {
	if m.state != stateIdle {
		return model.Category{}, common.NewInvalidStateError("beginEdit", m.state.String())
	}

	current, ok := m.CategoryByID(id)
	if !ok {
		return model.Category{}, common.NewNotFoundError("category", id)
	}

	m.selected = id
	m.editingID = id
	m.state = stateEditing
	return current, nil
}

// CommitEdit validates the draft, persists it, and updates the in-memory
// entry. A store failure leaves the manager in Editing so the user can
// retry or cancel explicitly. A category's kind is fixed once created.
func (m *CategoryManager) CommitEdit(ctx context.Context, draft model.Category) error {
	if m.state != stateEditing {
		return common.NewInvalidStateError("commitEdit", m.state.String())
	}

	current, ok := m.CategoryByID(m.editingID)
	if !ok {
		return common.NewNotFoundError("category", m.editingID)
	}
	if draft.Kind != current.Kind {
		return common.NewValidationError("kind", "kind cannot be changed after creation")
	}

	draft.ID = current.ID
	draft.CreatedAt = current.CreatedAt
	draft.Active = current.Active
	if err := model.ValidateCategory(&draft); err != nil {
		return err
	}

	if err := m.store.UpdateCategory(ctx, &draft); err != nil {
		return err
	}

	m.replace(draft)
	m.state = stateIdle
	m.editingID = 0
	m.selected = 0
	slog.Info("updated category", "id", draft.ID, "name", draft.Name)
	m.notify()
	return nil
}

// CancelEdit discards the draft and returns to Idle. Calling it outside an
// edit session is a sequencing error.
func (m *CategoryManager) CancelEdit() error {
	if m.state != stateEditing {
		return common.NewInvalidStateError("cancelEdit", m.state.String())
	}
	m.state = stateIdle
	m.editingID = 0
	m.selected = 0
	return nil
}

// Delete removes the category when no transaction references it, and
// deactivates it otherwise. The outcome tells the caller which one
// happened; deactivation is the designed result, not an error.
func (m *CategoryManager) Delete(ctx context.Context, id int64) (DeleteOutcome, error) {
	if m.state != stateIdle {
		return 0, common.NewInvalidStateError("delete", m.state.String())
	}

	current, ok := m.CategoryByID(id)
	if !ok {
		return 0, common.NewNotFoundError("category", id)
	}

	refs, err := m.store.CountTransactionsForCategory(ctx, id)
	if err != nil {
		return 0, err
	}

	if refs > 0 {
		current.Active = false
		if err := m.store.UpdateCategory(ctx, &current); err != nil {
			return 0, err
		}
		m.replace(current)
		if m.selected == id {
			m.selected = 0
		}
		slog.Info("deactivated category", "id", id, "name", current.Name, "references", refs)
		m.notify()
		return Deactivated, nil
	}

	if err := m.store.DeleteCategory(ctx, id); err != nil {
		return 0, err
	}
	m.remove(id)
	if m.selected == id {
		m.selected = 0
	}
	slog.Info("deleted category", "id", id, "name", current.Name)
	m.notify()
	return HardDeleted, nil
}

func (m *CategoryManager) replace(c model.Category) {
	for i := range m.categories {
		if m.categories[i].ID == c.ID {
			m.categories[i] = c
			return
		}
	}
}

func (m *CategoryManager) remove(id int64) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return
		}
	}
}
