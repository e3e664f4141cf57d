package reconcile

import (
	"context"
	"fmt"
)

// fakeDirectory is an in-memory DirectoryGateway that records every
// call it receives.
type fakeDirectory struct {
	accounts map[string]*Account
	groups   map[string]map[string]bool
	calls    []string

	// Per-method error injection.
	getErr    error
	updateErr error
	createErr error
	groupErr  error

	// omitUserID creates accounts without the identifier attribute.
	omitUserID bool

	nextID int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		accounts: make(map[string]*Account),
		groups:   make(map[string]map[string]bool),
	}
}

func (d *fakeDirectory) GetAccount(_ context.Context, username string) (Account, bool, error) {
	d.calls = append(d.calls, "get:"+username)
	if d.getErr != nil {
		return Account{}, false, d.getErr
	}
	account, ok := d.accounts[username]
	if !ok {
		return Account{}, false, nil
	}
	return *account, true, nil
}

func (d *fakeDirectory) UpdateAttributes(_ context.Context, username string, attrs []Attribute) error {
	d.calls = append(d.calls, "update:"+username)
	if d.updateErr != nil {
		return d.updateErr
	}
	account := d.accounts[username]
	for _, attr := range attrs {
		d.setAttribute(account, attr)
	}
	return nil
}

func (d *fakeDirectory) CreateAccount(_ context.Context, username, tempPassword string, attrs []Attribute, suppress bool) error {
	d.calls = append(d.calls, fmt.Sprintf("create:%s:suppress=%t:temp=%s", username, suppress, tempPassword))
	if d.createErr != nil {
		return d.createErr
	}
	account := &Account{Username: username, Attributes: attrs}
	if !d.omitUserID {
		d.nextID++
		account.Attributes = append(account.Attributes,
			Attribute{Name: AttributeUserID, Value: fmt.Sprintf("uid-%04d", d.nextID)})
	}
	d.accounts[username] = account
	return nil
}

func (d *fakeDirectory) AddToGroup(_ context.Context, username, group string) error {
	d.calls = append(d.calls, "group:"+username+":"+group)
	if d.groupErr != nil {
		return d.groupErr
	}
	if d.groups[username] == nil {
		d.groups[username] = make(map[string]bool)
	}
	// Re-adding an existing membership is a no-op, as in the real
	// directory.
	d.groups[username][group] = true
	return nil
}

func (d *fakeDirectory) setAttribute(account *Account, attr Attribute) {
	for i := range account.Attributes {
		if account.Attributes[i].Name == attr.Name {
			account.Attributes[i].Value = attr.Value
			return
		}
	}
	account.Attributes = append(account.Attributes, attr)
}

// fakeRegistry is an in-memory RegistryGateway recording calls.
type fakeRegistry struct {
	entries map[string]Entry
	calls   []string

	updateErr error
	createErr error
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{entries: make(map[string]Entry)}
}

func (r *fakeRegistry) UpdateEntry(_ context.Context, entry Entry) error {
	r.calls = append(r.calls, "update:"+entry.ID)
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.entries[entry.ID]; !ok {
		return notFoundErr()
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeRegistry) CreateEntry(_ context.Context, entry Entry) error {
	r.calls = append(r.calls, "create:"+entry.ID)
	if r.createErr != nil {
		return r.createErr
	}
	r.entries[entry.ID] = entry
	return nil
}
