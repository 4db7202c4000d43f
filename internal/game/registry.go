package game

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-chat/internal/message"
)

// Registry owns every connected avatar, keyed by connection handle. It is
// not safe for concurrent use; the session service serializes access.
type Registry struct {
	avatars map[string]*Avatar
	prompt  *message.Message
}

func NewRegistry() *Registry {
	return &Registry{
		avatars: map[string]*Avatar{},
		prompt:  message.NewColored("> ", message.ColorWhite),
	}
}

// Add registers a new avatar under its handle.
func (r *Registry) Add(handle string, a *Avatar) error {
	if _, ok := r.avatars[handle]; ok {
		return fmt.Errorf("adding avatar %q: %w", handle, ErrDuplicateHandle)
	}
	r.avatars[handle] = a
	return nil
}

// FindByHandle returns the avatar for a connection handle. A miss means
// the transport broke the connect-before-message contract.
func (r *Registry) FindByHandle(handle string) (*Avatar, error) {
	a, ok := r.avatars[handle]
	if !ok {
		return nil, fmt.Errorf("looking up handle %q: %w", handle, ErrAvatarNotFound)
	}
	return a, nil
}

// FindByName returns the first avatar with the given display name, or nil.
// Uniqueness is enforced at assignment time, so at most one match exists.
func (r *Registry) FindByName(name string) *Avatar {
	for _, a := range r.avatars {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// RemoveByHandle deletes the avatar registered under handle.
func (r *Registry) RemoveByHandle(handle string) error {
	if _, ok := r.avatars[handle]; !ok {
		return fmt.Errorf("removing handle %q: %w", handle, ErrAvatarNotFound)
	}
	delete(r.avatars, handle)
	return nil
}

// ForEach calls fn for every registered avatar.
func (r *Registry) ForEach(fn func(*Avatar)) {
	for _, a := range r.avatars {
		fn(a)
	}
}

// FlushAll drains every avatar's outbound buffer to its connection. This
// is the single point where buffered output becomes wire writes, once per
// inbound event, so a participant never sees one event split across
// writes. Send failures are logged, not returned: a dying connection will
// report its own disconnect.
func (r *Registry) FlushAll() {
	for handle, a := range r.avatars {
		if err := a.Flush(r.prompt); err != nil {
			slog.Warn("flushing avatar buffer", "handle", handle, "error", err)
		}
	}
}
