package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Room is the stored definition of a location: its display name and the
// directed exit table mapping direction to destination room id. Exit
// tables may be asymmetric; a reverse edge exists only if the topology
// declares it.
type Room struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Exits       map[string]string `json:"exits,omitempty"` // direction -> room id
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}

	for dir, dest := range r.Exits {
		if _, ok := ParseDirection(dir); !ok {
			el.Add(fmt.Errorf("exit %q: unknown direction", dir))
		}
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: destination room id is required", dir))
		}
	}

	return el.Err()
}
