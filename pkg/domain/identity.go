package domain

import "fmt"

// Identity identifies the acting principal (a user or a service account)
// to which transitions and access checks are attributed.
type Identity struct {
	ID   string
	Name string
}

// IsZero reports whether the identity is unset.
func (i Identity) IsZero() bool {
	return i.ID == ""
}

func (i Identity) String() string {
	if i.Name == "" {
		return i.ID
	}
	return fmt.Sprintf("%s (%s)", i.Name, i.ID)
}
