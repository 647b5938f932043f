// Package entity defines the domain entities for the users feature.
package entity

// User is the sole entity managed by the service.
// Every name and email field may be absent; nil maps to NULL in the store.
type User struct {
	// ID is assigned by the store on insert and never changes afterwards.
	ID uint

	FirstName *string
	LastName  *string
	Email     *string
}

// Fields returns first name, last name and email with absent values as "".
func (u User) Fields() (string, string, string) {
	return deref(u.FirstName), deref(u.LastName), deref(u.Email)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
