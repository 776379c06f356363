package domain

import "slices"

// Optional distinguishes a field that was not supplied from one that was
// supplied with its zero value (or nil).
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// AccountUpdate is a partial update. Only set fields are applied; the ID is
// not updatable.
type AccountUpdate struct {
	Type     Optional[AccountType]
	Login    Optional[string]
	Password Optional[*string]
	Tags     Optional[[]Tag]
}

func (u AccountUpdate) IsEmpty() bool {
	return !u.Type.IsSet() && !u.Login.IsSet() && !u.Password.IsSet() && !u.Tags.IsSet()
}

// Apply merges u onto a copy of a. When the update switches the type to
// LDAP the password is cleared, even if the same update supplied one.
func (a Account) Apply(u AccountUpdate) Account {
	merged := a.Clone()

	if accountType, ok := u.Type.Get(); ok {
		merged.Type = accountType
	}
	if login, ok := u.Login.Get(); ok {
		merged.Login = login
	}
	if password, ok := u.Password.Get(); ok {
		merged.Password = nil
		if password != nil {
			merged.Password = StringPtr(*password)
		}
	}
	if tags, ok := u.Tags.Get(); ok {
		merged.Tags = slices.Clone(tags)
	}

	if accountType, ok := u.Type.Get(); ok && accountType == AccountTypeLDAP {
		merged.Password = nil
	}

	return merged
}
