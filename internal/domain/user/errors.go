package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrCannotDeleteSelf  = errors.New("cannot delete your own account")
	ErrEmployeeNotLinked = errors.New("no employee linked to this account")
)
