package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrProjectNotFound = errors.New("project not found")
var ErrEmailExists = errors.New("email already in use")
var ErrForbidden = errors.New("access forbidden")
var ErrLastMajorAdmin = errors.New("directory must retain at least one major admin")
