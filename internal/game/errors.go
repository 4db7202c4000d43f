package game

import "errors"

var (
	ErrDuplicateHandle = errors.New("handle already registered")
	ErrAvatarNotFound  = errors.New("avatar not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrNoSuchExit      = errors.New("no exit in that direction")

	ErrNameInvalidCharacter = errors.New("name contains an invalid character")
	ErrNameTooLong          = errors.New("name is too long")
)
