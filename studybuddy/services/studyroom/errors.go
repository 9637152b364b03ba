package studyroom

import "errors"

var (
	ErrRoomNotFound  = errors.New("study room not found")
	ErrRoomInactive  = errors.New("study room is not active")
	ErrRoomFull      = errors.New("study room is full")
	ErrAlreadyMember = errors.New("you are already a member of this room")
	ErrNotMember     = errors.New("you are not a member of this room")
	ErrNotCreator    = errors.New("only the creator can delete this room")
	ErrEmptyMessage  = errors.New("message content is required")
)
