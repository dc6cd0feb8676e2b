package messages

import "errors"

var (
	ErrLoadingCancelled  = errors.New("loading message catalog cancelled")
	ErrFailedToReadFile  = errors.New("failed to read message file")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid message file structure")
	ErrNoMessages        = errors.New("no messages found")
)
