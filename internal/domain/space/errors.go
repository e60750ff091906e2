package space

import "errors"

var (
	ErrSpaceNotFound      = errors.New("space not found")
	ErrSlugAlreadyUsed    = errors.New("a space with this slug already exists")
	ErrInvalidBoundingBox = errors.New("bounding box coordinates are invalid")
)
