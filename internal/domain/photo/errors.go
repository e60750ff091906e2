package photo

import "errors"

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrInvalidFileType = errors.New("file must be a JPEG, PNG or WebP image")
	ErrFileTooLarge    = errors.New("file exceeds the 10MB upload limit")
	ErrTooManyPhotos   = errors.New("a space can have at most 12 photos")
)
