package domain

import "errors"

var ErrNotAnImage = errors.New("uploaded file is not an image")
var ErrImageTooLarge = errors.New("uploaded file exceeds the size limit")
