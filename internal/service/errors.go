package service

import "errors"

// ErrEmptyResponse means the completion call succeeded but produced no usable text.
var ErrEmptyResponse = errors.New("OpenAI returned an empty response.")
