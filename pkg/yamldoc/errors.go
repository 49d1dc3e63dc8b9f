package yamldoc

import "errors"

var (
	// ErrRead indicates the input file could not be read.
	ErrRead = errors.New("read error")
	// ErrParse indicates the input is not valid YAML.
	ErrParse = errors.New("parse error")
	// ErrKeyNotFound indicates the requested ConfigMap data key is absent.
	ErrKeyNotFound = errors.New("config key not found")
	// ErrPathNotFound indicates a start-path segment is missing or the node at
	// that point is not a mapping.
	ErrPathNotFound = errors.New("path not found")
)
