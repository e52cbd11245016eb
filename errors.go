// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import "errors"

var (
	// ErrOutOfRange is returned when an index is at or past the end of
	// the occupied elements
	ErrOutOfRange = errors.New("smallvec: index out of range")
	// ErrCapacityOverflow is returned when a requested capacity cannot
	// be allocated
	ErrCapacityOverflow = errors.New("smallvec: capacity overflow")
	// ErrInconsistent is returned by CheckConsistency
	ErrInconsistent = errors.New("smallvec: inconsistent state")
)
