package model

import "errors"

var (
	ErrUnknownKind   = errors.New("unknown model kind")
	ErrFeatureCount  = errors.New("feature count mismatch")
	ErrCorruptModel  = errors.New("corrupt model artifact")
	ErrEmptyEnsemble = errors.New("ensemble has no trees")
)
