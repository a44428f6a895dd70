package soap

import "errors"

var (
	ErrInvalidArgument = errors.New("soap: invalid argument")
	ErrUnknownCategory = errors.New("soap: unknown category")

	// Dictionary errors
	ErrUnsupportedDictionary   = errors.New("soap: unsupported dictionary format")
	ErrFailedToParseDictionary = errors.New("soap: failed to parse dictionary")
	ErrDictionaryCancelled     = errors.New("soap: dictionary loading cancelled")

	// Classifier errors
	ErrClassifierNotTrained = errors.New("soap: classifier has not learned any samples")

	ErrIO = errors.New("soap: i/o failure")
)
