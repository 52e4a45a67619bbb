package rates

import "errors"

var ErrRelationshipNotFound = errors.New("no active candidate-client relationship")
