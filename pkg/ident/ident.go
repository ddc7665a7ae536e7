// Package ident generates identifiers for callers that need stable or
// random names for stored files. It is plain glue over google/uuid with
// argument checking; nothing here touches the network or the store client.
package ident

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidArgument reports a missing name or namespace, or an
// unsupported UUID version.
var ErrInvalidArgument = errors.New("ident: invalid argument")

// Well-known namespaces for name-based generation, re-exported so callers
// do not need to import google/uuid themselves.
var (
	NamespaceDNS = uuid.NameSpaceDNS
	NamespaceURL = uuid.NameSpaceURL
	NamespaceOID = uuid.NameSpaceOID
)

// New returns a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// FromName returns a name-based UUID string. Version 3 hashes with MD5,
// version 5 with SHA-1. The namespace and name are both required.
func FromName(space uuid.UUID, name string, version int) (string, error) {
	if space == uuid.Nil {
		return "", errors.Wrap(ErrInvalidArgument, "namespace is required")
	}
	if name == "" {
		return "", errors.Wrap(ErrInvalidArgument, "name is required")
	}
	switch version {
	case 3:
		return uuid.NewMD5(space, []byte(name)).String(), nil
	case 5:
		return uuid.NewSHA1(space, []byte(name)).String(), nil
	default:
		return "", errors.Wrapf(ErrInvalidArgument, "unsupported UUID version %d", version)
	}
}
