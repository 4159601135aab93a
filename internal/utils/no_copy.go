package utils

import "sync"

// NoCopy flags accidental copies of structs holding an open file. go vet reports copies of structs which contain a
// sync.Locker, so embedding NoCopy is enough to get the check.
type NoCopy struct{}

// NoCopy implements sync.Locker
var _ sync.Locker = (*NoCopy)(nil)

func (n *NoCopy) Lock() {}

func (n *NoCopy) Unlock() {}
