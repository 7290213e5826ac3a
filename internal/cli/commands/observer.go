package commands

import "btp/internal/domain"

// baseObserver is a no-op coordinator observer for commands that only
// need the returned catalog.
type baseObserver struct{}

func (baseObserver) DiscoveryStarted()                         {}
func (baseObserver) DiscoveryFinished(catalog *domain.Catalog) {}
func (baseObserver) RunStarted(ids []string)                   {}
func (baseObserver) Progress(ev domain.ProgressEvent)          {}
func (baseObserver) RunFinished()                              {}
