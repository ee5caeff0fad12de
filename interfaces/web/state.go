package web

import "popular-videos/domain/model"

// State is what the page currently shows. Exactly one of Loading, Failed or Loaded.
type State interface {
	isState()
}

// Loading is shown while the ranked list is being fetched.
type Loading struct{}

// Failed carries the caller-facing reason of a failed fetch.
type Failed struct {
	Reason string
}

// Loaded carries the ranked list, possibly empty.
type Loaded struct {
	Videos []model.VideoSummary
}

func (Loading) isState() {}
func (Failed) isState()  {}
func (Loaded) isState()  {}
