package tui

type refreshDoneMsg struct {
	err error
}

type typeLoadedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// tickMsg re-reads the cache so background syncs show up on screen.
type tickMsg struct{}
