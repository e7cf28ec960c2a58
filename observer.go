package suffixtree

import "log/slog"

// Observer is notified as the tree's nodes and edges are created. It
// exists so that an event-sourced shell (or any other auditing layer) can
// reconstruct the tree as a stream of facts; construction never consults
// an Observer's return value or otherwise lets it influence the build.
//
// Handles passed to an Observer are dense integer node ids, not pointers:
// nodes are numbered from 0 (the root) in creation order, and the ids
// remain valid for the lifetime of the tree.
type Observer interface {
	NodeCreated(id int)
	EdgeCreated(source, dest, first, last int)
}

type noopObserver struct{}

func (noopObserver) NodeCreated(int)                {}
func (noopObserver) EdgeCreated(int, int, int, int) {}

// logObserver logs node and edge creation at Debug level. It is useful
// for tracing construction of small trees without wiring up a bespoke
// event bus.
type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an Observer that logs every node/edge creation
// to logger at Debug level. A nil logger falls back to slog.Default().
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) NodeCreated(id int) {
	o.logger.Debug("suffixtree: node created", "node", id)
}

func (o *logObserver) EdgeCreated(source, dest, first, last int) {
	o.logger.Debug("suffixtree: edge created",
		"source", source, "dest", dest, "first", first, "last", last)
}
