package tabu

import (
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/zerr"
)

// Build creates the acceptor described by cfg: one tabu acceptor per configured
// tabu type, combined into a Composite when there is more than one.
// Every configuration error is reported here, before any phase starts.
// A name given through WithName is suffixed with the tabu type in a Composite
// so each child keeps its own metric series.
func Build(cfg domain.AcceptorConfig, opts ...Option) (ports.Acceptor, error) {
	flavors := []struct {
		kind     TokenKind
		size     *int
		ratio    *float64
		newRatio func(float64) (RatioSize, error)
	}{
		{KindEntity, cfg.EntityTabuSize, cfg.EntityTabuRatio, NewEntityRatioSize},
		{KindValue, cfg.ValueTabuSize, cfg.ValueTabuRatio, NewValueRatioSize},
		{KindMove, cfg.MoveTabuSize, nil, nil},
		{KindUndoMove, cfg.UndoMoveTabuSize, nil, nil},
	}

	aspiration := NewAspiration(cfg.Aspiration())
	acceptors := make([]*Acceptor, 0, len(flavors))

	for _, f := range flavors {
		var strategy SizeStrategy
		switch {
		case f.size != nil && f.ratio != nil:
			return nil, zerr.With(zerr.Wrap(domain.ErrAmbiguousTabuSize, ""), "tabu", f.kind.String())
		case f.size != nil:
			fixed, err := NewFixedSize(*f.size)
			if err != nil {
				return nil, zerr.With(err, "tabu", f.kind.String())
			}
			strategy = fixed
		case f.ratio != nil:
			ratio, err := f.newRatio(*f.ratio)
			if err != nil {
				return nil, zerr.With(err, "tabu", f.kind.String())
			}
			strategy = ratio
		default:
			continue
		}

		extractor, err := NewExtractor(f.kind)
		if err != nil {
			return nil, err
		}
		acceptor, err := NewAcceptor(extractor, strategy, aspiration, opts...)
		if err != nil {
			return nil, err
		}
		acceptors = append(acceptors, acceptor)
	}

	switch len(acceptors) {
	case 0:
		return nil, domain.ErrNoTabuConfigured
	case 1:
		return acceptors[0], nil
	}

	children := make([]ports.Acceptor, len(acceptors))
	for i, a := range acceptors {
		if kindName := defaultName(a.extractor.Kind()); a.name != kindName {
			a.name += "." + kindName
		}
		children[i] = a
	}
	return NewComposite(children...), nil
}
