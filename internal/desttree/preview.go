package desttree

import "samplesort/internal/placement"

// Preview is a dry-run tree: reads see the base tree plus everything planned
// so far, writes only reach an in-memory shadow.
type Preview struct {
	base   placement.Tree
	shadow *Memory
}

// NewPreview layers an in-memory shadow over base. base is never written.
func NewPreview(base placement.Tree) *Preview {
	return &Preview{base: base, shadow: NewMemory(base.Root())}
}

func (p *Preview) Root() string { return p.base.Root() }

func (p *Preview) EnsureDir(dir string) error {
	return p.shadow.EnsureDir(dir)
}

func (p *Preview) Names(dir string) ([]string, error) {
	baseNames, err := p.base.Names(dir)
	if err != nil {
		return nil, err
	}
	planned, err := p.shadow.Names(dir)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(baseNames)+len(planned))
	out := make([]string, 0, len(baseNames)+len(planned))
	for _, name := range append(baseNames, planned...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}

func (p *Preview) Place(src, rel string, mode placement.Mode) (placement.Action, error) {
	if _, err := p.shadow.Place(src, rel, mode); err != nil {
		return "", err
	}
	return placement.ActionPlanned, nil
}

func (p *Preview) Holds(rel, src string) bool {
	return p.base.Holds(rel, src) || p.shadow.Holds(rel, src)
}

// Planned lists the relative paths planned so far.
func (p *Preview) Planned() []string {
	return p.shadow.Files()
}
