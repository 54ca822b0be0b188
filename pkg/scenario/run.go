package scenario

import (
	"fmt"
	"reflect"

	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/observability"
)

// Report summarizes a completed run.
type Report struct {
	Scenario string
	Root     domain.RootTag
	Steps    int
	// Assertions counts expectParent, expectChildren, measurement and error checks.
	Assertions int
	Refs       map[string]*domain.Node
	Sets       map[string]*domain.ChildSet
}

type runner struct {
	m      *fabricmock.Manager
	sc     *Scenario
	report *Report
}

// Run executes every step of sc against m, stopping at the first failure.
// Failures are returned as *StepError.
func Run(m *fabricmock.Manager, sc *Scenario) (*Report, error) {
	r := &runner{
		m:  m,
		sc: sc,
		report: &Report{
			Scenario: sc.Name,
			Root:     sc.Root,
			Refs:     make(map[string]*domain.Node),
			Sets:     make(map[string]*domain.ChildSet),
		},
	}

	for i, step := range sc.Steps {
		if err := r.step(step); err != nil {
			return r.report, &StepError{Index: i, Op: step.Op, Err: err}
		}
		r.report.Steps++
	}
	return r.report, nil
}

func (r *runner) step(s Step) error {
	err := r.apply(s)

	if s.Error == "" {
		return err
	}
	r.report.Assertions++
	if err == nil {
		return fmt.Errorf("expected %s error, got none", s.Error)
	}
	if kind := observability.ErrorKind(err); kind != s.Error {
		return fmt.Errorf("expected %s error, got %s: %w", s.Error, kind, err)
	}
	return nil
}

func (r *runner) root(s Step) domain.RootTag {
	if s.Root != nil {
		return domain.RootTag(*s.Root)
	}
	return r.sc.Root
}

func (r *runner) node(ref string) (*domain.Node, error) {
	if ref == "" {
		// Measurement steps may deliberately pass a nil node.
		return nil, nil
	}
	if ref == RootRef {
		if n, ok := r.report.Refs[RootRef]; ok {
			return n, nil
		}
		return r.m.RootNode(r.sc.Root), nil
	}
	n, ok := r.report.Refs[ref]
	if !ok {
		return nil, fmt.Errorf("unknown node ref %q", ref)
	}
	return n, nil
}

func (r *runner) set(name string) (*domain.ChildSet, error) {
	set, ok := r.report.Sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown child set %q", name)
	}
	return set, nil
}

func (r *runner) bind(ref string, n *domain.Node) error {
	if ref == "" {
		return fmt.Errorf("missing ref for produced node")
	}
	r.report.Refs[ref] = n
	return nil
}

func (r *runner) apply(s Step) error {
	switch s.Op {
	case domain.OpCreateNode:
		handle := s.Handle
		if handle == nil {
			handle = s.Ref
		}
		n, err := r.m.CreateNode(s.Tag, s.View, r.root(s), s.Props, handle)
		if err != nil {
			return err
		}
		return r.bind(s.Ref, n)

	case domain.OpCloneNode, domain.OpCloneNodeWithNewChildren,
		domain.OpCloneNodeWithNewProps, domain.OpCloneNodeWithNewChildrenAndProps:
		return r.clone(s)

	case domain.OpCreateChildSet:
		if s.Set == "" {
			return fmt.Errorf("missing set name")
		}
		r.report.Sets[s.Set] = r.m.CreateChildSet(r.root(s))
		return nil

	case domain.OpAppendChild:
		parent, err := r.node(s.Parent)
		if err != nil {
			return err
		}
		child, err := r.node(s.Child)
		if err != nil {
			return err
		}
		r.m.AppendChild(parent, child)
		return nil

	case domain.OpAppendChildToSet:
		set, err := r.set(s.Set)
		if err != nil {
			return err
		}
		child, err := r.node(s.Child)
		if err != nil {
			return err
		}
		r.m.AppendChildToSet(set, child)
		return nil

	case domain.OpCompleteRoot:
		set, err := r.set(s.Set)
		if err != nil {
			return err
		}
		r.m.CompleteRoot(r.root(s), set)
		return nil

	case domain.OpMeasure, domain.OpMeasureInWindow, domain.OpMeasureLayout, domain.OpGetBoundingClientRect:
		return r.measure(s)

	case domain.OpGetParentNode, OpExpectParent:
		n, err := r.node(s.Node)
		if err != nil {
			return err
		}
		got := r.m.GetParentNode(n)
		if s.Op == OpExpectParent {
			r.report.Assertions++
			if !reflect.DeepEqual(got, s.Handle) {
				return fmt.Errorf("parent of %s: expected %v, got %v", s.Node, s.Handle, got)
			}
		}
		return nil

	case domain.OpGetChildNodes, OpExpectChildren:
		n, err := r.node(s.Node)
		if err != nil {
			return err
		}
		got := r.m.GetChildNodes(n)
		if s.Op == OpExpectChildren {
			r.report.Assertions++
			want := s.Handles
			if want == nil {
				want = []any{}
			}
			if !reflect.DeepEqual(got, want) {
				return fmt.Errorf("children of %s: expected %v, got %v", s.Node, want, got)
			}
		}
		return nil

	case domain.OpSendAccessibilityEvent, domain.OpSetNativeProps, domain.OpDispatchCommand:
		n, err := r.node(s.Node)
		if err != nil {
			return err
		}
		switch s.Op {
		case domain.OpSendAccessibilityEvent:
			r.m.SendAccessibilityEvent(n, s.Event)
		case domain.OpSetNativeProps:
			r.m.SetNativeProps(n, s.Props)
		default:
			r.m.DispatchCommand(n, s.Command, s.Args)
		}
		return nil

	case domain.OpConfigureNextLayoutAnimation:
		r.m.ConfigureNextLayoutAnimation(domain.LayoutAnimationConfig{}, nil, nil)
		return nil

	case domain.OpFindShadowNodeByTagDeprecated:
		r.m.FindShadowNodeByTagDeprecated(s.Tag)
		return nil

	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
}

func (r *runner) clone(s Step) error {
	src, err := r.node(s.Node)
	if err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("missing node to clone")
	}

	var c *domain.Node
	switch s.Op {
	case domain.OpCloneNode:
		c = r.m.CloneNode(src)
	case domain.OpCloneNodeWithNewChildren:
		c = r.m.CloneNodeWithNewChildren(src)
	case domain.OpCloneNodeWithNewProps:
		c = r.m.CloneNodeWithNewProps(src, s.Props)
	default:
		c = r.m.CloneNodeWithNewChildrenAndProps(src, s.Props)
	}
	return r.bind(s.Ref, c)
}

func (r *runner) measure(s Step) error {
	n, err := r.node(s.Node)
	if err != nil {
		return err
	}

	var got []float64
	switch s.Op {
	case domain.OpMeasure:
		err = r.m.Measure(n, func(x, y, w, h, pageX, pageY float64) {
			got = []float64{x, y, w, h, pageX, pageY}
		})
	case domain.OpMeasureInWindow:
		err = r.m.MeasureInWindow(n, func(x, y, w, h float64) {
			got = []float64{x, y, w, h}
		})
	case domain.OpMeasureLayout:
		rel, relErr := r.node(s.Relative)
		if relErr != nil {
			return relErr
		}
		err = r.m.MeasureLayout(n, rel, nil, func(x, y, w, h float64) {
			got = []float64{x, y, w, h}
		})
	default:
		var rect [4]float64
		rect, err = r.m.GetBoundingClientRect(n)
		if err == nil {
			got = rect[:]
		}
	}
	if err != nil {
		return err
	}

	if s.Expect != nil {
		r.report.Assertions++
		if !reflect.DeepEqual(got, s.Expect) {
			return fmt.Errorf("%s: expected %v, got %v", s.Op, s.Expect, got)
		}
	}
	return nil
}
