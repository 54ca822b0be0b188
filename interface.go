package fabricmock

import "github.com/aretw0/fabricmock/pkg/domain"

// Callback signatures of the measurement operations.
type (
	MeasureFunc         func(x, y, width, height, pageX, pageY float64)
	MeasureInWindowFunc func(x, y, width, height float64)
	MeasureLayoutFunc   func(left, top, width, height float64)
)

// UIManager is the native UI manager contract emulated by Manager.
type UIManager interface {
	CreateNode(tag int, viewName string, rootTag domain.RootTag, props domain.Props, instanceHandle any) (*domain.Node, error)
	CloneNode(node *domain.Node) *domain.Node
	CloneNodeWithNewChildren(node *domain.Node) *domain.Node
	CloneNodeWithNewProps(node *domain.Node, newProps domain.Props) *domain.Node
	CloneNodeWithNewChildrenAndProps(node *domain.Node, newProps domain.Props) *domain.Node
	CreateChildSet(rootTag domain.RootTag) *domain.ChildSet
	AppendChild(parent, child *domain.Node) *domain.Node
	AppendChildToSet(set *domain.ChildSet, child *domain.Node)
	CompleteRoot(rootTag domain.RootTag, set *domain.ChildSet)

	Measure(node *domain.Node, callback MeasureFunc) error
	MeasureInWindow(node *domain.Node, callback MeasureInWindowFunc) error
	MeasureLayout(node, relativeNode *domain.Node, onFail func(), onSuccess MeasureLayoutFunc) error
	GetBoundingClientRect(node *domain.Node) ([4]float64, error)

	GetParentNode(node *domain.Node) any
	GetChildNodes(node *domain.Node) []any

	SendAccessibilityEvent(node *domain.Node, eventType string)
	SetNativeProps(node *domain.Node, newProps domain.Props)
	DispatchCommand(node *domain.Node, commandName string, args []any)
	ConfigureNextLayoutAnimation(config domain.LayoutAnimationConfig, onComplete, onError func())
	FindShadowNodeByTagDeprecated(tag int) *domain.Node
}

var _ UIManager = (*Manager)(nil)
