package fabricmock

import "github.com/aretw0/fabricmock/pkg/domain"

// Measure validates node and reports the fixed frame (10, 10, 100, 100) at
// page offset (0, 0). The callback runs before Measure returns.
func (m *Manager) Measure(node *domain.Node, callback MeasureFunc) error {
	err := domain.EnsureHostNode(node)
	m.record(domain.OpMeasure, err, node)
	if err != nil {
		return err
	}

	if callback != nil {
		callback(domain.MeasureX, domain.MeasureY, domain.MeasureWidth, domain.MeasureHeight, domain.MeasurePageX, domain.MeasurePageY)
	}
	return nil
}

// MeasureInWindow validates node and reports the fixed frame (10, 10, 100, 100).
func (m *Manager) MeasureInWindow(node *domain.Node, callback MeasureInWindowFunc) error {
	err := domain.EnsureHostNode(node)
	m.record(domain.OpMeasureInWindow, err, node)
	if err != nil {
		return err
	}

	if callback != nil {
		callback(domain.MeasureX, domain.MeasureY, domain.MeasureWidth, domain.MeasureHeight)
	}
	return nil
}

// MeasureLayout validates both nodes and reports (1, 1, 100, 100) through
// onSuccess. onFail is never invoked.
func (m *Manager) MeasureLayout(node, relativeNode *domain.Node, onFail func(), onSuccess MeasureLayoutFunc) error {
	err := domain.EnsureHostNode(node)
	if err == nil {
		err = domain.EnsureHostNode(relativeNode)
	}
	m.record(domain.OpMeasureLayout, err, node, relativeNode)
	if err != nil {
		return err
	}

	if onSuccess != nil {
		onSuccess(domain.LayoutX, domain.LayoutY, domain.MeasureWidth, domain.MeasureHeight)
	}
	return nil
}

// GetBoundingClientRect validates node and returns [x, y, width, height].
func (m *Manager) GetBoundingClientRect(node *domain.Node) ([4]float64, error) {
	err := domain.EnsureHostNode(node)
	m.record(domain.OpGetBoundingClientRect, err, node)
	if err != nil {
		return [4]float64{}, err
	}
	return [4]float64{domain.MeasureX, domain.MeasureY, domain.MeasureWidth, domain.MeasureHeight}, nil
}

// SendAccessibilityEvent is recorded and otherwise ignored.
func (m *Manager) SendAccessibilityEvent(node *domain.Node, eventType string) {
	m.record(domain.OpSendAccessibilityEvent, nil, node, eventType)
}

// SetNativeProps is recorded and otherwise ignored. node is not modified.
func (m *Manager) SetNativeProps(node *domain.Node, newProps domain.Props) {
	m.record(domain.OpSetNativeProps, nil, node, newProps)
}

// DispatchCommand is recorded and otherwise ignored.
func (m *Manager) DispatchCommand(node *domain.Node, commandName string, args []any) {
	m.record(domain.OpDispatchCommand, nil, node, commandName, args)
}

// ConfigureNextLayoutAnimation is recorded and otherwise ignored. Neither
// callback is invoked.
func (m *Manager) ConfigureNextLayoutAnimation(config domain.LayoutAnimationConfig, onComplete, onError func()) {
	m.record(domain.OpConfigureNextLayoutAnimation, nil, config)
}

// FindShadowNodeByTagDeprecated is recorded and always returns nil.
func (m *Manager) FindShadowNodeByTagDeprecated(tag int) *domain.Node {
	m.record(domain.OpFindShadowNodeByTagDeprecated, nil, tag)
	return nil
}
