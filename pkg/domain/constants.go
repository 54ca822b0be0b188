package domain

// Fixed placeholder geometry reported by the measurement operations.
const (
	MeasureX      = 10
	MeasureY      = 10
	MeasureWidth  = 100
	MeasureHeight = 100
	MeasurePageX  = 0
	MeasurePageY  = 0

	// MeasureLayout reports its position relative to another node.
	LayoutX = 1
	LayoutY = 1
)

// Synthetic root constants.
const (
	RootNodeTag      = 0
	RootNodeViewName = "RootNode"
)

// Operation names, as exposed by the native manager interface.
const (
	OpCreateNode                       = "createNode"
	OpCloneNode                        = "cloneNode"
	OpCloneNodeWithNewChildren         = "cloneNodeWithNewChildren"
	OpCloneNodeWithNewProps            = "cloneNodeWithNewProps"
	OpCloneNodeWithNewChildrenAndProps = "cloneNodeWithNewChildrenAndProps"
	OpCreateChildSet                   = "createChildSet"
	OpAppendChild                      = "appendChild"
	OpAppendChildToSet                 = "appendChildToSet"
	OpCompleteRoot                     = "completeRoot"
	OpMeasure                          = "measure"
	OpMeasureInWindow                  = "measureInWindow"
	OpMeasureLayout                    = "measureLayout"
	OpGetBoundingClientRect            = "getBoundingClientRect"
	OpGetParentNode                    = "getParentNode"
	OpGetChildNodes                    = "getChildNodes"
	OpSendAccessibilityEvent           = "sendAccessibilityEvent"
	OpSetNativeProps                   = "setNativeProps"
	OpDispatchCommand                  = "dispatchCommand"
	OpConfigureNextLayoutAnimation     = "configureNextLayoutAnimation"
	OpFindShadowNodeByTagDeprecated    = "findShadowNodeByTag_DEPRECATED"
)
