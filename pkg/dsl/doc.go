/*
Package dsl provides a fluent builder for committed trees.

Tests that only need a tree in place, rather than exercising each construction
call, can describe it declaratively and let Build drive a Manager through
createNode, appendChild, createChildSet, appendChildToSet and completeRoot.

Example usage:

	b := dsl.New(11)

	b.Add("list", "ScrollView").Children("first", "second")
	b.Add("first", "Text").Prop("text", "one")
	b.Add("second", "Text").Prop("text", "two")
	b.Commit("list")

	nodes, err := b.Build(fabricmock.New())
	// nodes["first"] is the committed host node; its handle is "first".
*/
package dsl
