// Package domos is a business-process execution layer: stateful objects
// move through named state paths defined by workflow graphs, each path
// optionally bound to ordered pre- and post-actions with validated
// parameter contracts, and every execution attributed to an authenticated
// acting identity whose privileges may be temporarily elevated or
// substituted through nesting scopes.
//
// The root package is the high-level entry point; hosts that need finer
// control compose the pieces under pkg/ directly.
//
//	cfg, _ := file.Load("workflows.yaml")
//	reg := registry.NewRegistry()
//	reg.Register("notifyApprover", notifyAction)
//
//	engine, _ := domos.New(cfg, reg, domos.WithStore(memory.NewStore()))
//	sess, _ := engine.NewSession(domain.Identity{ID: "u-17", Name: "Ada"})
//
//	tr, err := engine.ExecutePath(ctx, sess, "PurchaseOrder", "Submit", order,
//		map[string]any{"approverComment": "ok"})
package domos
