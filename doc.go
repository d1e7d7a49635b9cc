// Package catalog is an immutable clinical record framework modelled on FHIR R4.
//
// Records are trees of typed, immutable elements built exclusively through
// builders. Each built instance may be validated against an explicit field
// table before it is handed out, and every instance supports deep value
// equality, a memoized structural hash and depth-first visitor traversal.
//
// # Quick Start
//
//	import (
//	    "github.com/gofhir/catalog/model/r4"
//	    "github.com/gofhir/catalog/pkg/validate"
//	)
//
//	engine := validate.New(r4.Schemas(),
//	    validate.WithTerminology(provider),
//	    validate.WithAdvisoryHandler(func(root string, i issue.Issue) { log.Println(root, i.Diagnostics) }),
//	)
//
//	mk, err := r4.NewMedicationKnowledgeBuilder().
//	    Status("active").
//	    Code(code).
//	    Build(engine)
//	if err != nil {
//	    var verr *issue.ValidationError
//	    if errors.As(err, &verr) {
//	        for _, i := range verr.Result.Errors() {
//	            fmt.Println(i.Diagnostics)
//	        }
//	    }
//	}
//
// Passing model.Unchecked to Build skips validation for that call only.
//
// # Packages
//
//   - model: capability interfaces, element bases, visitor, equality, hashing
//   - model/r4: primitives, datatypes and record kinds with their builders
//   - pkg/schema: field tables, registry and StructureDefinition loading
//   - pkg/validate: the validation engine
//   - pkg/terminology: value set membership providers
//   - pkg/constraint: FHIRPath invariant evaluation
//   - pkg/jsonview: JSON projection of element trees
//   - cmd/catalog: CLI for inspecting field tables and checking codes
//
// # Errors
//
// Builders panic with *model.PreconditionError when a list setter receives an
// absent element or collection. Validation failures are returned as
// *issue.ValidationError and aggregate every error found in the tree.
// Advisories never fail a build; they reach the engine's advisory handler.
package catalog
