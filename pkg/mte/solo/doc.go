// Package solo contains the synchronous, type-changing combinators over
// mte containers. They are free functions because Go methods cannot
// introduce new type parameters.
//
// Highlights:
// - SelectMaybe/SelectTry/SelectLeft/SelectRight/SelectEither: map a value
// - Bind*: map with a function that already returns a container
// - Select*Or*/Bind*Or*: map and collapse to a bare value with a default
// - UnwrapMaybe/UnwrapTry: flatten one level of nesting
// - MaybeOr/TryOr: fall back to the right side of an Either
// - ToValue: collapse an Either to a single type
//
// Try combinators capture panics raised by user functions (cancellation
// excluded); Maybe and Either combinators let them propagate.
package solo
