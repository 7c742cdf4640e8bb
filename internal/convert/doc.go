// Package convert maps UML models onto BMM schemas.
//
// Pipeline, per source in batch order:
//  1. Load the model, with earlier models available for cross-source references
//  2. Build the model's class index
//  3. Extract identification from the root package's stereotype
//  4. Flatten the package tree into leaf packages under one container
//  5. Translate each class and its properties, routing primitive types apart
//  6. Include every schema produced earlier in the batch
//
// Property variants are selected by priority: container (upper bound above
// one or unbounded), generic (bound template), open generic, single.
// Generic bindings are resolved one level deep.
package convert
