// Package valgo provides:
//
// - Primitive validation for string, bool, i32, i64, u32, u64, f32 and f64
//   with a stable issue model (code, message, path)
// - Array validation composed from any item validator, reporting every
//   offending index in one pass
// - JSON Schema generation per dialect (draft-2020-12, draft-07, openapi-3.0)
// - A Loader that acquires the engine once, shared across concurrent Init
//   calls, with a non-blocking Handle accessor
//
// Design policy:
// - Keep only public APIs in the root package; put numeric classification
//   under internal/engine.
// - Place schema generation under jsonschema/, the interop envelope under
//   standard/, document registration under registry/, and the CLI under
//   cmd/valgo.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	if err := valgo.Init(ctx, valgo.Options{}); err != nil { ... }
//	e, err := valgo.Handle()
//	r := e.ValidateI32(raw)
//	if v, ok := r.Value(); ok { ... }
//
//	doc, err := e.JSONSchema(valgo.KindU32, valgo.TargetDraft202012)
package valgo
