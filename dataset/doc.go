// Package dataset wraps the puzzle generator in thin dataset plumbing:
// sized, optionally seeded dataset views, a name→factory registry and
// curriculum attribute scaffolding.
//
// What:
//
//   - Dataset: a fixed-size view over puzzle.Generate; Item(i) is a pure
//     function of (resolved seed, i), so items can be fetched in any order
//     and from multiple goroutines.
//   - Registry: Register/Open map dataset names to factories. The builtin
//     "multi_step_reasoning" dataset is registered at package init.
//   - Curriculum: scalar attribute levels that rewrite a base Config, used
//     to ramp difficulty (the builtin curriculum walks MaxSteps 5→10).
//
// Seeding:
//
//   - Config.Seed == nil draws a base seed from the process-global rand
//     source at construction, making the dataset non-deterministic. That is
//     acceptable for ad hoc use only; test suites must pass an explicit
//     seed.
//
// Errors:
//
//   - ErrBadSize:          Config.Size < 1.
//   - ErrIndexRange:       Item index outside [0, Size).
//   - ErrEmptyName:        empty dataset name on Register.
//   - ErrNilFactory:       nil factory on Register.
//   - ErrDuplicateDataset: name already registered.
//   - ErrUnknownDataset:   Open of an unregistered name.
//   - ErrUnknownAttribute: curriculum attribute name not defined.
//   - ErrLevelRange:       curriculum level cursor moved past its ends.
//
// Step-bound validation errors surface unchanged from the puzzle package.
package dataset
