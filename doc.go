// Package stepchain procedurally generates multi-step reasoning puzzles:
// chains of textual steps drawn from four cognitive categories — deduction,
// induction, abduction and transduction — each transforming a small running
// state (a number, a word, a person name) and ending in a deterministic
// closing question whose numeric answer is the puzzle's answer.
//
// 🚀 What is stepchain?
//
//	A small, deterministic puzzle-synthesis library plus thin dataset plumbing:
//		• puzzle/  — the core generator: state, step operators, sequencer,
//		  difficulty tiers, exact-match scoring, seeded RNG sessions
//		• dataset/ — sized dataset views, a name→factory registry and
//		  curriculum attribute scaffolding around the generator
//		• cmd/stepchain — a CLI that emits puzzle items as JSON lines
//
// ✨ Why choose stepchain?
//
//   - Reproducible – every item is a pure function of (seed, index, config)
//   - Self-contained – every drawn operand is rendered in the puzzle text
//   - Total – modular indexing and absolute-value encodings keep every
//     operator defined for any intermediate value the chain produces
//   - Tiered – one generator, three difficulty presets (easy/medium/hard)
//
// Quick taste:
//
//	item, err := puzzle.Generate(puzzle.DefaultConfig(), 1, 0)
//	if err != nil { ... }
//	fmt.Println(item.Question) // "Step 1: ..." … "Step N: ..."
//	fmt.Println(item.Answer)   // e.g. "42"
//
// Dive into puzzle/doc.go for the operator contracts and draw-order rules.
//
//	go get github.com/stepforge/stepchain/puzzle
package stepchain
