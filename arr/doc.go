// Package arr provides standalone, generic helpers for chunking,
// de-duplicating, flattening and grouping slices.
//
// All helpers return new slices and never modify their input:
//
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)          // → [[1 2] [3 4] [5]]
//	unique := arr.Uniq([]int{1, 2, 2, 3, 3, 4})            // → [1 2 3 4]
//	flat   := arr.Flatten([]any{[]any{1, 2}, []any{3}})    // → [1 2 3]
//	byRole := arr.GroupBy(users, func(u User) string { return u.Role })
//
// # Dynamic sequences
//
// [Flatten], [FlattenDeep] and [UniqAny] accept []any so they can handle the
// mixed, JSON-shaped data produced by encoding/json. Nested typed slices
// ([]int, []string, ...) count as sequences too. Use the generic helpers
// ([Chunk], [Uniq], [Collapse], [GroupBy]) when the element type is known.
package arr
