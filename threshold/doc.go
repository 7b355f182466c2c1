// Package threshold builds boolean masks from numeric sequences.
//
// ✨ Key features:
//   - ManualMask: strictly-greater comparison against a fixed threshold,
//     generic over float and signed-integer element types
//
// ⚙️ Usage:
//
//	import "github.com/flimlab/flimgo/threshold"
//
//	mask := threshold.ManualMask(intensities, 0.2)
//
// Performance: O(n) time, O(n) memory for the mask.
package threshold
