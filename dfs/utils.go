// Package dfs: slice helpers shared by the loop and bridge finders, including
// Booth's minimal-rotation algorithm.
package dfs

import "cmp"

// reverse returns a new slice containing the elements of s in reverse order.
func reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// rotate returns a new slice holding s rotated left by k.
func rotate[T any](s []T, k int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[k:]...)

	return append(out, s[:k]...)
}

// minimalRotation implements Booth's algorithm: it returns the start index of
// the lexicographically minimal rotation of s in O(n) time.
func minimalRotation[T cmp.Ordered](s []T) int {
	n := len(s)
	if n < 2 {
		return 0
	}
	doubled := append(append(make([]T, 0, 2*n), s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			// here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return k % n
}
