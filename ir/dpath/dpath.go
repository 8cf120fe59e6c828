// Package dpath implements dot-joined path addressing for IR trees.
//
// A path is a sequence of node names joined by dots, e.g. "a.b.2". Array
// positions appear as their decimal names. The empty path and "." both
// denote the root.
package dpath

import "strings"

// IsRoot reports whether p denotes the tree root.
func IsRoot(p string) bool {
	return p == "" || p == "."
}

// Split breaks a path into its segments. Root paths split to nil.
func Split(p string) []string {
	if IsRoot(p) {
		return nil
	}
	return strings.Split(p, ".")
}

// Join assembles segments back into a path.
func Join(segs []string) string {
	return strings.Join(segs, ".")
}

// Child extends p with one more segment.
func Child(p, seg string) string {
	if IsRoot(p) {
		return seg
	}
	return p + "." + seg
}

// Parent returns the path with its last segment removed, "" at the root.
func Parent(p string) string {
	if IsRoot(p) {
		return ""
	}
	i := strings.LastIndexByte(p, '.')
	if i < 0 {
		return ""
	}
	return p[:i]
}

// Depth returns the number of segments in p.
func Depth(p string) int {
	return len(Split(p))
}

// Ancestors returns every proper ancestor path of p, nearest the root
// first, excluding the root itself.
func Ancestors(p string) []string {
	segs := Split(p)
	if len(segs) < 2 {
		return nil
	}
	res := make([]string, 0, len(segs)-1)
	for i := 1; i < len(segs); i++ {
		res = append(res, Join(segs[:i]))
	}
	return res
}
