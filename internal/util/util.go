// Package util provides small shared helpers.
package util

import (
	"strings"
	"sync"
)

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

// GetStringBuilder returns a pooled strings.Builder.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

// FreeStringBuilder resets sb and returns it to the pool.
func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
