// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Scratch buffers for replacements that build into a temporary before
// committing. Each layout owns a pool of its own storage type, so a buffer
// is never reused across alternative sets. Buffers come out zeroed and go
// back zeroed: release clears the one slot that was written.

// acquireTemp returns a zeroed scratch buffer for storage type S.
func acquireTemp[S any](l *layout) *S {
	return l.temps.Get().(*S)
}

// releaseTemp clears slot i of tmp and returns it to the pool.
func releaseTemp[S any, P slots[S]](l *layout, tmp *S, i int) {
	P(tmp).clear(i)
	l.temps.Put(tmp)
}
